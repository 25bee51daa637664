package main

import (
	"errors"
	"fmt"
	"os"

	printbook "github.com/alnah/go-printbook"
	"github.com/alnah/go-printbook/internal/fileutil"
	"github.com/alnah/go-printbook/internal/verify"
)

// ErrVerifyFailed is returned when an assembled document has problems.
var ErrVerifyFailed = errors.New("verification failed")

// runVerify inspects an assembled document. The file defaults to the
// output of the configured profile; the cover defaults to the configured
// cover when it exists.
func runVerify(args []string, env *Environment) error {
	flags, rest, err := parseVerifyFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: verify takes at most one file", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	setIf(&cfg.Profile, flags.profile)
	setIf(&cfg.Input.Cover, flags.cover)
	setIf(&cfg.Document.LegacyCoverMarker, flags.marker)

	path := cfg.Output.Path
	if len(rest) == 1 {
		path = rest[0]
	}
	if path == "" {
		profile, err := printbook.LookupProfile(cfg.Profile)
		if err != nil {
			return withHint(err)
		}
		path = profile.DefaultOutput
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close()

	rep, err := verify.Inspect(f, cfg.Document.LegacyCoverMarker)
	if err != nil {
		return err
	}

	problems := rep.Problems()

	coverChecked, coverMatches := false, false
	if flags.cover != "" || fileutil.FileExists(cfg.Input.Cover) {
		original, err := readInput(cfg.Input.Cover, "--cover", "input.cover")
		if err != nil {
			return err
		}
		coverChecked, coverMatches = true, rep.MatchesCover(original)
		if !coverMatches {
			problems = append(problems, fmt.Sprintf("embedded cover differs from %s", cfg.Input.Cover))
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Document: %s\n", path)
		fmt.Fprintf(env.Stdout, "- Title: %s\n", rep.Title)
		fmt.Fprintf(env.Stdout, "- Author: %s\n", rep.Author)
		fmt.Fprintf(env.Stdout, "- Cover: %s, %d bytes\n", rep.CoverMIME, len(rep.Cover))
		if coverChecked {
			fmt.Fprintf(env.Stdout, "- Cover matches %s: %s\n", cfg.Input.Cover, yesNo(coverMatches))
		}
		fmt.Fprintf(env.Stdout, "- Body elements: %d\n", rep.BodyElements)
		fmt.Fprintf(env.Stdout, "- Print rules: %s\n", yesNo(rep.PrintRules))
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(env.Stderr, "problem: %s\n", p)
		}
		return fmt.Errorf("%w: %d problem(s) in %s", ErrVerifyFailed, len(problems), path)
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "OK")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
