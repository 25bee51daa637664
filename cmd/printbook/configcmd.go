package main

import (
	"fmt"
	"text/tabwriter"

	printbook "github.com/alnah/go-printbook"
)

// runConfig prints the effective configuration (defaults, config file and
// flags merged) as YAML. The output is a valid config file.
func runConfig(args []string, env *Environment) error {
	flags, rest, err := parseBuildFlags("config", args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}

// runProfiles lists the print profiles, including custom styles found
// under the asset path of the flags or config.
func runProfiles(args []string, env *Environment) error {
	flags, rest, err := parseProfilesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	setIf(&cfg.Assets.BasePath, flags.assetPath)

	profiles, err := printbook.ListProfiles(cfg.Assets.BasePath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range profiles {
		name := p.Name
		if name == printbook.DefaultProfile {
			name += " (default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.Description, p.DefaultOutput)
	}
	return w.Flush()
}
