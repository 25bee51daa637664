package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// inputFlags names the source files.
type inputFlags struct {
	html  string
	css   string
	cover string
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title           string
	author          string
	lang            string
	coverAlt        string
	marker          string
	keepLegacyCover bool
}

// buildFlags holds all flags for the build and config commands.
type buildFlags struct {
	common    commonFlags
	input     inputFlags
	document  documentFlags
	profile   string
	output    string
	pdf       string
	assetPath string
	timeout   string
}

// verifyFlags holds flags for the verify command.
type verifyFlags struct {
	common  commonFlags
	profile string
	cover   string
	marker  string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show diagnostics")
	fs.StringVar(&f.logFormat, "log-format", "text", "diagnostics format: text or json")
}

func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVar(&f.html, "html", "", "source HTML file")
	fs.StringVar(&f.css, "css", "", "stylesheet to embed")
	fs.StringVar(&f.cover, "cover", "", "cover image")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.lang, "lang", "", "document language")
	fs.StringVar(&f.coverAlt, "cover-alt", "", "cover image alt text")
	fs.StringVar(&f.marker, "legacy-marker", "", "comment opening the web cover block")
	fs.BoolVar(&f.keepLegacyCover, "keep-legacy-cover", false, "do not remove the web cover block")
}

// parseBuildFlags parses flags for build (and config, which shares them).
func parseBuildFlags(name string, args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	fs.StringVar(&f.profile, "profile", "", "print profile: standard or enhanced")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: profile output name)")
	fs.StringVar(&f.pdf, "pdf", "", "also render a PDF to this path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/ and templates/")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 90s, 2m)")

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

func parseVerifyFlags(args []string, stderr io.Writer) (*verifyFlags, []string, error) {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &verifyFlags{}

	fs.StringVar(&f.profile, "profile", "", "profile whose default output is checked")
	fs.StringVar(&f.cover, "cover", "", "original cover image to compare against")
	fs.StringVar(&f.marker, "legacy-marker", "", "comment opening the web cover block")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printVerifyUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// profilesFlags holds flags for the profiles command.
type profilesFlags struct {
	config    string
	assetPath string
}

func parseProfilesFlags(args []string, stderr io.Writer) (*profilesFlags, []string, error) {
	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &profilesFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "also list styles in this directory")

	fs.Usage = func() { printProfilesUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
