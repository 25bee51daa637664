package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	printbook "github.com/alnah/go-printbook"
	"github.com/alnah/go-printbook/internal/config"
	"github.com/alnah/go-printbook/internal/fileutil"
	"github.com/alnah/go-printbook/internal/hints"
	"github.com/alnah/go-printbook/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// timeoutEnv overrides the PDF timeout when --timeout is not given.
const timeoutEnv = "PRINTBOOK_TIMEOUT"

// runBuild assembles the print document and writes it (and the PDF, if asked).
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseBuildFlags("build", args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	logger, err := newLogger(env, flags.common)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, env.Getenv(timeoutEnv), cfg.Output.Timeout)
	if err != nil {
		return err
	}

	htmlContent, err := readInput(cfg.Input.HTML, "--html", "input.html")
	if err != nil {
		return err
	}
	cssContent, err := readInput(cfg.Input.CSS, "--css", "input.css")
	if err != nil {
		return err
	}
	cover, err := readInput(cfg.Input.Cover, "--cover", "input.cover")
	if err != nil {
		return err
	}
	logger.Debug("inputs read",
		zap.String("html", cfg.Input.HTML), zap.Int("htmlBytes", len(htmlContent)),
		zap.String("css", cfg.Input.CSS), zap.Int("cssBytes", len(cssContent)),
		zap.String("cover", cfg.Input.Cover), zap.Int("coverBytes", len(cover)))

	opts := []printbook.Option{printbook.WithLogger(logger.Named("printbook"))}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, printbook.WithAssetPath(cfg.Assets.BasePath))
	}
	if timeout > 0 {
		opts = append(opts, printbook.WithTimeout(timeout))
	}

	asm, err := env.NewAssembler(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = asm.Close() }()

	start := env.Now()
	res, err := asm.Assemble(ctx, printbook.Input{
		HTML:              string(htmlContent),
		CSS:               string(cssContent),
		CSSName:           cfg.Input.CSS,
		Cover:             cover,
		CoverName:         cfg.Input.Cover,
		CoverAlt:          cfg.Document.CoverAlt,
		Profile:           cfg.Profile,
		Title:             cfg.Document.Title,
		Author:            cfg.Document.Author,
		Lang:              cfg.Document.Lang,
		LegacyCoverMarker: cfg.Document.LegacyCoverMarker,
		KeepLegacyCover:   cfg.Document.LegacyCoverMarker == "",
		RenderPDF:         cfg.Output.PDF != "",
	})
	if err != nil {
		return withHint(err)
	}

	if !res.BodyFound {
		logger.Warn("no <body> region in source, output holds the cover only", zap.String("html", cfg.Input.HTML))
	}

	outPath := cfg.Output.Path
	if outPath == "" {
		outPath = res.Profile.DefaultOutput
	}
	if err := fileutil.WriteFile(outPath, res.HTML); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if res.PDF != nil {
		if err := fileutil.WriteFile(cfg.Output.PDF, res.PDF); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}
	logger.Info("build complete",
		zap.String("profile", res.Profile.Name),
		zap.Duration("elapsed", env.Now().Sub(start).Round(time.Millisecond)))

	if !flags.common.quiet {
		printSummary(env, outPath, cfg, res)
	}
	return nil
}

// printSummary writes the status lines of a successful build.
func printSummary(env *Environment, outPath string, cfg *config.Config, res *printbook.Result) {
	fmt.Fprintf(env.Stdout, "Created %s successfully!\n", outPath)
	fmt.Fprintf(env.Stdout, "- Embedded CSS from %s\n", cfg.Input.CSS)
	fmt.Fprintf(env.Stdout, "- Embedded cover image from %s\n", cfg.Input.Cover)
	fmt.Fprintf(env.Stdout, "- %s\n", res.Profile.Description)
	fmt.Fprintf(env.Stdout, "File size: %d bytes\n", len(res.HTML))
	if res.PDF != nil {
		fmt.Fprintf(env.Stdout, "Created %s\n", cfg.Output.PDF)
	}
}

// loadConfig returns the named config layered over defaults, or the
// defaults alone when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags over cfg (CLI wins).
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	setIf(&cfg.Input.HTML, flags.input.html)
	setIf(&cfg.Input.CSS, flags.input.css)
	setIf(&cfg.Input.Cover, flags.input.cover)

	setIf(&cfg.Output.Path, flags.output)
	setIf(&cfg.Output.PDF, flags.pdf)
	setIf(&cfg.Output.Timeout, flags.timeout)

	setIf(&cfg.Document.Title, flags.document.title)
	setIf(&cfg.Document.Author, flags.document.author)
	setIf(&cfg.Document.Lang, flags.document.lang)
	setIf(&cfg.Document.CoverAlt, flags.document.coverAlt)
	setIf(&cfg.Document.LegacyCoverMarker, flags.document.marker)
	if flags.document.keepLegacyCover {
		cfg.Document.LegacyCoverMarker = ""
	}

	setIf(&cfg.Profile, flags.profile)
	setIf(&cfg.Assets.BasePath, flags.assetPath)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// resolveTimeout picks the first non-empty of flag, env and config.
// Zero means the library default.
func resolveTimeout(flagValue, envValue, configValue string) (time.Duration, error) {
	for _, v := range []string{flagValue, envValue, configValue} {
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", config.ErrInvalidTimeout, v, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q must be positive", config.ErrInvalidTimeout, v)
		}
		return d, nil
	}
	return 0, nil
}

// readInput reads one source file, hinting at the flag and config key that
// override its path.
func readInput(path, flagName, configKey string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w%s", ErrReadInput, err, hints.ForMissingInput(flagName, configKey))
	}
	return data, nil
}

// newLogger builds the diagnostics logger on stderr.
func newLogger(env *Environment, f commonFlags) (*zap.Logger, error) {
	level := "warn"
	switch {
	case f.quiet:
		level = "error"
	case f.verbose:
		level = "debug"
	}
	logger, err := logging.New(env.Stderr, logging.Config{
		Level:  level,
		Format: f.logFormat,
		Color:  colorEnabled(env.Stderr, env.Getenv),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return logger, nil
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// withHint appends an actionable hint to library errors.
func withHint(err error) error {
	switch {
	case errors.Is(err, printbook.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, printbook.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, printbook.ErrUnknownProfile):
		return fmt.Errorf("%w%s", err, hints.ForProfileNotFound(printbook.ProfileNames()))
	}
	return err
}
