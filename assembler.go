package printbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-printbook/internal/assets"
	"github.com/alnah/go-printbook/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.CoverRenderer = (*pipeline.CoverInjection)(nil)
	_ pdfConverter           = (*rodConverter)(nil)
	_ pdfRenderer            = (*rodRenderer)(nil)
)

// Assembler builds print-ready documents.
// Create with NewAssembler, call Assemble per book, and Close when done.
// An Assembler is not safe for concurrent use.
type Assembler struct {
	cfg          assemblerConfig
	loader       AssetLoader
	publicLoader AssetLoader // from WithAssetLoader
	cover        pipeline.CoverRenderer
	pdf          pdfConverter
	logger       *zap.Logger
}

// NewAssembler creates an Assembler with embedded assets.
// Returns error if the asset path is invalid or the cover template fails to parse.
func NewAssembler(opts ...Option) (*Assembler, error) {
	a := &Assembler{
		cfg:    assemblerConfig{timeout: defaultTimeout},
		loader: assets.NewEmbeddedLoader(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.cfg.assetPath != "" {
		loader, err := NewAssetLoader(a.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		a.loader = loader
	}
	if a.publicLoader != nil {
		a.loader = a.publicLoader
	}

	tmpl, err := a.loader.LoadTemplate(assets.CoverTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading cover template: %w", err)
	}
	a.cover, err = pipeline.NewCoverInjection(tmpl)
	if err != nil {
		return nil, fmt.Errorf("initializing cover renderer: %w", err)
	}

	if a.pdf == nil {
		a.pdf = newRodConverter(a.cfg.timeout, a.logger)
	}

	return a, nil
}

// Assemble builds the print document for input.
// Absent <body> or legacy cover markers are not errors; Result reports what
// was found. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (a *Assembler) Assemble(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrAssembly, r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, printCSS, err := a.resolveProfile(input.Profile)
	if err != nil {
		return nil, err
	}

	res := &Result{Profile: profile}

	body, found := pipeline.ExtractBody(input.HTML)
	res.BodyFound = found
	if found && !input.KeepLegacyCover {
		marker := input.LegacyCoverMarker
		if marker == "" {
			marker = DefaultLegacyCoverMarker
		}
		body, res.LegacyCoverRemoved = pipeline.StripLegacyCover(body, marker)
	}
	a.logger.Debug("source body",
		zap.Bool("found", res.BodyFound),
		zap.Int("bytes", len(body)),
		zap.Bool("legacyCoverRemoved", res.LegacyCoverRemoved))

	res.CoverMIME = input.CoverMIME
	if res.CoverMIME == "" {
		res.CoverMIME = pipeline.DetectImageMIME(input.CoverName, input.Cover)
	}
	coverHTML, err := a.cover.RenderCover(ctx, &pipeline.CoverData{
		Src: pipeline.EncodeDataURI(input.Cover, res.CoverMIME),
		Alt: withDefault(input.CoverAlt, DefaultCoverAlt),
	})
	if err != nil {
		return nil, assemblyError(err)
	}
	a.logger.Debug("cover embedded",
		zap.String("mime", res.CoverMIME),
		zap.Int("imageBytes", len(input.Cover)))

	out, err := pipeline.Assemble(ctx, &pipeline.Document{
		Title:         input.Title,
		Author:        input.Author,
		Lang:          withDefault(input.Lang, DefaultLang),
		HeaderComment: profile.HeaderComment,
		StyleSource:   withDefault(input.CSSName, DefaultCSSName),
		CSS:           input.CSS,
		PrintHeading:  profile.CSSHeading,
		PrintCSS:      printCSS,
		Cover:         coverHTML,
		Body:          body,
		HasBody:       found,
	})
	if err != nil {
		return nil, assemblyError(err)
	}
	res.HTML = []byte(out)

	if !input.RenderPDF {
		return res, nil
	}

	start := time.Now()
	pdf, err := a.pdf.ToPDF(ctx, out)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	a.logger.Debug("pdf rendered",
		zap.Int("bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)))
	res.PDF = pdf

	return res, nil
}

// Close releases resources (headless Chrome browser).
func (a *Assembler) Close() error {
	if a.pdf != nil {
		return a.pdf.Close()
	}
	return nil
}

// resolveProfile returns the profile and its print CSS. Names outside the
// built-in set are accepted when the asset loader has a matching style.
func (a *Assembler) resolveProfile(name string) (Profile, string, error) {
	profile, err := LookupProfile(name)
	if err != nil {
		profile = customProfile(name)
	}

	css, loadErr := a.loader.LoadStyle(profile.Name)
	if loadErr != nil {
		if err != nil && errors.Is(loadErr, ErrStyleNotFound) {
			return Profile{}, "", err
		}
		return Profile{}, "", fmt.Errorf("loading profile %q: %w", profile.Name, loadErr)
	}

	return profile, css, nil
}

// validateInput checks the fields that cannot be defaulted.
func validateInput(input Input) error {
	if len(input.Cover) == 0 {
		return ErrEmptyCover
	}
	return nil
}

// assemblyError wraps err in ErrAssembly, passing context errors through.
func assemblyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrAssembly, err)
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
