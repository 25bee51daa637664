package printbook

import (
	"time"

	"go.uber.org/zap"
)

// Option configures an Assembler.
type Option func(*Assembler)

// assemblerConfig holds internal configuration for Assembler.
type assemblerConfig struct {
	timeout   time.Duration
	assetPath string
}

// defaultTimeout bounds page loading during PDF rendering.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("printbook: WithTimeout duration must be positive")
	}
	return func(a *Assembler) {
		a.cfg.timeout = d
	}
}

// WithAssetPath loads styles and templates from path, falling back to the
// embedded assets for anything missing there.
func WithAssetPath(path string) Option {
	return func(a *Assembler) {
		a.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(a *Assembler) {
		a.publicLoader = loader
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// withPDFConverter injects a PDF backend (tests).
func withPDFConverter(c pdfConverter) Option {
	return func(a *Assembler) {
		a.pdf = c
	}
}
