// Package config loads and validates YAML build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-printbook/internal/assets"
	"github.com/alnah/go-printbook/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("field is required")
	ErrInvalidProfile  = errors.New("invalid profile name")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxTitleLength  = 300  // Book title
	MaxAuthorLength = 200  // Author with credentials
	MaxLangLength   = 35   // BCP 47 tag
	MaxAltLength    = 300  // Cover alt text
	MaxMarkerLength = 200  // Legacy cover marker
)

// Defaults reproducing the single book the tool was written for.
const (
	DefaultHTMLPath  = "complete_medical_textbook.html"
	DefaultCSSPath   = "medical-textbook-styles.css"
	DefaultCoverPath = "BTInterpretation.png"
	DefaultProfile   = "standard"
	DefaultTitle     = "Blood Test Interpretation for Primary Care - Complete Medical Textbook"
	DefaultAuthor    = "Dr Michael Banovic MBBS MSc IM(Edin) MRCGP"
	DefaultLang      = "en"
	DefaultCoverAlt  = "Blood Test Interpretation Cover"
	DefaultMarker    = "<!-- BOOK COVER -->"
)

// Config holds all configuration for a print build.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Profile  string         `yaml:"profile"` // "standard" or "enhanced"
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig names the three source files.
type InputConfig struct {
	HTML  string `yaml:"html"`
	CSS   string `yaml:"css"`
	Cover string `yaml:"cover"`
}

// OutputConfig defines output destinations.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty = profile default
	PDF  string `yaml:"pdf"`  // Empty = no PDF
	// Timeout bounds PDF rendering, e.g. "2m". Empty = library default.
	Timeout string `yaml:"timeout"`
}

// DocumentConfig holds metadata written into the assembled document.
type DocumentConfig struct {
	Title             string `yaml:"title"`
	Author            string `yaml:"author"`
	Lang              string `yaml:"lang"`
	CoverAlt          string `yaml:"coverAlt"`
	LegacyCoverMarker string `yaml:"legacyCoverMarker"` // Empty = keep legacy cover
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			HTML:  DefaultHTMLPath,
			CSS:   DefaultCSSPath,
			Cover: DefaultCoverPath,
		},
		Document: DocumentConfig{
			Title:             DefaultTitle,
			Author:            DefaultAuthor,
			Lang:              DefaultLang,
			CoverAlt:          DefaultCoverAlt,
			LegacyCoverMarker: DefaultMarker,
		},
		Profile: DefaultProfile,
	}
}

// Validate checks required fields and field lengths.
// Called automatically by LoadConfig, but available for callers
// who build a Config by hand.
func (c *Config) Validate() error {
	required := []struct {
		field, value string
	}{
		{"input.html", c.Input.HTML},
		{"input.css", c.Input.CSS},
		{"input.cover", c.Input.Cover},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrFieldRequired, r.field)
		}
	}

	limits := []struct {
		field, value string
		max          int
	}{
		{"input.html", c.Input.HTML, MaxPathLength},
		{"input.css", c.Input.CSS, MaxPathLength},
		{"input.cover", c.Input.Cover, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"output.pdf", c.Output.PDF, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.lang", c.Document.Lang, MaxLangLength},
		{"document.coverAlt", c.Document.CoverAlt, MaxAltLength},
		{"document.legacyCoverMarker", c.Document.LegacyCoverMarker, MaxMarkerLength},
	}
	for _, l := range limits {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Output.Timeout != "" {
		d, err := time.ParseDuration(c.Output.Timeout)
		if err != nil {
			return fmt.Errorf("%w: output.timeout: %v", ErrInvalidTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: output.timeout must be positive", ErrInvalidTimeout)
		}
	}

	if err := assets.ValidateAssetName(c.Profile); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	return nil
}

// validateFieldLength returns an error if value exceeds maxLen characters.
func validateFieldLength(field, value string, maxLen int) error {
	if n := len([]rune(value)); n > maxLen {
		return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, field, n, maxLen)
	}
	return nil
}

// LoadConfig loads a config by name or path, layered over DefaultConfig.
// If nameOrPath contains a path separator, it is used as a file path.
// Otherwise, it is resolved as a config name in standard locations.
// Keys absent from the file keep their default values; unknown keys are errors.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// <name>.yaml and <name>.yml in the current directory, then in
// ~/.config/go-printbook/ (or the platform equivalent).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-printbook", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
