package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in print profile stylesheet.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readEmbedded(styleKind, name)
}

// LoadTemplate loads a built-in HTML template.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readEmbedded(templateKind, name)
}

// StyleNames lists the built-in styles, sorted, without extension.
func (e *EmbeddedLoader) StyleNames() []string {
	entries, err := fs.ReadDir(builtin, styleKind.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), styleKind.ext))
	}
	sort.Strings(names)
	return names
}

func readEmbedded(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := builtin.ReadFile(k.file(name))
	if err != nil {
		return "", k.missing(name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
