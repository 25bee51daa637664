package printbook

import (
	"fmt"

	"github.com/alnah/go-printbook/internal/assets"
)

// AssetLoader loads print styles and HTML templates by name.
// Implement it to serve profiles from somewhere other than disk.
type AssetLoader interface {
	// LoadStyle loads the print CSS of a profile (name without .css).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template (name without .html).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

var _ AssetLoader = (*assets.AssetResolver)(nil)

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, only embedded assets are used. Otherwise files under
// basePath take precedence, falling back to embedded assets when missing:
//
//	basePath/
//	├── styles/<profile>.css
//	└── templates/cover.html
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}
