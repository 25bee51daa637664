package assets

import (
	"errors"
	"slices"
)

// AssetResolver serves assets from an optional book directory and falls
// back to the embedded set when that directory lacks a file.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without a base path
	embedded *EmbeddedLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath
// serves embedded assets only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle loads a print stylesheet.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.load(styleKind, name)
}

// LoadTemplate loads an HTML template.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.load(templateKind, name)
}

// load only falls through on a missing file. Invalid names and read
// errors from the book directory are returned as is.
func (r *AssetResolver) load(k kind, name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.read(k, name)
		if !errors.Is(err, k.notFound) {
			return content, err
		}
	}
	return readEmbedded(k, name)
}

// StyleNames lists every loadable style, embedded and custom, sorted and
// without duplicates.
func (r *AssetResolver) StyleNames() []string {
	names := r.embedded.StyleNames()
	if r.custom != nil {
		names = append(names, r.custom.StyleNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// HasCustomLoader reports whether a book directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
