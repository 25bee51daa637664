// Package assets provides print CSS profiles and HTML templates for document assembly.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in profiles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in print profiles (standard, enhanced)
// and the cover page template embedded at compile time.
//
// AssetResolver tries the custom FilesystemLoader first, falling back to
// EmbeddedLoader if the asset is not found. This lets a book override the
// print rules of one profile while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {profile}.css        # print CSS overrides (e.g., enhanced.css)
//	└── templates/
//	    └── {name}.html          # HTML fragments (e.g., cover.html)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
