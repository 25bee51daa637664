package printbook

import (
	"errors"

	"github.com/alnah/go-printbook/internal/assets"
)

// Sentinel errors for library operations.
var (
	ErrEmptyCover     = errors.New("cover image cannot be empty")
	ErrUnknownProfile = errors.New("unknown print profile")
	ErrAssembly       = errors.New("document assembly failed")

	// PDF rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
