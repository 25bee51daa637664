package printbook

import "github.com/alnah/go-printbook/internal/pipeline"

// DefaultLegacyCoverMarker opens the web edition's cover block.
const DefaultLegacyCoverMarker = pipeline.DefaultLegacyCoverMarker

// Defaults applied to empty Input fields.
const (
	DefaultLang     = "en"
	DefaultCoverAlt = "Cover"
	DefaultCSSName  = "stylesheet"
)

// Input holds everything needed for one assembly.
type Input struct {
	// HTML is the source document. Only the <body> region is kept; an empty
	// or body-less source yields a document with the cover only.
	// The opening tag matches in any ASCII case and may carry attributes,
	// so <BODY> and <body class="book"> both start the region.
	HTML string
	// CSS is embedded verbatim.
	CSS string
	// CSSName labels the stylesheet inside the <style> block.
	CSSName string

	// Cover is the raw cover image. Required.
	Cover []byte
	// CoverName is used to guess the MIME type when sniffing fails.
	CoverName string
	// CoverMIME overrides detection when set.
	CoverMIME string
	CoverAlt  string

	// Profile selects the print rules. Empty means DefaultProfile.
	Profile string

	Title  string
	Author string
	Lang   string

	// LegacyCoverMarker opens the block removed from the body. Empty means
	// DefaultLegacyCoverMarker.
	LegacyCoverMarker string
	// KeepLegacyCover disables legacy cover removal.
	KeepLegacyCover bool

	// RenderPDF also prints the document through headless Chrome.
	RenderPDF bool
}

// Result holds the output of one assembly.
type Result struct {
	HTML []byte
	// PDF is nil unless Input.RenderPDF was set.
	PDF []byte
	// Profile is the profile that was applied.
	Profile Profile
	// CoverMIME is the MIME type written into the data URI.
	CoverMIME string
	// BodyFound reports whether a <body> region was located in the source.
	BodyFound bool
	// LegacyCoverRemoved reports whether a legacy cover block was stripped.
	LegacyCoverRemoved bool
}
