package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrCoverRender is returned when the cover template fails to execute.
var ErrCoverRender = errors.New("cover template rendering failed")

// CoverData holds the cover page values for template rendering.
type CoverData struct {
	Src string // data URI of the cover image
	Alt string
}

// CoverRenderer defines the contract for cover page rendering.
type CoverRenderer interface {
	RenderCover(ctx context.Context, data *CoverData) (string, error)
}

// CoverInjection renders the cover page fragment from an HTML template.
type CoverInjection struct {
	tmpl *template.Template
}

// NewCoverInjection parses the cover template content.
func NewCoverInjection(tmplContent string) (*CoverInjection, error) {
	tmpl, err := template.New("cover").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing cover template: %w", err)
	}

	return &CoverInjection{tmpl: tmpl}, nil
}

// coverView is the template view. SrcAttr is the complete src="..."
// attribute, written verbatim so the base64 payload keeps its '+'
// characters. Src is the same URI for templates that place it themselves;
// html/template entity-escapes it there.
type coverView struct {
	SrcAttr template.HTMLAttr
	Src     template.URL
	Alt     string
}

// RenderCover executes the cover template. A nil data renders nothing.
// html/template drops comments, so the template holds markup only.
func (c *CoverInjection) RenderCover(ctx context.Context, data *CoverData) (string, error) {
	if data == nil {
		return "", nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if !strings.HasPrefix(data.Src, dataURIPrefix) {
		return "", fmt.Errorf("%w: cover source must be a data URI", ErrCoverRender)
	}
	if strings.ContainsAny(data.Src, "\"'<>& \t\r\n") {
		return "", fmt.Errorf("%w: cover data URI contains markup characters", ErrCoverRender)
	}

	var buf bytes.Buffer
	view := coverView{
		SrcAttr: template.HTMLAttr(`src="` + data.Src + `"`), // #nosec G203 -- checked above
		Src:     template.URL(data.Src),                     // #nosec G203 -- checked above
		Alt:     data.Alt,
	}
	if err := c.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCoverRender, err)
	}

	return strings.TrimSpace(buf.String()), nil
}
