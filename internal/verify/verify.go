// Package verify inspects an assembled print document: the embedded cover,
// leftover legacy cover markers, and the document metadata.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/alnah/go-printbook/internal/pipeline"
)

// Sentinel errors for inspection.
var (
	ErrParse       = errors.New("failed to parse document")
	ErrNoCover     = errors.New("no cover image found")
	ErrCoverSource = errors.New("cover image is not an embedded data URI")
)

const (
	coverSelector    = ".cover-page"
	coverImgSelector = ".cover-page img"
)

// Report describes an assembled document.
type Report struct {
	Title  string
	Lang   string
	Author string

	// CoverPages counts .cover-page elements.
	CoverPages int
	CoverMIME  string
	CoverAlt   string
	Cover      []byte

	StyleBlocks int
	PrintRules  bool

	// LegacyCoverMarkers counts comments matching the legacy marker that
	// survived assembly.
	LegacyCoverMarkers int

	// BodyElements counts top-level body elements outside the cover page.
	BodyElements int
}

// Inspect parses r and reports on it. legacyMarker is the full comment,
// e.g. "<!-- BOOK COVER -->"; empty skips the marker count.
func Inspect(r io.Reader, legacyMarker string) (*Report, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	doc := goquery.NewDocumentFromNode(root)

	rep := &Report{
		Title:       strings.TrimSpace(doc.Find("head title").First().Text()),
		Lang:        doc.Find("html").AttrOr("lang", ""),
		Author:      doc.Find(`meta[name="author"]`).AttrOr("content", ""),
		CoverPages:  doc.Find(coverSelector).Length(),
		StyleBlocks: doc.Find("style").Length(),
	}

	doc.Find("style").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rep.PrintRules = strings.Contains(s.Text(), "@media print")
		return !rep.PrintRules
	})

	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		if !s.Is(coverSelector) {
			rep.BodyElements++
		}
	})

	if text := markerText(legacyMarker); text != "" {
		rep.LegacyCoverMarkers = countComments(root, text)
	}

	img := doc.Find(coverImgSelector).First()
	if img.Length() == 0 {
		return rep, nil
	}
	rep.CoverAlt = img.AttrOr("alt", "")

	src, ok := img.Attr("src")
	if !ok {
		return rep, nil
	}
	mimeType, data, err := pipeline.DecodeDataURI(src)
	if err != nil {
		return rep, fmt.Errorf("%w: %v", ErrCoverSource, err)
	}
	rep.CoverMIME = mimeType
	rep.Cover = data

	return rep, nil
}

// MatchesCover reports whether the embedded cover decodes byte-for-byte to
// original.
func (r *Report) MatchesCover(original []byte) bool {
	return r.Cover != nil && bytes.Equal(r.Cover, original)
}

// Problems lists what makes the document unfit for print. An empty result
// means the document passed.
func (r *Report) Problems() []string {
	var problems []string
	switch {
	case r.CoverPages == 0:
		problems = append(problems, ErrNoCover.Error())
	case r.CoverPages > 1:
		problems = append(problems, fmt.Sprintf("%d cover pages, want 1", r.CoverPages))
	}
	if r.CoverPages > 0 && len(r.Cover) == 0 {
		problems = append(problems, "cover image is empty")
	}
	if r.LegacyCoverMarkers > 0 {
		problems = append(problems, fmt.Sprintf("%d legacy cover marker(s) left in body", r.LegacyCoverMarkers))
	}
	if !r.PrintRules {
		problems = append(problems, "no @media print rules")
	}
	return problems
}

// markerText turns "<!-- BOOK COVER -->" into "BOOK COVER".
func markerText(marker string) string {
	s := strings.TrimSpace(marker)
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	return strings.TrimSpace(s)
}

func countComments(n *html.Node, text string) int {
	count := 0
	if n.Type == html.CommentNode && strings.TrimSpace(n.Data) == text {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countComments(c, text)
	}
	return count
}
