package pipeline

import (
	"context"
	"html"
	"strings"
)

// Document holds every piece of the assembled print document.
type Document struct {
	Title         string
	Author        string
	Lang          string
	HeaderComment string // authoring note placed after the doctype
	StyleSource   string // name of the external stylesheet, shown in a CSS comment
	CSS           string // external stylesheet, embedded verbatim
	PrintHeading  string // CSS comment above the print rules
	PrintCSS      string
	Cover         string // rendered cover page fragment
	Body          string // retained body content
	HasBody       bool   // false skips the body content entirely
}

// Assemble builds the print-ready HTML document. The output depends only on
// doc, so identical documents produce identical bytes.
func Assemble(ctx context.Context, doc *Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.Grow(len(doc.CSS) + len(doc.PrintCSS) + len(doc.Cover) + len(doc.Body) + 1024)

	buf.WriteString("<!DOCTYPE html>\n")
	if doc.Author != "" {
		buf.WriteString("<!-- Created by " + commentText(doc.Author) + " -->\n")
	}
	if doc.HeaderComment != "" {
		buf.WriteString("<!-- " + commentText(doc.HeaderComment) + " -->\n")
	}
	buf.WriteString(`<html lang="` + html.EscapeString(doc.Lang) + "\">\n")
	buf.WriteString("<head>\n")
	buf.WriteString("    <meta charset=\"UTF-8\">\n")
	buf.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	buf.WriteString("    <title>" + html.EscapeString(doc.Title) + "</title>\n")
	if doc.Author != "" {
		buf.WriteString(`    <meta name="author" content="` + html.EscapeString(doc.Author) + "\">\n")
	}
	buf.WriteString("    <style>\n")
	buf.WriteString("/* External CSS from " + cssCommentText(doc.StyleSource) + " */\n")
	buf.WriteString(doc.CSS)
	buf.WriteString("\n\n")
	buf.WriteString("/* " + cssCommentText(doc.PrintHeading) + " */\n")
	buf.WriteString(doc.PrintCSS)
	buf.WriteString("\n    </style>\n")
	buf.WriteString("</head>\n")
	buf.WriteString("<body>\n\n")

	if doc.Cover != "" {
		buf.WriteString("<!-- COVER PAGE WITH IMAGE -->\n")
		buf.WriteString(doc.Cover)
		buf.WriteString("\n\n")
	}

	if doc.HasBody {
		buf.WriteString(doc.Body)
	}

	buf.WriteString("\n</body>\n</html>\n")

	return buf.String(), nil
}

// commentText keeps text from closing an HTML comment early.
func commentText(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}

// cssCommentText keeps text from closing a CSS comment early.
func cssCommentText(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
