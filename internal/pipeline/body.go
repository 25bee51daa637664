package pipeline

import "strings"

// DefaultLegacyCoverMarker precedes the web edition's cover block.
const DefaultLegacyCoverMarker = "<!-- BOOK COVER -->"

const (
	bodyOpenTag  = "<body"
	bodyCloseTag = "</body>"
	divCloseTag  = "</div>"
)

// ExtractBody returns the trimmed content between the first opening body tag
// and the first </body>. The opening tag may carry attributes and both tags
// match case-insensitively. ok is false when either tag is missing or the
// closing tag comes first.
func ExtractBody(htmlContent string) (body string, ok bool) {
	start := bodyContentStart(htmlContent)
	if start == -1 {
		return "", false
	}

	end := indexFold(htmlContent, bodyCloseTag)
	if end == -1 || end < start {
		return "", false
	}

	return strings.TrimSpace(htmlContent[start:end]), true
}

// bodyContentStart returns the index just past the first opening body tag,
// or -1. "<bodyx>" and similar tags are not body tags.
func bodyContentStart(htmlContent string) int {
	offset := 0
	for {
		idx := indexFold(htmlContent[offset:], bodyOpenTag)
		if idx == -1 {
			return -1
		}
		tagStart := offset + idx
		next := tagStart + len(bodyOpenTag)
		if next >= len(htmlContent) {
			return -1
		}

		switch htmlContent[next] {
		case '>', ' ', '\t', '\n', '\r', '/':
			closeIdx := strings.IndexByte(htmlContent[next:], '>')
			if closeIdx == -1 {
				return -1
			}
			return next + closeIdx + 1
		}
		offset = next
	}
}

// StripLegacyCover removes the section running from marker through the first
// </div> after it. Every identical copy of that section is removed. The body
// is returned unchanged, with removed=false, if marker is empty, absent, or
// not followed by </div>.
//
// Only the first </div> is considered, so a cover block with nested divs is
// cut at the innermost close.
func StripLegacyCover(body, marker string) (stripped string, removed bool) {
	if marker == "" {
		return body, false
	}

	start := strings.Index(body, marker)
	if start == -1 {
		return body, false
	}

	rel := strings.Index(body[start:], divCloseTag)
	if rel == -1 {
		return body, false
	}

	section := body[start : start+rel+len(divCloseTag)]
	return strings.ReplaceAll(body, section, ""), true
}

// indexFold is strings.Index with ASCII case folding. Byte offsets in the
// result are valid for s, which is not true after strings.ToLower on
// non-ASCII input.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if asciiEqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func asciiEqualFold(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
