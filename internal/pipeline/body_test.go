package pipeline

import (
	"strings"
	"testing"
)

func TestExtractBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "plain body",
			html:     "<html><body><p>Hello</p></body></html>",
			wantBody: "<p>Hello</p>",
			wantOK:   true,
		},
		{
			name:     "trims surrounding whitespace",
			html:     "<body>\n\n  <p>Hello</p>  \n</body>",
			wantBody: "<p>Hello</p>",
			wantOK:   true,
		},
		{
			name:     "body with attributes",
			html:     `<body class="book" id="top"><h1>T</h1></body>`,
			wantBody: "<h1>T</h1>",
			wantOK:   true,
		},
		{
			name:     "mixed case tags",
			html:     "<BODY><p>x</p></Body>",
			wantBody: "<p>x</p>",
			wantOK:   true,
		},
		{
			name:     "first closing tag wins",
			html:     "<body>a</body>b</body>",
			wantBody: "a",
			wantOK:   true,
		},
		{
			name:     "tag with body prefix is skipped",
			html:     "<bodyguard>x</bodyguard><body>real</body>",
			wantBody: "real",
			wantOK:   true,
		},
		{
			name:     "empty body",
			html:     "<body></body>",
			wantBody: "",
			wantOK:   true,
		},
		{
			name:   "missing opening tag",
			html:   "<html><p>x</p></body></html>",
			wantOK: false,
		},
		{
			name:   "missing closing tag",
			html:   "<html><body><p>x</p></html>",
			wantOK: false,
		},
		{
			name:   "closing tag before opening tag",
			html:   "</body><body>x",
			wantOK: false,
		},
		{
			name:   "unterminated opening tag",
			html:   "<body class=\"x\"",
			wantOK: false,
		},
		{
			name:   "empty input",
			html:   "",
			wantOK: false,
		},
		{
			name:     "non-ASCII before body keeps offsets",
			html:     "<title>İstanbul ǅ</title><body>ok</body>",
			wantBody: "ok",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ExtractBody(tt.html)
			if ok != tt.wantOK {
				t.Fatalf("ExtractBody(%q) ok = %v, want %v", tt.html, ok, tt.wantOK)
			}
			if got != tt.wantBody {
				t.Errorf("ExtractBody(%q) = %q, want %q", tt.html, got, tt.wantBody)
			}
		})
	}
}

func TestStripLegacyCover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		marker      string
		want        string
		wantRemoved bool
	}{
		{
			name:        "removes marker through first closing div",
			body:        "<!-- BOOK COVER -->\n<div class=\"book-cover\"><img src=\"c.png\"></div>\n<h1>Chapter</h1>",
			marker:      DefaultLegacyCoverMarker,
			want:        "\n<h1>Chapter</h1>",
			wantRemoved: true,
		},
		{
			name:        "keeps content before marker",
			body:        "<p>intro</p><!-- BOOK COVER --><div>c</div><p>after</p>",
			marker:      DefaultLegacyCoverMarker,
			want:        "<p>intro</p><p>after</p>",
			wantRemoved: true,
		},
		{
			name:        "nested div is cut at first close",
			body:        "<!-- BOOK COVER --><div><div>inner</div>tail</div>rest",
			marker:      DefaultLegacyCoverMarker,
			want:        "tail</div>rest",
			wantRemoved: true,
		},
		{
			name:        "identical copies are all removed",
			body:        "<!-- BOOK COVER --><div>c</div>x<!-- BOOK COVER --><div>c</div>y",
			marker:      DefaultLegacyCoverMarker,
			want:        "xy",
			wantRemoved: true,
		},
		{
			name:   "marker absent leaves body unchanged",
			body:   "<div>c</div><p>text</p>",
			marker: DefaultLegacyCoverMarker,
			want:   "<div>c</div><p>text</p>",
		},
		{
			name:   "marker without closing div leaves body unchanged",
			body:   "<p>a</p><!-- BOOK COVER --><p>b</p>",
			marker: DefaultLegacyCoverMarker,
			want:   "<p>a</p><!-- BOOK COVER --><p>b</p>",
		},
		{
			name:   "closing div only before marker",
			body:   "<div>a</div><!-- BOOK COVER -->",
			marker: DefaultLegacyCoverMarker,
			want:   "<div>a</div><!-- BOOK COVER -->",
		},
		{
			name:   "empty marker disables stripping",
			body:   "<!-- BOOK COVER --><div>c</div>",
			marker: "",
			want:   "<!-- BOOK COVER --><div>c</div>",
		},
		{
			name:        "custom marker",
			body:        "<!-- WEB ONLY --><div>banner</div><p>x</p>",
			marker:      "<!-- WEB ONLY -->",
			want:        "<p>x</p>",
			wantRemoved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, removed := StripLegacyCover(tt.body, tt.marker)
			if removed != tt.wantRemoved {
				t.Errorf("StripLegacyCover() removed = %v, want %v", removed, tt.wantRemoved)
			}
			if got != tt.want {
				t.Errorf("StripLegacyCover() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripLegacyCover_NoMarkerNeverTruncates(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("<div class=\"section\"><p>text</p></div>\n", 200)
	got, removed := StripLegacyCover(body, DefaultLegacyCoverMarker)
	if removed {
		t.Error("expected removed = false")
	}
	if got != body {
		t.Errorf("body changed: len %d, want %d", len(got), len(body))
	}
}

func TestIndexFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s, substr string
		want      int
	}{
		{"abc</BODY>", "</body>", 3},
		{"abc", "</body>", -1},
		{"", "x", -1},
		{"x", "", 0},
		{"ÄÖ<Body>", "<body", len("ÄÖ")},
	}

	for _, tt := range tests {
		if got := indexFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("indexFold(%q, %q) = %d, want %d", tt.s, tt.substr, got, tt.want)
		}
	}
}
