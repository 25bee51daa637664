package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	printbook "github.com/alnah/go-printbook"
)

// pngCover is a minimal PNG signature; enough for MIME sniffing.
var pngCover = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

const bookHTML = `<!DOCTYPE html>
<html>
<head><title>Web</title></head>
<body>
<!-- BOOK COVER -->
<div class="book-cover">web cover</div>
<h1>Full Blood Count</h1>
<p>Haemoglobin, white cells and platelets.</p>
</body>
</html>
`

const bookCSS = "h1 { color: #8b0000; }"

// bookDir writes the three default inputs into a temp dir.
func bookDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string][]byte{
		"complete_medical_textbook.html": []byte(bookHTML),
		"medical-textbook-styles.css":    []byte(bookCSS),
		"BTInterpretation.png":           pngCover,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return dir
}

// inputArgs points build at the files in dir.
func inputArgs(dir string) []string {
	return []string{
		"--html", filepath.Join(dir, "complete_medical_textbook.html"),
		"--css", filepath.Join(dir, "medical-textbook-styles.css"),
		"--cover", filepath.Join(dir, "BTInterpretation.png"),
	}
}

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := DefaultEnv()
	env.Stdout = &stdout
	env.Stderr = &stderr
	env.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	env.Getenv = func(string) string { return "" }
	return env, &stdout, &stderr
}

// fakeAssembler wraps the real assembler and fakes PDF rendering.
type fakeAssembler struct {
	real     *printbook.Assembler
	pdf      []byte
	err      error
	lastOpts int
	input    printbook.Input
	closed   bool
}

func (f *fakeAssembler) Assemble(ctx context.Context, input printbook.Input) (*printbook.Result, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	render := input.RenderPDF
	input.RenderPDF = false
	res, err := f.real.Assemble(ctx, input)
	if err != nil {
		return nil, err
	}
	if render {
		res.PDF = f.pdf
	}
	return res, nil
}

func (f *fakeAssembler) Close() error {
	f.closed = true
	return f.real.Close()
}

func withFakeAssembler(t *testing.T, env *Environment, fake *fakeAssembler) {
	t.Helper()
	env.NewAssembler = func(opts ...printbook.Option) (Assembler, error) {
		real, err := printbook.NewAssembler(opts...)
		if err != nil {
			return nil, err
		}
		fake.real = real
		fake.lastOpts = len(opts)
		return fake, nil
	}
}
