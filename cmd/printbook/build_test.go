package main

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	printbook "github.com/alnah/go-printbook"
	"github.com/alnah/go-printbook/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunBuild - End-to-end build with real assembly
// ---------------------------------------------------------------------------

func TestRunBuild(t *testing.T) {
	t.Parallel()

	t.Run("writes output and prints summary", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		out := filepath.Join(dir, "print.html")
		env, stdout, stderr := testEnv()

		args := append([]string{"printbook"}, inputArgs(dir)...)
		args = append(args, "-o", out)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("output not written: %v", err)
		}
		got := string(data)
		if !strings.Contains(got, bookCSS) {
			t.Error("output should embed the stylesheet verbatim")
		}
		if !strings.Contains(got, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngCover)) {
			t.Error("output should embed the cover as a data URI")
		}
		if strings.Contains(got, "web cover") || strings.Contains(got, "<!-- BOOK COVER -->") {
			t.Error("legacy cover block should be removed")
		}
		if !strings.Contains(got, "<h1>Full Blood Count</h1>") {
			t.Error("body content should be kept")
		}

		summary := stdout.String()
		for _, want := range []string{
			"Created " + out + " successfully!",
			"- Embedded CSS from " + filepath.Join(dir, "medical-textbook-styles.css"),
			"- Embedded cover image from " + filepath.Join(dir, "BTInterpretation.png"),
			"- Added print color preservation rules",
			"File size: ",
		} {
			if !strings.Contains(summary, want) {
				t.Errorf("summary should contain %q, got %q", want, summary)
			}
		}
		if !strings.Contains(summary, "File size: "+strconv.Itoa(len(data))+" bytes") {
			t.Errorf("summary should report %d bytes, got %q", len(data), summary)
		}
	})

	t.Run("enhanced profile", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		out := filepath.Join(dir, "enhanced.html")
		env, stdout, _ := testEnv()

		args := append([]string{"printbook", "build", "--profile", "enhanced", "-o", out}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		p, _ := printbook.LookupProfile(printbook.ProfileEnhanced)
		if !strings.Contains(stdout.String(), p.Description) {
			t.Errorf("summary should describe the enhanced profile, got %q", stdout.String())
		}
	})

	t.Run("quiet suppresses summary", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		env, stdout, _ := testEnv()

		args := append([]string{"printbook", "-q", "-o", filepath.Join(dir, "out.html")}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if stdout.Len() != 0 {
			t.Errorf("quiet build should print nothing, got %q", stdout.String())
		}
	})

	t.Run("keep legacy cover", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		out := filepath.Join(dir, "out.html")
		env, _, _ := testEnv()

		args := append([]string{"printbook", "--keep-legacy-cover", "-o", out}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		data, _ := os.ReadFile(out)
		if !strings.Contains(string(data), "web cover") {
			t.Error("legacy cover should be kept")
		}
	})

	t.Run("metadata flags", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		out := filepath.Join(dir, "out.html")
		env, _, _ := testEnv()

		args := append([]string{"printbook", "--title", "Lipids", "--author", "A. Writer", "--lang", "fr", "-o", out}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		data, _ := os.ReadFile(out)
		for _, want := range []string{"<title>Lipids</title>", `content="A. Writer"`, `lang="fr"`} {
			if !strings.Contains(string(data), want) {
				t.Errorf("output should contain %q", want)
			}
		}
	})

	t.Run("config file with flag override", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		cfgPath := filepath.Join(dir, "book.yaml")
		yaml := "input:\n" +
			"  html: " + filepath.Join(dir, "complete_medical_textbook.html") + "\n" +
			"  css: " + filepath.Join(dir, "medical-textbook-styles.css") + "\n" +
			"  cover: " + filepath.Join(dir, "BTInterpretation.png") + "\n" +
			"output:\n  path: " + filepath.Join(dir, "from-config.html") + "\n" +
			"document:\n  title: From Config\n"
		if err := os.WriteFile(cfgPath, []byte(yaml), 0o600); err != nil {
			t.Fatal(err)
		}
		env, _, stderr := testEnv()

		code := runMain([]string{"printbook", "-c", cfgPath, "--title", "From Flag"}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
		}
		data, err := os.ReadFile(filepath.Join(dir, "from-config.html"))
		if err != nil {
			t.Fatalf("config output path not used: %v", err)
		}
		if !strings.Contains(string(data), "<title>From Flag</title>") {
			t.Error("flag should override config title")
		}
	})

	t.Run("verbose logs to stderr", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		env, _, stderr := testEnv()

		args := append([]string{"printbook", "-v", "--log-format", "json", "-o", filepath.Join(dir, "out.html")}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if !strings.Contains(stderr.String(), `"msg":"inputs read"`) {
			t.Errorf("verbose json logs should include inputs read, got %q", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunBuild_Errors - Failure paths and exit codes
// ---------------------------------------------------------------------------

func TestRunBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		extra      func(dir string) []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "missing css",
			extra:      func(dir string) []string { return []string{"--css", filepath.Join(dir, "missing.css")} },
			wantCode:   ExitIO,
			wantStderr: "--css",
		},
		{
			name:       "missing cover",
			extra:      func(dir string) []string { return []string{"--cover", filepath.Join(dir, "missing.png")} },
			wantCode:   ExitIO,
			wantStderr: "--cover",
		},
		{
			name:       "unknown profile",
			extra:      func(string) []string { return []string{"--profile", "glossy"} },
			wantCode:   ExitUsage,
			wantStderr: "available profiles: enhanced, standard",
		},
		{
			name:       "invalid timeout",
			extra:      func(string) []string { return []string{"--timeout", "soon"} },
			wantCode:   ExitUsage,
			wantStderr: "invalid timeout",
		},
		{
			name:       "positional argument",
			extra:      func(string) []string { return []string{"book.html"} },
			wantCode:   ExitUsage,
			wantStderr: "unexpected argument",
		},
		{
			name:       "missing config",
			extra:      func(string) []string { return []string{"-c", "no-such-config"} },
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name:       "output directory missing",
			extra:      func(dir string) []string { return []string{"-o", filepath.Join(dir, "nope", "out.html")} },
			wantCode:   ExitIO,
			wantStderr: "failed to write output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := bookDir(t)
			env, _, stderr := testEnv()

			args := append([]string{"printbook", "build"}, inputArgs(dir)...)
			if !containsFlag(tt.extra(dir), "-o") {
				args = append(args, "-o", filepath.Join(dir, "out.html"))
			}
			args = append(args, tt.extra(dir)...)

			code := runMain(args, env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunBuild_PDF - PDF output through an injected assembler
// ---------------------------------------------------------------------------

func TestRunBuild_PDF(t *testing.T) {
	t.Parallel()

	t.Run("writes pdf next to html", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		pdfPath := filepath.Join(dir, "book.pdf")
		env, stdout, stderr := testEnv()
		fake := &fakeAssembler{pdf: []byte("%PDF-1.4 fake")}
		withFakeAssembler(t, env, fake)

		args := append([]string{"printbook", "-o", filepath.Join(dir, "out.html"), "--pdf", pdfPath, "-t", "5s"}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
		}

		data, err := os.ReadFile(pdfPath)
		if err != nil {
			t.Fatalf("pdf not written: %v", err)
		}
		if string(data) != "%PDF-1.4 fake" {
			t.Errorf("pdf content = %q", data)
		}
		if !fake.input.RenderPDF {
			t.Error("RenderPDF should be set when --pdf is given")
		}
		if !fake.closed {
			t.Error("assembler should be closed")
		}
		if !strings.Contains(stdout.String(), "Created "+pdfPath) {
			t.Errorf("summary should mention the pdf, got %q", stdout.String())
		}
	})

	t.Run("browser failure maps to exit code", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		env, _, stderr := testEnv()
		fake := &fakeAssembler{err: printbook.ErrBrowserConnect}
		withFakeAssembler(t, env, fake)

		args := append([]string{"printbook", "-o", filepath.Join(dir, "out.html"), "--pdf", filepath.Join(dir, "b.pdf")}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitBrowser {
			t.Errorf("exit code = %d, want %d", code, ExitBrowser)
		}
		if !strings.Contains(stderr.String(), printbook.ErrBrowserConnect.Error()) {
			t.Errorf("stderr should report the browser error, got %q", stderr.String())
		}
	})

	t.Run("timeout from environment", func(t *testing.T) {
		t.Parallel()

		dir := bookDir(t)
		env, _, _ := testEnv()
		env.Getenv = func(key string) string {
			if key == timeoutEnv {
				return "2m"
			}
			return ""
		}
		fake := &fakeAssembler{}
		withFakeAssembler(t, env, fake)

		args := append([]string{"printbook", "-o", filepath.Join(dir, "out.html")}, inputArgs(dir)...)
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		// logger and timeout
		if fake.lastOpts != 2 {
			t.Errorf("NewAssembler got %d options, want 2", fake.lastOpts)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunBuild_DefaultInputs - Zero-argument run in the working directory
// ---------------------------------------------------------------------------

func TestRunBuild_DefaultInputs(t *testing.T) {
	dir := bookDir(t)
	t.Chdir(dir)

	env, stdout, stderr := testEnv()
	if code := runMain([]string{"printbook"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "complete_medical_textbook_print.html")); err != nil {
		t.Errorf("default output not written: %v", err)
	}
	want := "Created complete_medical_textbook_print.html successfully!\n" +
		"- Embedded CSS from medical-textbook-styles.css\n" +
		"- Embedded cover image from BTInterpretation.png\n"
	if !strings.HasPrefix(stdout.String(), want) {
		t.Errorf("summary = %q, want prefix %q", stdout.String(), want)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		f := &buildFlags{profile: "enhanced", output: "x.html", pdf: "x.pdf", timeout: "30s"}
		f.input.html = "a.html"
		f.document.title = "T"

		mergeFlags(f, cfg)

		if cfg.Input.HTML != "a.html" || cfg.Profile != "enhanced" || cfg.Output.Path != "x.html" {
			t.Errorf("flags not merged: %+v", cfg)
		}
		if cfg.Output.PDF != "x.pdf" || cfg.Output.Timeout != "30s" || cfg.Document.Title != "T" {
			t.Errorf("flags not merged: %+v", cfg)
		}
		if cfg.Input.CSS != config.DefaultCSSPath {
			t.Errorf("unset flag should keep default, got %q", cfg.Input.CSS)
		}
	})

	t.Run("keep legacy cover clears marker", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		f := &buildFlags{}
		f.document.marker = "<!-- X -->"
		f.document.keepLegacyCover = true

		mergeFlags(f, cfg)

		if cfg.Document.LegacyCoverMarker != "" {
			t.Errorf("marker = %q, want empty", cfg.Document.LegacyCoverMarker)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveTimeout - Flag, env, config precedence
// ---------------------------------------------------------------------------

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		flagV, envV, configV string
		want                 time.Duration
		wantErr              bool
	}{
		{"none", "", "", "", 0, false},
		{"flag wins", "10s", "20s", "30s", 10 * time.Second, false},
		{"env over config", "", "20s", "30s", 20 * time.Second, false},
		{"config only", "", "", "30s", 30 * time.Second, false},
		{"invalid flag", "soon", "", "", 0, true},
		{"invalid env not masked by config", "", "x", "30s", 0, true},
		{"zero", "0s", "", "", 0, true},
		{"negative", "-1s", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flagV, tt.envV, tt.configV)
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidTimeout) {
					t.Errorf("error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestColorEnabled - Colored levels only on a terminal
// ---------------------------------------------------------------------------

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = file.Close() })

	noEnv := func(string) string { return "" }
	noColor := func(key string) string {
		if key == "NO_COLOR" {
			return "1"
		}
		return ""
	}

	tests := []struct {
		name   string
		w      io.Writer
		getenv func(string) string
	}{
		{"buffer", &strings.Builder{}, noEnv},
		{"regular file", file, noEnv},
		{"NO_COLOR set", os.Stderr, noColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if colorEnabled(tt.w, tt.getenv) {
				t.Error("colorEnabled() = true, want false")
			}
		})
	}
}

func TestRunBuild_PlainLevelsOffTerminal(t *testing.T) {
	t.Parallel()

	dir := bookDir(t)
	env, _, stderr := testEnv()

	args := append([]string{"printbook"}, inputArgs(dir)...)
	args = append(args, "--verbose", "-o", filepath.Join(dir, "out.html"))
	if code := runMain(args, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	if strings.Contains(stderr.String(), "\x1b[") {
		t.Errorf("stderr should not contain ANSI escapes, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "[DEBUG]") {
		t.Errorf("stderr should contain debug logs, got %q", stderr.String())
	}
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
