// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-printbook/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingInput returns a hint for an input file that could not be read.
// flag is the command-line flag that overrides the path, e.g. "--cover".
func ForMissingInput(flag, configKey string) string {
	return format("run from the book directory, pass " + flag + ", or set " + configKey + " in the config file")
}

// ciVars are set by the CI systems where Chrome usually needs --no-sandbox.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func inCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect returns hints for a browser that failed to start when
// rendering the PDF edition.
func ForBrowserConnect() string {
	var hints []string
	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 in containers and CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "point ROD_BROWSER_BIN at an installed Chrome")
	}
	hints = append(hints, "or drop --pdf and print the HTML from a browser")
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the timeout for large books.
func ForTimeout() string {
	return format("large books with embedded images render slowly, use --timeout")
}

// ForConfigNotFound suggests an explicit path, or generating a config at
// the user-level location among searchedPaths with the config command.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/book.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-printbook") {
			hint += ", or run 'printbook config > " + p + "'"
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForProfileNotFound lists the profiles that can be selected.
func ForProfileNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available profiles: " + strings.Join(available, ", ") +
		"; custom ones live in <asset-path>/styles/<name>.css")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
