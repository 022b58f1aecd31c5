// Package hints provides actionable follow-ups for common failures.
// A hint reads "\n  hint: <text>" and is appended to the error message.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-md2kb/internal/fileutil"
)

// IsInContainer detects a Docker container through /.dockerenv.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the rod environment variables relevant to the
// current environment.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or drop --pdf to write HTML only")

	return format(strings.Join(hints, "; "))
}

// ForTimeout suggests a longer timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout (e.g. --timeout 2m)")
}

// ForNoInput shows the expected invocation.
func ForNoInput() string {
	return format("usage: md2kb <input.md> [output.html], or set input.defaultDir in a config file")
}

// ForInputNotFound reminds that input paths are relative to the current
// directory.
func ForInputNotFound() string {
	return format("check the path; relative paths are resolved from the current directory")
}

// ForConfigNotFound suggests --config with a path, or creating the config
// in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	sep := string(os.PathSeparator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"go-md2kb"+sep) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory covers output directory creation errors.
func ForOutputDirectory() string {
	return format("check the parent directory exists and is writable")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in styles: " + strings.Join(available, ", ") + "; or pass a .css path")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
