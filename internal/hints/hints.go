// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-textplay/internal/fileutil"
)

// ForInput returns a hint for an input that could not be read.
// An existing file points at permissions; a missing one at the path itself.
func ForInput(path string) string {
	if path == "" || path == fileutil.StdinName {
		return format("pipe a screenplay on stdin or pass files as arguments")
	}
	if fileutil.FileExists(path) {
		return format("check read permissions on " + path)
	}
	return format("check the path; use - to read stdin")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-textplay/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-textplay") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a .css path")
}

// ForConflictingModes explains which output modes cannot be combined.
func ForConflictingModes() string {
	return format("--tagged emits the intermediate form and cannot be wrapped with --standalone")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
