// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2adf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-md2adf) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2adf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMediaLayout returns hints listing the valid media layouts.
func ForMediaLayout(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInputTooLarge returns a hint stating the size limit in human units.
func ForInputTooLarge(limit int) string {
	if limit <= 0 {
		return ""
	}
	return format("inputs are limited to " + humanize.IBytes(uint64(limit)) + "; split the document")
}

// ForStdoutOutput returns a hint for writing several results to stdout.
func ForStdoutOutput() string {
	return format("use -o <dir> when converting more than one file")
}

// ForNoInput returns a hint for a missing input argument.
func ForNoInput() string {
	return formatHints([]string{
		"pass a file or directory",
		"use - to read stdin",
		"or set input.defaultDir in the config",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
