// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "mdpage") && strings.Contains(p, "config") {
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

// ForStyleNotFound lists the available highlight styles.
func ForStyleNotFound() string {
	names := styles.Names()
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return format("available: " + strings.Join(names, ", "))
}

// ForImageProxy returns hints for proxy configuration errors.
func ForImageProxy() string {
	return formatHints([]string{
		"--camo-host must be an absolute http(s) URL",
		"--camo-key (or MDPAGE_CAMO_KEY) is required with a host",
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
