package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// Depth returns the number of separator-delimited components in a cleaned
// path. Used to order directories deepest-first.
func Depth(path string) int {
	cleaned := filepath.Clean(path)
	if cleaned == string(filepath.Separator) {
		return 0
	}
	return len(strings.Split(cleaned, string(filepath.Separator)))
}

// CommonAncestor returns the deepest directory shared by every given path.
// Returns ok=false when no common ancestor can be computed (no input, or
// paths rooted on different volumes). With genuinely divergent sources the
// result is a best-effort approximation, not a guarantee.
func CommonAncestor(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}

	common := splitComponents(paths[0])

	for _, path := range paths[1:] {
		parts := splitComponents(path)
		if len(parts) < len(common) {
			common = common[:len(parts)]
		}
		for i := range common {
			if common[i] != parts[i] {
				common = common[:i]
				break
			}
		}
		if len(common) == 0 {
			return "", false
		}
	}

	joined := strings.Join(common, string(filepath.Separator))
	if joined == "" {
		// Rooted paths that only share the filesystem root.
		joined = string(filepath.Separator)
	}
	return joined, true
}

// splitComponents splits a cleaned path into components. A rooted path
// splits with a leading empty component; it is kept so the rejoined
// ancestor stays rooted.
func splitComponents(path string) []string {
	cleaned := filepath.Clean(path)
	return strings.Split(cleaned, string(filepath.Separator))
}
