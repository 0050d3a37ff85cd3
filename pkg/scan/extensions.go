package scan

import (
	"sort"
	"strings"
)

// ExtensionSet is a case-insensitive set of file suffixes (with leading dot)
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from suffixes, normalizing case and ensuring
// a leading dot
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// Contains reports whether ext (any case, with or without dot) is in the set
func (s ExtensionSet) Contains(ext string) bool {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	_, ok := s[ext]
	return ok
}

// List returns the suffixes in sorted order
func (s ExtensionSet) List() []string {
	exts := make([]string, 0, len(s))
	for ext := range s {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// DefaultVideoExtensions returns the recognized video suffixes
func DefaultVideoExtensions() ExtensionSet {
	return NewExtensionSet(".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".ts", ".m4v", ".webm")
}

// DefaultCompanionExtensions returns the recognized archive and subtitle
// suffixes that travel with a matching video
func DefaultCompanionExtensions() ExtensionSet {
	return NewExtensionSet(".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".srt", ".sub", ".ass")
}
