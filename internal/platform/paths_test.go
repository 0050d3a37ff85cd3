package platform

import (
	"path/filepath"
	"testing"
)

func TestDepth(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{"Root", sep, 0},
		{"OneLevel", filepath.Join(sep, "media"), 2},
		{"Nested", filepath.Join(sep, "media", "Show Name", "Season 01"), 4},
		{"Relative", filepath.Join("media", "Show Name"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.path); got != tt.expected {
				t.Errorf("Depth(%q) = %d, want %d", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCommonAncestor(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		paths    []string
		expected string
		ok       bool
	}{
		{
			name:     "SingleDir",
			paths:    []string{filepath.Join(sep, "media", "incoming")},
			expected: filepath.Join(sep, "media", "incoming"),
			ok:       true,
		},
		{
			name: "SharedParent",
			paths: []string{
				filepath.Join(sep, "media", "incoming", "a"),
				filepath.Join(sep, "media", "incoming", "b"),
			},
			expected: filepath.Join(sep, "media", "incoming"),
			ok:       true,
		},
		{
			name: "OnePathIsTheAncestor",
			paths: []string{
				filepath.Join(sep, "media"),
				filepath.Join(sep, "media", "incoming"),
			},
			expected: filepath.Join(sep, "media"),
			ok:       true,
		},
		{
			name: "OnlyRootShared",
			paths: []string{
				filepath.Join(sep, "media", "a"),
				filepath.Join(sep, "backup", "b"),
			},
			expected: sep,
			ok:       true,
		},
		{
			name:     "NoInput",
			paths:    nil,
			expected: "",
			ok:       false,
		},
		{
			name: "DisjointRelativePaths",
			paths: []string{
				filepath.Join("media", "a"),
				filepath.Join("backup", "b"),
			},
			expected: "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CommonAncestor(tt.paths)
			if ok != tt.ok {
				t.Fatalf("CommonAncestor(%v) ok = %v, want %v", tt.paths, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("CommonAncestor(%v) = %q, want %q", tt.paths, got, tt.expected)
			}
		})
	}
}
