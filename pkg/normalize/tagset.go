package normalize

import (
	"regexp"
)

// TagSet is an ordered list of case-insensitive release-tag patterns
// (quality tags, codecs, source tags, scene-group names) removed from
// candidate titles. Compiled once, immutable during a run.
type TagSet struct {
	patterns []*regexp.Regexp
}

// defaultTagExprs mirrors the noise commonly found in release filenames.
// Order matters: patterns are applied first to last.
var defaultTagExprs = []string{
	`(?i)\b1080p\b`, `(?i)\b720p\b`, `(?i)\b480p\b`, `(?i)\b2160p\b`, `(?i)\b4k\b`,
	`(?i)\b10bit\b`, `(?i)\b8bit\b`, `(?i)\bHEVC\b`, `(?i)\bx265\b`, `(?i)\bx264\b`,
	`(?i)\bWEB[-_. ]?DL\b`, `(?i)\bWEB[-_. ]?RIP\b`, `(?i)\bWEB[-_. ]?HD\b`, `(?i)\bBRRIP\b`,
	`(?i)\bBLU[-_. ]?RAY\b`, `(?i)\bBDRIP\b`, `(?i)\bHDRIP\b`, `(?i)\bHDTV\b`,
	`(?i)\bCAM\b`, `(?i)\bTS\b`, `(?i)\bTC\b`,
	`(?i)\bPROPER\b`, `(?i)\bREPACK\b`, `(?i)\bLIMITED\b`, `(?i)\bUNRATED\b`,
	`(?i)\bSUBBED\b`, `(?i)\bSOFTSUB\b`, `(?i)\bHARD?SUB\b`, `(?i)\bDUBBED\b`,
	`(?i)\bMULTi\b`, `(?i)\b(\d{1,2}ch)\b`, `(?i)\bAC3\b`, `(?i)\bDD5\.1\b`, `(?i)\bAAC\b`,
	`(?i)\bWEBRip\b`, `(?i)\bHDR\b`,
	`(?i)\bDigiMoviez\b`, `(?i)\b30nama\b`, `(?i)\bYTS\b`, `(?i)\bETRG\b`, `(?i)\bRARBG\b`,
}

var defaultTags = mustTagSet(defaultTagExprs)

// DefaultTagSet returns the built-in release-tag patterns
func DefaultTagSet() *TagSet {
	return defaultTags
}

// NewTagSet compiles an ordered list of regular expressions into a TagSet
func NewTagSet(exprs []string) (*TagSet, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, re)
	}
	return &TagSet{patterns: patterns}, nil
}

func mustTagSet(exprs []string) *TagSet {
	ts, err := NewTagSet(exprs)
	if err != nil {
		panic(err)
	}
	return ts
}

// Len returns the number of patterns in the set
func (t *TagSet) Len() int {
	return len(t.patterns)
}
