// Package normalize turns raw release filenames into clean title candidates
// by stripping bracketed annotations, collapsing separators, and removing
// known release tags.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// Non-greedy and not nesting-aware: a later closing bracket closes the
	// earliest opened one. Companion matching depends on this exact
	// behavior, so it must not be "fixed".
	bracketRe = regexp.MustCompile(`[\(\[\{].*?[\)\]\}]`)

	dotUnderRe   = regexp.MustCompile(`[._]+`)
	dashRe       = regexp.MustCompile(`-+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// RemoveBracketed deletes every minimal span delimited by (...), [...] or {...}
func RemoveBracketed(text string) string {
	return bracketRe.ReplaceAllString(text, "")
}

// NormalizeSeparators replaces runs of '.', '_' and '-' with single spaces,
// collapses whitespace and trims the ends
func NormalizeSeparators(text string) string {
	s := dotUnderRe.ReplaceAllString(text, " ")
	s = dashRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripReleaseTags removes whole-word matches of every pattern in tags,
// then collapses the resulting whitespace
func StripReleaseTags(text string, tags *TagSet) string {
	s := text
	for _, re := range tags.patterns {
		s = re.ReplaceAllString(s, "")
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanTitleCandidate produces a cleaned candidate title from a raw filename
// base. Bracket removal runs before separator normalization so a tag like
// "[1080p]" is deleted wholesale; tag stripping runs last so it operates on
// space-separated words.
func CleanTitleCandidate(raw string, tags *TagSet) string {
	s := RemoveBracketed(raw)
	s = NormalizeSeparators(s)
	s = StripReleaseTags(s, tags)
	return strings.TrimSpace(s)
}
