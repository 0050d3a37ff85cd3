package classify

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TitleCase capitalizes the first letter of every space-separated word and
// lowercases the rest. It deliberately does not special-case small words
// ("a", "of", "the") or acronyms.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// seasonSegment formats the zero-padded season subfolder name
func seasonSegment(season int) string {
	return fmt.Sprintf("Season %02d", season)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
