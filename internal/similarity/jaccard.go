// Package similarity estimates lexical overlap between two texts.
package similarity

import (
	"strings"
	"unicode"
)

// Jaccard returns |A∩B| / |A∪B| over the distinct lowercase word tokens of a
// and b. It returns 0 when either text has no tokens.
func Jaccard(a, b string) float64 {
	setA := Tokens(a)
	setB := Tokens(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// Tokens returns the set of lowercase word tokens in text. A word is a
// maximal run of letters, digits or underscores.
func Tokens(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
