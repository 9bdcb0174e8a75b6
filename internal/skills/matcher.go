// Package skills decides whether catalog skills are genuinely mentioned in free
// text and extracts the required skills of a job posting.
package skills

import (
	"regexp"
	"strings"
	"sync"
)

// Matcher checks skill mentions with a three-tier policy:
// ambiguous short tokens need programming context, compound tokens use
// substring containment, and everything else must stand as a whole token.
// A Matcher is safe for concurrent use.
type Matcher struct {
	tokens sync.Map // skill -> *regexp.Regexp
}

// NewMatcher creates a Matcher and precompiles token patterns for known
func NewMatcher(known ...[]string) *Matcher {
	m := &Matcher{}
	for _, list := range known {
		for _, s := range list {
			s = strings.ToLower(s)
			if isCompound(s) || IsAmbiguous(s) {
				continue
			}
			m.tokens.Store(s, tokenPattern(s))
		}
	}
	return m
}

// IsMentioned reports whether skill appears in text. Matching is case-insensitive.
func (m *Matcher) IsMentioned(skill, text string) bool {
	skill = strings.ToLower(skill)
	if skill == "" {
		return false
	}
	text = strings.ToLower(text)

	if IsAmbiguous(skill) {
		return inProgrammingContext(skill, text)
	}
	if isCompound(skill) {
		return strings.Contains(text, skill)
	}
	return m.pattern(skill).MatchString(text)
}

// Filter returns the skills from candidates mentioned in text, keeping their order
func (m *Matcher) Filter(candidates []string, text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0)
	for _, s := range candidates {
		if m.IsMentioned(s, lower) {
			out = append(out, s)
		}
	}
	return out
}

func (m *Matcher) pattern(skill string) *regexp.Regexp {
	if re, ok := m.tokens.Load(skill); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := m.tokens.LoadOrStore(skill, tokenPattern(skill))
	return re.(*regexp.Regexp)
}

// isCompound reports whether skill is multi-word or dotted, e.g. "node.js"
func isCompound(skill string) bool {
	return strings.ContainsAny(skill, " .")
}

// tokenPattern matches skill when it is not glued to another word character.
// Unlike \b this also works for skills ending in symbols such as "c++" or "c#".
func tokenPattern(skill string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(skill) + `(?:$|[^\p{L}\p{N}_])`)
}
