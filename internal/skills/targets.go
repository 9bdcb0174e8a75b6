package skills

import (
	"strings"

	"github.com/jonathan/application-assistant/internal/catalog"
)

// Extractor builds the required-skill set of a job posting from the catalog
type Extractor struct {
	catalog *catalog.Catalog
	matcher *Matcher
}

// NewExtractor creates an Extractor over cat using matcher for tech skills
func NewExtractor(cat *catalog.Catalog, matcher *Matcher) *Extractor {
	return &Extractor{catalog: cat, matcher: matcher}
}

// ExtractByCategory returns the catalog skills and concepts found in text.
// Every tech skill is tested, but teaching postings drop infrastructure
// tooling and gain teaching-specific phrases. Results are de-duplicated and
// keep catalog order.
func (e *Extractor) ExtractByCategory(text string, category catalog.Category) []string {
	lower := strings.ToLower(text)
	found := newOrderedSet()

	for _, skill := range e.catalog.TechSkills() {
		if !e.matcher.IsMentioned(skill, lower) {
			continue
		}
		if category == catalog.CategoryTeaching && e.catalog.SuppressedForTeaching(skill) {
			continue
		}
		found.add(skill)
	}

	if category == catalog.CategoryTeaching {
		for _, skill := range e.catalog.TeachingSkills() {
			if containsVariant(lower, skill) {
				found.add(skill)
			}
		}
	}

	for _, concept := range e.catalog.BusinessConcepts() {
		if strings.Contains(lower, strings.ToLower(concept)) {
			found.add(concept)
		}
	}

	return found.items
}

// ExtractConcepts returns the business concepts occurring in text as substrings
func (e *Extractor) ExtractConcepts(text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0)
	for _, concept := range e.catalog.BusinessConcepts() {
		if strings.Contains(lower, strings.ToLower(concept)) {
			out = append(out, concept)
		}
	}
	return out
}

// containsVariant tests phrase as written, with spaces removed and with
// spaces hyphenated ("lesson planning", "lessonplanning", "lesson-planning").
func containsVariant(text, phrase string) bool {
	variants := [...]string{
		phrase,
		strings.ReplaceAll(phrase, " ", ""),
		strings.ReplaceAll(phrase, " ", "-"),
	}
	for _, v := range variants {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}

// orderedSet keeps first-seen order while dropping duplicates
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: make([]string, 0)}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
