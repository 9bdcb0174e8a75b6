package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/application-assistant/internal/nlp"
)

const (
	// MaxKeyConcepts caps key concepts on the annotated path
	MaxKeyConcepts = 20
	// MaxFallbackConcepts caps key concepts on the simplified path
	MaxFallbackConcepts = 10
	// MaxResponsibilities caps extracted responsibility lines
	MaxResponsibilities = 10
	// maxTitleLength is the exclusive upper bound on a first-line title
	maxTitleLength = 100
)

// experiencePatterns are tried in order; only the first pattern that
// matches anywhere in the text is used.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\s*years?`),
	regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
}

// bulletPatterns capture list items. Results of every pattern are
// concatenated, so a line can be reported more than once.
var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)[•·-]\s*(.+)`),
	regexp.MustCompile(`(?m)\d+\.\s*(.+)`),
	regexp.MustCompile(`(?m)^\s*[\*-]\s*(.+)`),
}

// conceptLabels are the entity labels that contribute key concepts
var conceptLabels = map[string]struct{}{
	nlp.LabelOrg:       {},
	nlp.LabelProduct:   {},
	nlp.LabelWorkOfArt: {},
	nlp.LabelLanguage:  {},
}

// ExperienceYears returns the years of experience a posting asks for, or 0
func ExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, re := range experiencePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil || years < 0 {
			return 0
		}
		return years
	}
	return 0
}

// JobTitle returns the first non-empty line of text when it is short enough
// to be a title.
func JobTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len([]rune(line)) < maxTitleLength {
			return line
		}
		return ""
	}
	return ""
}

// Responsibilities returns up to MaxResponsibilities bullet or numbered list
// items in pattern order.
func Responsibilities(text string) []string {
	out := make([]string, 0)
	for _, re := range bulletPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			item := strings.TrimSpace(m[1])
			if item == "" {
				continue
			}
			out = append(out, item)
			if len(out) == MaxResponsibilities {
				return out
			}
		}
	}
	return out
}

// CompanyName returns the text of the first organization entity
func CompanyName(ann *nlp.Annotation) string {
	if ann == nil {
		return ""
	}
	for _, e := range ann.Entities {
		if e.Label == nlp.LabelOrg {
			return strings.TrimSpace(e.Text)
		}
	}
	return ""
}

// annotatedConcepts builds key concepts from entities, 2-4 word noun
// phrases and business concept hits.
func annotatedConcepts(ann *nlp.Annotation, businessHits []string) []string {
	concepts := make([]string, 0, len(ann.Entities)+len(ann.NounPhrases)+len(businessHits))
	for _, e := range ann.Entities {
		if _, ok := conceptLabels[e.Label]; ok {
			concepts = append(concepts, normalizePhrase(e.Text))
		}
	}
	for _, np := range ann.NounPhrases {
		if n := wordCount(np); n >= 2 && n <= 4 {
			concepts = append(concepts, normalizePhrase(np))
		}
	}
	concepts = append(concepts, businessHits...)
	return dedupeCapped(concepts, MaxKeyConcepts)
}

// fallbackConcepts is the concept list used without an annotator
func fallbackConcepts(teachingHits, businessHits []string) []string {
	concepts := make([]string, 0, len(teachingHits)+len(businessHits))
	concepts = append(concepts, teachingHits...)
	concepts = append(concepts, businessHits...)
	return dedupeCapped(concepts, MaxFallbackConcepts)
}
