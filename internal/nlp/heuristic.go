package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// maxChunkWords bounds the noun phrases produced for long content-word runs
const maxChunkWords = 4

var (
	// Whole-word suffixes come first so "Corporation" is not cut to "Corp"
	orgSuffix = `(?:(?:Incorporated|Corporation|Limited|LLC|Company|Technologies|Labs|Group|` +
		`University|College|School|Academy|Hospital|Clinic|Institute|Foundation|Bank|Partners)\b|` +
		`Inc\b\.?|Ltd\b\.?|Corp\b\.?|Co\.)`
	capWord = `[A-Z][\p{L}\p{N}&'-]*`
	// words of one name stay on one line
	gap = `[ \t]+`

	// "Acme Robotics Inc", "Mercy Hospital", "University of Toronto"
	orgBySuffixRe = regexp.MustCompile(`\b(?:` + capWord + gap + `){0,4}` + orgSuffix +
		`(?:` + gap + `of` + gap + capWord + `(?:` + gap + capWord + `){0,2})?`)
	// "at Acme", "Join Globex Labs", "About Initech"
	orgByCueRe = regexp.MustCompile(`\b(?:at|At|Join|join|About|about)` + gap + `(` + capWord + `(?:` + gap + capWord + `){0,3})`)
	// "Initech is hiring", "Initech is looking"
	orgByHiringRe = regexp.MustCompile(`(` + capWord + `(?:` + gap + capWord + `){0,3})` + gap + `is` + gap + `(?:hiring|looking|seeking)`)
	// "GitHub", "PostgreSQL", "iOS"
	productRe = regexp.MustCompile(`\b[\p{L}]*[\p{Ll}][\p{Lu}][\p{L}\p{N}]*\b`)
	languageRe = regexp.MustCompile(`\b(?:English|Spanish|French|German|Mandarin|Chinese|Japanese|Portuguese|Arabic|Hindi|Italian|Russian|Korean|Dutch)\b`)

	wordRe = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}+#'-]*`)
)

// breakers end a noun-phrase run: function words and frequent verbs
var breakers = toSet(
	"a", "an", "the", "this", "that", "these", "those", "our", "your", "their", "its", "my", "his", "her",
	"any", "all", "each", "every", "some", "no", "such",
	"we", "you", "they", "i", "he", "she", "it", "us", "them", "who", "which", "what", "whom", "whose",
	"of", "in", "on", "at", "for", "with", "to", "from", "by", "about", "into", "across", "within", "over",
	"under", "between", "through", "as", "via", "per", "including", "like", "among", "around", "up",
	"and", "or", "but", "nor", "so", "if", "while", "because", "than", "then", "when", "where", "how",
	"is", "are", "was", "were", "be", "been", "being", "will", "would", "can", "could", "should", "may",
	"might", "must", "shall", "have", "has", "had", "do", "does", "did",
	"need", "needs", "require", "requires", "required", "looking", "seeking", "join", "work", "works",
	"working", "build", "building", "help", "helps", "use", "using", "ensure", "develop", "developing",
	"design", "designing", "lead", "leading", "manage", "managing", "support", "supporting", "make",
	"create", "creating", "maintain", "maintaining", "collaborate", "write", "writing", "own", "drive",
	"also", "very", "well", "more", "most", "not", "only", "just", "both", "either", "plus", "etc",
	"preferred", "ideally", "hiring",
)

// genericHeadings are heading nouns that look like names after a cue word,
// as in "Join Our Team" or "About the Role"
var genericHeadings = toSet(
	"team", "role", "company", "position", "job", "opportunity", "mission", "culture", "people",
	"careers", "benefits",
)

// Heuristic is an in-process annotator built from capitalization cues, an
// organization-suffix grammar and a stopword chunker. It needs no model files
// and never fails.
type Heuristic struct{}

// NewHeuristic returns a Heuristic annotator
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Annotate implements Annotator
func (h *Heuristic) Annotate(text string) (*Annotation, error) {
	return &Annotation{
		Entities:    h.entities(text),
		NounPhrases: h.nounPhrases(text),
	}, nil
}

type span struct {
	start int
	ent   Entity
}

func (h *Heuristic) entities(text string) []Entity {
	spans := make([]span, 0)
	seen := make(map[string]struct{})
	add := func(start int, value, label string) {
		value = trimLeadingBreakers(strings.TrimSpace(strings.TrimRight(value, ",;:")))
		if value == "" || (label == LabelOrg && isGenericHeading(value)) {
			return
		}
		key := label + "|" + value
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		spans = append(spans, span{start: start, ent: Entity{Text: value, Label: label}})
	}

	for _, loc := range orgBySuffixRe.FindAllStringIndex(text, -1) {
		add(loc[0], text[loc[0]:loc[1]], LabelOrg)
	}
	for _, loc := range orgByHiringRe.FindAllStringSubmatchIndex(text, -1) {
		add(loc[2], text[loc[2]:loc[3]], LabelOrg)
	}
	for _, loc := range orgByCueRe.FindAllStringSubmatchIndex(text, -1) {
		add(loc[2], text[loc[2]:loc[3]], LabelOrg)
	}
	for _, loc := range productRe.FindAllStringIndex(text, -1) {
		add(loc[0], text[loc[0]:loc[1]], LabelProduct)
	}
	for _, loc := range languageRe.FindAllStringIndex(text, -1) {
		add(loc[0], text[loc[0]:loc[1]], LabelLanguage)
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	out := make([]Entity, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.ent)
	}
	return out
}

// nounPhrases splits text into runs of content words delimited by
// punctuation, numbers and breaker words. Runs longer than maxChunkWords keep
// their trailing words, where the head noun usually sits.
func (h *Heuristic) nounPhrases(text string) []string {
	phrases := make([]string, 0)
	for _, segment := range splitSegments(text) {
		run := make([]string, 0, maxChunkWords)
		flush := func() {
			if len(run) > 0 {
				if len(run) > maxChunkWords {
					run = run[len(run)-maxChunkWords:]
				}
				phrases = append(phrases, strings.Join(run, " "))
			}
			run = run[:0]
		}
		for _, w := range wordRe.FindAllString(segment, -1) {
			if breakers[strings.ToLower(w)] || isNumeric(w) {
				flush()
				continue
			}
			run = append(run, w)
		}
		flush()
	}
	return phrases
}

// trimLeadingBreakers drops sentence-initial function words such as "The" or "Our"
func trimLeadingBreakers(value string) string {
	words := strings.Fields(value)
	for len(words) > 0 && breakers[strings.ToLower(words[0])] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// isGenericHeading reports whether value is only a heading noun once leading
// function words are dropped
func isGenericHeading(value string) bool {
	words := strings.Fields(trimLeadingBreakers(value))
	return len(words) == 1 && genericHeadings[strings.ToLower(words[0])]
}

func splitSegments(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', ',', ';', ':', '!', '?', '(', ')', '[', ']', '/', '\n', '\r', '•', '·', '|', '"':
			return true
		}
		return false
	})
}

func isNumeric(w string) bool {
	for _, r := range w {
		if (r < '0' || r > '9') && r != '+' {
			return false
		}
	}
	return true
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
