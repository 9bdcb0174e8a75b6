package ranking

import (
	"strings"

	"github.com/jonathan/application-assistant/internal/similarity"
	"github.com/jonathan/application-assistant/internal/skills"
	"github.com/jonathan/application-assistant/internal/types"
)

// Weights of the scoring components
const (
	skillWeight      = 2.0
	conceptWeight    = 1.0
	similarityWeight = 3.0

	// MaxScore is the top of the score scale
	MaxScore = 10.0
)

// breakdown holds the raw components behind one asset score
type breakdown struct {
	MatchingSkills   []string
	MatchingConcepts []string
	Similarity       float64
	Raw              float64
	MaxPossible      float64
	Score            float64
}

// scoreText scores the combined asset text against analysis
func scoreText(matcher *skills.Matcher, analysis *types.JobAnalysis, combined string) breakdown {
	lower := strings.ToLower(combined)

	b := breakdown{
		MatchingSkills:   computeSkillMatches(matcher, analysis.RequiredSkills, lower),
		MatchingConcepts: computeConceptMatches(analysis.KeyConcepts, lower),
		Similarity:       similarity.Jaccard(lower, analysis.SearchText()),
	}

	b.Raw = skillWeight*float64(len(b.MatchingSkills)) +
		conceptWeight*float64(len(b.MatchingConcepts)) +
		similarityWeight*b.Similarity
	b.MaxPossible = skillWeight*float64(len(analysis.RequiredSkills)) +
		conceptWeight*float64(len(analysis.KeyConcepts)) +
		similarityWeight

	if b.MaxPossible > 0 {
		b.Score = clamp(b.Raw/b.MaxPossible*MaxScore, 0, MaxScore)
	}
	return b
}

// computeSkillMatches returns the required skills the matcher finds in text
func computeSkillMatches(matcher *skills.Matcher, required []string, text string) []string {
	matched := make([]string, 0)
	for _, skill := range required {
		if matcher.IsMentioned(skill, text) {
			matched = append(matched, skill)
		}
	}
	return matched
}

// computeConceptMatches returns the concepts occurring in text as lowercase substrings
func computeConceptMatches(concepts []string, text string) []string {
	matched := make([]string, 0)
	for _, concept := range concepts {
		if strings.Contains(text, strings.ToLower(concept)) {
			matched = append(matched, concept)
		}
	}
	return matched
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
