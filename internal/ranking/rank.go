// Package ranking scores profile assets against a job analysis and orders
// them by relevance.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/application-assistant/internal/experience"
	"github.com/jonathan/application-assistant/internal/skills"
	"github.com/jonathan/application-assistant/internal/types"
	"go.uber.org/zap"
)

// Ranker scores and orders profile assets. It keeps no state between calls
// and is safe for concurrent use.
type Ranker struct {
	matcher *skills.Matcher
	logger  *zap.Logger
}

// Option configures a Ranker
type Option func(*Ranker)

// WithMatcher shares a skill matcher, typically the analyzer's
func WithMatcher(m *skills.Matcher) Option {
	return func(r *Ranker) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) Option {
	return func(r *Ranker) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRanker creates a Ranker
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.matcher == nil {
		r.matcher = skills.NewMatcher()
	}
	return r
}

// Rank normalizes the profile's projects and experiences and returns them
// scored against analysis, highest score first. Equal scores keep profile
// order. An empty profile yields an empty slice.
func (r *Ranker) Rank(analysis *types.JobAnalysis, profile *types.Profile) []types.ProfileAsset {
	assets := experience.Normalize(profile)
	ranked := make([]types.ProfileAsset, 0, len(assets))
	if analysis == nil {
		analysis = &types.JobAnalysis{}
	}

	for _, asset := range assets {
		ranked = append(ranked, r.Score(analysis, asset))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	r.logger.Debug("profile ranked",
		zap.Int("assets", len(ranked)),
		zap.Int("required_skills", len(analysis.RequiredSkills)),
		zap.Int("key_concepts", len(analysis.KeyConcepts)),
	)
	return ranked
}

// Score scores a single normalized asset against analysis
func (r *Ranker) Score(analysis *types.JobAnalysis, asset experience.Asset) types.ProfileAsset {
	b := scoreText(r.matcher, analysis, asset.Title+" "+asset.Description)
	return types.ProfileAsset{
		Title:            asset.Title,
		Description:      asset.Description,
		Kind:             asset.Kind,
		Score:            b.Score,
		MatchingSkills:   b.MatchingSkills,
		MatchingConcepts: b.MatchingConcepts,
	}
}

// Explain creates a brief explanation of an asset's ranking.
func Explain(asset types.ProfileAsset) string {
	var parts []string

	// Skill match description
	if n := len(asset.MatchingSkills); n > 0 {
		strength := "Weak"
		if n >= 3 {
			strength = "Strong"
		} else if n == 2 {
			strength = "Moderate"
		}
		parts = append(parts, fmt.Sprintf("%s skill match (%s)", strength, strings.Join(asset.MatchingSkills, ", ")))
	} else {
		parts = append(parts, "No skill matches")
	}

	// Concept match description
	if len(asset.MatchingConcepts) > 0 {
		parts = append(parts, fmt.Sprintf("Concepts: %s", strings.Join(asset.MatchingConcepts, ", ")))
	}

	// Score band
	switch {
	case asset.Score >= 7:
		parts = append(parts, "High relevance")
	case asset.Score >= 4:
		parts = append(parts, "Medium relevance")
	default:
		parts = append(parts, "Low relevance")
	}

	return strings.Join(parts, ". ")
}
