package ranking

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jonathan/application-assistant/internal/experience"
	"github.com/jonathan/application-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_ReactScenario(t *testing.T) {
	analysis := &types.JobAnalysis{RequiredSkills: []string{"react"}}
	profile := &types.Profile{Projects: types.ListField(
		types.RecordEntry(map[string]any{"title": "Project X", "description": "Built a React dashboard"}),
	)}

	ranked := NewRanker().Rank(analysis, profile)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Project X", ranked[0].Title)
	assert.Equal(t, types.KindProject, ranked[0].Kind)
	assert.Contains(t, ranked[0].MatchingSkills, "react")
	assert.Greater(t, ranked[0].Score, 0.0)
	// raw = 2 + 3 * 1/6, max = 2 + 3
	assert.InDelta(t, 5.0, ranked[0].Score, 1e-9)
}

func TestRank_EmptyProfile(t *testing.T) {
	analysis := &types.JobAnalysis{RequiredSkills: []string{"python"}, KeyConcepts: []string{"leadership"}}

	ranked := NewRanker().Rank(analysis, &types.Profile{})
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)

	assert.Empty(t, NewRanker().Rank(analysis, nil))
}

func TestRank_NilAnalysis(t *testing.T) {
	ranked := NewRanker().Rank(nil, &types.Profile{Projects: types.TextField("anything")})

	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Score)
}

func TestRank_SortedDescending(t *testing.T) {
	analysis := &types.JobAnalysis{
		RequiredSkills: []string{"python", "aws", "sql", "docker"},
		KeyConcepts:    []string{"data pipelines", "leadership"},
	}
	profile := &types.Profile{
		Projects: types.ListField(
			types.TextEntry("Painted a mural"),
			types.TextEntry("Python data pipelines on AWS with SQL and Docker"),
			types.TextEntry("Python scripts"),
		),
		Experiences: types.ListField(
			types.RecordEntry(map[string]any{"position": "Team lead", "description": "leadership of a sql team"}),
		),
	}

	ranked := NewRanker().Rank(analysis, profile)

	require.Len(t, ranked, 4)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Equal(t, "Python data pipelines on AWS with SQL and Docker", ranked[0].Description)
	assert.Equal(t, "Painted a mural", ranked[3].Description)
}

func TestRank_TiesKeepProfileOrder(t *testing.T) {
	analysis := &types.JobAnalysis{RequiredSkills: []string{"rust"}}
	profile := &types.Profile{Projects: types.ListField(
		types.TextEntry("alpha"),
		types.TextEntry("beta"),
		types.TextEntry("gamma"),
	)}

	ranked := NewRanker().Rank(analysis, profile)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"alpha", "beta", "gamma"},
		[]string{ranked[0].Description, ranked[1].Description, ranked[2].Description})
}

func TestRank_MatchesAreSubsets(t *testing.T) {
	analysis := &types.JobAnalysis{
		RequiredSkills: []string{"go", "kubernetes", "c++"},
		KeyConcepts:    []string{"distributed systems", "mentoring"},
	}
	profile := &types.Profile{Experiences: types.TextField(
		"Go programming for distributed systems on Kubernetes, mentoring juniors in C++")}

	ranked := NewRanker().Rank(analysis, profile)

	require.Len(t, ranked, 1)
	assert.Equal(t, []string{"go", "kubernetes", "c++"}, ranked[0].MatchingSkills)
	assert.Equal(t, []string{"distributed systems", "mentoring"}, ranked[0].MatchingConcepts)
	assert.Subset(t, analysis.RequiredSkills, ranked[0].MatchingSkills)
	assert.Subset(t, analysis.KeyConcepts, ranked[0].MatchingConcepts)
}

func TestRank_ShortTokenNeedsContext(t *testing.T) {
	analysis := &types.JobAnalysis{RequiredSkills: []string{"r"}}
	profile := &types.Profile{Projects: types.ListField(
		types.TextEntry("Ran a r & d lab"),
		types.TextEntry("Statistical analysis with R programming"),
	)}

	ranked := NewRanker().Rank(analysis, profile)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Statistical analysis with R programming", ranked[0].Description)
	assert.Equal(t, []string{"r"}, ranked[0].MatchingSkills)
	assert.Empty(t, ranked[1].MatchingSkills)
}

func TestScore_Monotonic(t *testing.T) {
	analysis := &types.JobAnalysis{
		RequiredSkills: []string{"python", "aws", "docker", "sql", "node.js"},
		KeyConcepts:    []string{"data pipelines", "collaboration"},
	}
	r := NewRanker()

	description := "Wrote data pipelines"
	prev := r.Score(analysis, experience.Asset{Title: "Project", Description: description}).Score
	for _, skill := range analysis.RequiredSkills {
		description += " " + skill
		next := r.Score(analysis, experience.Asset{Title: "Project", Description: description}).Score
		assert.GreaterOrEqual(t, next, prev, "adding %q lowered the score", skill)
		prev = next
	}
	assert.LessOrEqual(t, prev, MaxScore)
}

func TestScore_Bounds(t *testing.T) {
	analysis := &types.JobAnalysis{RequiredSkills: []string{"python"}, KeyConcepts: []string{"python"}}
	r := NewRanker()

	full := r.Score(analysis, experience.Asset{Title: "python", Description: "python"})
	assert.InDelta(t, MaxScore, full.Score, 1e-9)

	none := r.Score(analysis, experience.Asset{Title: "Project", Description: "watercolor"})
	assert.Equal(t, 0.0, none.Score)
}

func TestScore_EmptyAnalysis(t *testing.T) {
	got := NewRanker().Score(&types.JobAnalysis{}, experience.Asset{Title: "Project", Description: "anything"})

	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.MatchingSkills)
	assert.Empty(t, got.MatchingConcepts)
}

func TestRank_ConcurrentUse(t *testing.T) {
	analysis := &types.JobAnalysis{RequiredSkills: []string{"python", "aws"}}
	profile := &types.Profile{Projects: types.TextField("Python on AWS")}
	r := NewRanker()
	want := r.Rank(analysis, profile)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, r.Rank(analysis, profile))
		}()
	}
	wg.Wait()
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 10))
	assert.Equal(t, 10.0, clamp(11, 0, 10))
	assert.Equal(t, 4.5, clamp(4.5, 0, 10))
}

func TestExplain(t *testing.T) {
	tests := []struct {
		asset types.ProfileAsset
		want  []string
	}{
		{
			asset: types.ProfileAsset{Score: 8, MatchingSkills: []string{"go", "sql", "aws"}, MatchingConcepts: []string{"leadership"}},
			want:  []string{"Strong skill match (go, sql, aws)", "Concepts: leadership", "High relevance"},
		},
		{
			asset: types.ProfileAsset{Score: 5, MatchingSkills: []string{"go", "sql"}},
			want:  []string{"Moderate skill match (go, sql)", "Medium relevance"},
		},
		{
			asset: types.ProfileAsset{Score: 1},
			want:  []string{"No skill matches", "Low relevance"},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := Explain(tt.asset)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}
