package selection

import (
	"testing"

	"github.com/jonathan/application-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asset(title, description string, score float64) types.ProfileAsset {
	return types.ProfileAsset{Title: title, Description: description, Score: score}
}

func titles(assets []types.ProfileAsset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Title)
	}
	return out
}

func TestIsProjectLike(t *testing.T) {
	assert.True(t, IsProjectLike(asset("Project X", "", 0)))
	assert.True(t, IsProjectLike(asset("Side PROJECT", "", 0)))
	assert.True(t, IsProjectLike(asset("Engineer", "Built a billing system", 0)))
	assert.False(t, IsProjectLike(asset("Engineer", "Maintained billing", 0)))
	// Kind is not consulted
	assert.False(t, IsProjectLike(types.ProfileAsset{Title: "Chess engine", Kind: types.KindProject}))
}

func TestSelect_ThresholdAndBuckets(t *testing.T) {
	ranked := []types.ProfileAsset{
		asset("Project A", "", 9),
		asset("Staff Engineer", "Led payments", 8.5),
		asset("Project B", "", 8),
		asset("Analyst", "Built dashboards", 7),
		asset("Project C", "", 6),
		asset("Lead", "Ran teams", 5),
		asset("Tutor", "Taught math", 4.99),
	}

	sel := Select(ranked, DefaultOptions())

	assert.Equal(t, []string{"Project A", "Project B", "Analyst"}, titles(sel.Projects))
	assert.Equal(t, []string{"Staff Engineer", "Lead"}, titles(sel.Experiences))
}

func TestSelect_ThresholdInclusive(t *testing.T) {
	sel := Select([]types.ProfileAsset{asset("Lead", "", 5.0)}, Options{Threshold: 5, MaxExperiences: 1})
	assert.Len(t, sel.Experiences, 1)
}

func TestSelect_EmptyAndZeroLimits(t *testing.T) {
	sel := Select(nil, DefaultOptions())
	assert.NotNil(t, sel.Projects)
	assert.Empty(t, sel.Projects)
	assert.Empty(t, sel.Experiences)

	sel = Select([]types.ProfileAsset{asset("Project", "", 10)}, Options{MaxProjects: -1})
	assert.Empty(t, sel.Projects)
}

func TestTopN(t *testing.T) {
	ranked := []types.ProfileAsset{asset("a", "", 3), asset("b", "", 2), asset("c", "", 1)}

	assert.Equal(t, []string{"a", "b"}, titles(TopN(ranked, 2)))
	assert.Equal(t, []string{"a", "b", "c"}, titles(TopN(ranked, 10)))
	assert.Empty(t, TopN(ranked, 0))

	top := TopN(ranked, 1)
	top[0].Title = "changed"
	assert.Equal(t, "a", ranked[0].Title)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	err := Options{Threshold: 11}.Validate()
	require.Error(t, err)
	var selErr *Error
	require.ErrorAs(t, err, &selErr)
	assert.Contains(t, err.Error(), "invalid selection options")

	assert.Error(t, Options{MaxProjects: -1}.Validate())
}
