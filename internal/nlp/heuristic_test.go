package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityTexts(ann *Annotation, label string) []string {
	out := make([]string, 0)
	for _, e := range ann.Entities {
		if e.Label == label {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestHeuristic_OrganizationsBySuffix(t *testing.T) {
	ann, err := NewHeuristic().Annotate("Acme Robotics Inc. builds warehouse robots. Graduates of the University of Toronto welcome.")
	require.NoError(t, err)

	orgs := entityTexts(ann, LabelOrg)
	assert.Contains(t, orgs, "Acme Robotics Inc.")
	assert.Contains(t, orgs, "University of Toronto")
	assert.Equal(t, "Acme Robotics Inc.", orgs[0])
}

func TestHeuristic_OrganizationsByCue(t *testing.T) {
	ann, err := NewHeuristic().Annotate("Backend Engineer\nJoin Globex and help us scale. Initech is hiring too.")
	require.NoError(t, err)

	orgs := entityTexts(ann, LabelOrg)
	assert.Equal(t, []string{"Globex", "Initech"}, orgs)
}

func TestHeuristic_ProductsAndLanguages(t *testing.T) {
	ann, err := NewHeuristic().Annotate("Ship iOS apps, manage GitHub repos, speak Spanish.")
	require.NoError(t, err)

	assert.Equal(t, []string{"iOS", "GitHub"}, entityTexts(ann, LabelProduct))
	assert.Equal(t, []string{"Spanish"}, entityTexts(ann, LabelLanguage))
}

func TestHeuristic_NoEntitiesInPlainText(t *testing.T) {
	ann, err := NewHeuristic().Annotate("we are a small team that writes software")
	require.NoError(t, err)
	assert.Empty(t, ann.Entities)
}

func TestHeuristic_NounPhrases(t *testing.T) {
	ann, err := NewHeuristic().Annotate("You will design scalable data pipelines for the machine learning platform.")
	require.NoError(t, err)

	assert.Contains(t, ann.NounPhrases, "scalable data pipelines")
	assert.Contains(t, ann.NounPhrases, "machine learning platform")
}

func TestHeuristic_LongRunsKeepTrailingWords(t *testing.T) {
	ann, err := NewHeuristic().Annotate("senior staff principal distributed systems reliability engineer")
	require.NoError(t, err)

	require.Len(t, ann.NounPhrases, 1)
	assert.Equal(t, "distributed systems reliability engineer", ann.NounPhrases[0])
}

func TestHeuristic_NumbersBreakPhrases(t *testing.T) {
	ann, err := NewHeuristic().Annotate("5+ years production experience")
	require.NoError(t, err)
	assert.Equal(t, []string{"years production experience"}, ann.NounPhrases)
}

func TestHeuristic_OrganizationsStayOnOneLine(t *testing.T) {
	ann, err := NewHeuristic().Annotate("Backend Engineer\nAcme Corporation is hiring engineers.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Acme Corporation"}, entityTexts(ann, LabelOrg))
}

func TestHeuristic_LongestSuffixWins(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"corporation", "Work with Globex Corporation on payments.", "Globex Corporation"},
		{"incorporated", "Offices of Contoso Incorporated, Seattle.", "Contoso Incorporated"},
		{"short form with dot", "Acme Corp. builds robots.", "Acme Corp."},
		{"limited", "Umbrella Limited is a biotech firm.", "Umbrella Limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, err := NewHeuristic().Annotate(tt.text)
			require.NoError(t, err)

			orgs := entityTexts(ann, LabelOrg)
			require.NotEmpty(t, orgs)
			assert.Equal(t, tt.want, orgs[0])
		})
	}
}

func TestHeuristic_GenericHeadingsAreNotOrganizations(t *testing.T) {
	for _, text := range []string{
		"Join Our Team! Acme Labs builds robots.",
		"About the Role: Acme Labs builds robots.",
		"Join Our Company today. Acme Labs builds robots.",
	} {
		ann, err := NewHeuristic().Annotate(text)
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme Labs"}, entityTexts(ann, LabelOrg), text)
	}
}

func TestHeuristic_CapitalizedAtCue(t *testing.T) {
	ann, err := NewHeuristic().Annotate("Platform Engineer\nAt Initech we build payment systems.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Initech"}, entityTexts(ann, LabelOrg))
}
