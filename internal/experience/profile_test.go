package experience

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/application-assistant/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile_JSON(t *testing.T) {
	path := writeFile(t, "profile.json", `{
		"name": "Ada",
		"projects": [{"title": "Project X", "description": "Built a React dashboard"}],
		"experience": "Teaching assistant"
	}`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	assets := Normalize(profile)
	require.Len(t, assets, 2)
	assert.Equal(t, "Project X", assets[0].Title)
	assert.Equal(t, types.KindExperience, assets[1].Kind)
	assert.Equal(t, "Teaching assistant", assets[1].Description)
}

func TestLoadProfile_YAML(t *testing.T) {
	path := writeFile(t, "profile.yaml", `
projects:
  - name: Chess engine
    description: Bitboard move generation in Go
  - Plain text project
experiences:
  - position: Data Analyst
    description: Dashboards in SQL
    details:
      team: 4
`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	assets := Normalize(profile)
	require.Len(t, assets, 3)
	assert.Equal(t, "Chess engine", assets[0].Title)
	assert.Equal(t, "Plain text project", assets[1].Description)
	assert.Equal(t, "Data Analyst", assets[2].Title)
	assert.Equal(t, "Dashboards in SQL", assets[2].Description)
}

func TestLoadProfile_FileNotFound(t *testing.T) {
	_, err := LoadProfile("nonexistent_profile.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoadProfile_InvalidJSON(t *testing.T) {
	path := writeFile(t, "invalid.json", "{ invalid json }")

	_, err := LoadProfile(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}

func TestLoadProfile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yml", "projects: [unclosed")

	_, err := LoadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal YAML")
}

func TestFromMap(t *testing.T) {
	profile, err := FromMap(map[string]any{
		"projects":   []any{"one", map[string]any{"title": "two"}},
		"experience": "legacy field",
		"skills":     []any{"go"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.FieldList, profile.Projects.Shape)
	assert.Len(t, profile.Projects.Entries, 2)
	assert.Equal(t, types.TextField("legacy field"), profile.Experiences)
}

func TestFromMap_Empty(t *testing.T) {
	profile, err := FromMap(nil)
	require.NoError(t, err)
	assert.Empty(t, Normalize(profile))
}

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, profile.Projects.IsZero())
	assert.True(t, profile.Experiences.IsZero())
}

func TestLoadDocument(t *testing.T) {
	jsonPath := writeFile(t, "profile.json", `{"projects": "Built a CLI", "name": "Ada"}`)
	doc, err := LoadDocument(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Built a CLI", doc["projects"])
	assert.Equal(t, "Ada", doc["name"])

	yamlPath := writeFile(t, "profile.yml", "experiences:\n  - position: Tutor\n")
	doc, err = LoadDocument(yamlPath)
	require.NoError(t, err)
	entries, ok := doc["experiences"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 1)
}

func TestLoadDocument_Errors(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))

	_, err = LoadDocument(writeFile(t, "list.json", `[1, 2]`))
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to decode profile document")
}
