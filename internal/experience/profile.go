package experience

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/application-assistant/internal/types"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadProfile loads a profile from a JSON or YAML file. The format is chosen
// by extension; anything other than .yaml/.yml is read as JSON.
func LoadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(content)
	default:
		return parseJSON(content)
	}
}

// LoadDocument reads a profile file into its generic decoded form, for
// callers that want to inspect or validate the raw document.
func LoadDocument(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &doc)
	default:
		err = json.Unmarshal(content, &doc)
	}
	if err != nil {
		return nil, &LoadError{Message: "failed to decode profile document", Cause: err}
	}
	return doc, nil
}

// ParseProfile decodes a JSON profile document
func ParseProfile(data []byte) (*types.Profile, error) {
	return parseJSON(data)
}

func parseJSON(content []byte) (*types.Profile, error) {
	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return &profile, nil
}

func parseYAML(content []byte) (*types.Profile, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}
	profile, err := FromMap(doc)
	if err != nil {
		return nil, &LoadError{Message: "failed to decode profile", Cause: err}
	}
	return profile, nil
}

// rawProfile is the loosely typed view of a profile document
type rawProfile struct {
	Projects    any `mapstructure:"projects"`
	Experiences any `mapstructure:"experiences"`
	Experience  any `mapstructure:"experience"`
}

// FromMap builds a Profile from a generic decoded document, such as a
// request body or a YAML file. Unknown keys are ignored.
func FromMap(doc map[string]any) (*types.Profile, error) {
	var raw rawProfile
	if err := mapstructure.Decode(doc, &raw); err != nil {
		return nil, &NormalizationError{Message: "failed to decode profile map", Cause: err}
	}

	profile := &types.Profile{
		Projects:    types.FieldFromValue(raw.Projects),
		Experiences: types.FieldFromValue(raw.Experiences),
	}
	if profile.Experiences.IsZero() {
		profile.Experiences = types.FieldFromValue(raw.Experience)
	}
	return profile, nil
}
