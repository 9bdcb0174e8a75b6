package selection

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/application-assistant/internal/types"
)

// Defaults used when no configuration overrides them
const (
	DefaultThreshold      = 5.0
	DefaultMaxProjects    = 3
	DefaultMaxExperiences = 2
	DefaultTopN           = 5
)

// Options bounds what Select keeps
type Options struct {
	Threshold      float64 `json:"threshold" validate:"gte=0,lte=10"`
	MaxProjects    int     `json:"max_projects" validate:"gte=0"`
	MaxExperiences int     `json:"max_experiences" validate:"gte=0"`
}

// DefaultOptions returns the stock selection limits
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		MaxProjects:    DefaultMaxProjects,
		MaxExperiences: DefaultMaxExperiences,
	}
}

// Validate validates the Options using the validator.
func (o Options) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return &Error{Message: "invalid selection options", Cause: err}
	}
	return nil
}

// Selection is the ranked output split into the two prompt buckets
type Selection struct {
	Projects    []types.ProfileAsset `json:"projects"`
	Experiences []types.ProfileAsset `json:"experiences"`
}

// Select keeps assets scoring at least opts.Threshold and splits them into
// project-like and experience-like buckets, each truncated to its limit.
// ranked is expected in score order; that order is preserved. Negative
// limits are treated as zero.
func Select(ranked []types.ProfileAsset, opts Options) Selection {
	sel := Selection{
		Projects:    make([]types.ProfileAsset, 0),
		Experiences: make([]types.ProfileAsset, 0),
	}
	for _, asset := range ranked {
		if asset.Score < opts.Threshold {
			continue
		}
		if IsProjectLike(asset) {
			if len(sel.Projects) < opts.MaxProjects {
				sel.Projects = append(sel.Projects, asset)
			}
			continue
		}
		if len(sel.Experiences) < opts.MaxExperiences {
			sel.Experiences = append(sel.Experiences, asset)
		}
	}
	return sel
}

// TopN returns the first n ranked assets
func TopN(ranked []types.ProfileAsset, n int) []types.ProfileAsset {
	if n <= 0 {
		return []types.ProfileAsset{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]types.ProfileAsset, n)
	copy(out, ranked[:n])
	return out
}

// IsProjectLike guesses whether an asset describes a project: its title
// mentions "project" or its description mentions "built". The asset's Kind
// is not consulted, so some assets are misfiled.
func IsProjectLike(asset types.ProfileAsset) bool {
	return strings.Contains(strings.ToLower(asset.Title), "project") ||
		strings.Contains(strings.ToLower(asset.Description), "built")
}
