// Package steps provides step definitions and dependency validation for the
// application analysis pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Step names
const (
	IngestJob    = "ingest_job"
	AnalyzeJob   = "analyze_job"
	LoadProfile  = "load_profile"
	RankAssets   = "rank_assets"
	SelectAssets = "select_assets"
)

// Step categories
const (
	CategoryIngestion = "ingestion"
	CategoryProfile   = "profile"
	CategoryMatching  = "matching"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	IngestJob: {
		Name:         IngestJob,
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	AnalyzeJob: {
		Name:         AnalyzeJob,
		Category:     CategoryIngestion,
		Dependencies: []string{IngestJob},
	},
	LoadProfile: {
		Name:         LoadProfile,
		Category:     CategoryProfile,
		Dependencies: []string{},
	},
	RankAssets: {
		Name:         RankAssets,
		Category:     CategoryMatching,
		Dependencies: []string{AnalyzeJob, LoadProfile},
	},
	SelectAssets: {
		Name:         SelectAssets,
		Category:     CategoryMatching,
		Dependencies: []string{RankAssets},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s has missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}

// AvailableSteps returns the steps not yet completed whose dependencies are met, sorted by name
func AvailableSteps(completed map[string]bool) []string {
	var available []string
	for name := range StepRegistry {
		if completed[name] {
			continue
		}
		if ValidateDependencies(completed, name) == nil {
			available = append(available, name)
		}
	}
	sort.Strings(available)
	return available
}

// BlockedSteps returns the steps whose dependencies are not yet met, sorted by name
func BlockedSteps(completed map[string]bool) []string {
	var blocked []string
	for name := range StepRegistry {
		if completed[name] {
			continue
		}
		if ValidateDependencies(completed, name) != nil {
			blocked = append(blocked, name)
		}
	}
	sort.Strings(blocked)
	return blocked
}
