// Package types provides type definitions for structured data used throughout the application-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AssetKind distinguishes where a profile asset came from
type AssetKind string

const (
	// KindProject is an asset read from the profile's projects
	KindProject AssetKind = "project"
	// KindExperience is an asset read from the profile's experiences
	KindExperience AssetKind = "experience"
)

// ProfileAsset is one profile item scored against a JobAnalysis
type ProfileAsset struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Kind             AssetKind `json:"kind,omitempty"`
	Score            float64   `json:"score"`
	MatchingSkills   []string  `json:"matching_skills"`
	MatchingConcepts []string  `json:"matching_concepts"`
}

// RankedAssets is the envelope written by the rank command
type RankedAssets struct {
	Analysis *JobAnalysis   `json:"analysis"`
	Ranked   []ProfileAsset `json:"ranked"`
}
