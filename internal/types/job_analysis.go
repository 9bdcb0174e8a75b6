// Package types provides type definitions for structured data used throughout the application-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobAnalysis is the structured result of analyzing one job posting.
// It is built once by the analyzer and must be treated as read-only afterwards.
type JobAnalysis struct {
	RequiredSkills          []string `json:"required_skills"`
	KeyConcepts             []string `json:"key_concepts"`
	RequiredExperienceYears int      `json:"required_experience_years"`
	CompanyName             string   `json:"company_name"`
	JobTitle                string   `json:"job_title"`
	KeyResponsibilities     []string `json:"key_responsibilities"`
	// Category is the classifier output that steered skill extraction
	Category string `json:"category,omitempty"`
	// Degraded is true when the simplified extraction path produced the result
	Degraded bool `json:"degraded,omitempty"`
}

// SearchText joins all required skills and key concepts into the reference
// text used for lexical overlap scoring.
func (a *JobAnalysis) SearchText() string {
	if a == nil {
		return ""
	}
	return strings.Join(a.RequiredSkills, " ") + " " + strings.Join(a.KeyConcepts, " ")
}
