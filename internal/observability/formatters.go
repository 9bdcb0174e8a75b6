// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/application-assistant/internal/selection"
	"github.com/jonathan/application-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to limit items as bullets, then a count of the rest
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// PrintJobAnalysis outputs a human-readable summary of an analyzed posting.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title:      %s\n", orDash(analysis.JobTitle))
	fmt.Fprintf(&sb, "Company:    %s\n", orDash(analysis.CompanyName))
	fmt.Fprintf(&sb, "Category:   %s\n", orDash(analysis.Category))
	if analysis.RequiredExperienceYears > 0 {
		fmt.Fprintf(&sb, "Experience: %d+ years\n", analysis.RequiredExperienceYears)
	}
	if analysis.Degraded {
		sb.WriteString("Mode:       simplified\n")
	}
	sb.WriteString("\n")

	writeList(&sb, "Required Skills", analysis.RequiredSkills, maxItemsToShow)
	writeList(&sb, "Key Concepts", analysis.KeyConcepts, maxItemsToShow)
	writeList(&sb, "Responsibilities", analysis.KeyResponsibilities, 3)

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintRankedAssets outputs the top ranked profile assets with scores and matched skills.
func (p *Printer) PrintRankedAssets(ranked []types.ProfileAsset) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total assets ranked: %d\n\n", len(ranked))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		asset := ranked[i]
		fmt.Fprintf(&sb, "#%d  %s\n", i+1, asset.Title)
		fmt.Fprintf(&sb, "    Score: %.2f", asset.Score)
		if asset.Kind != "" {
			fmt.Fprintf(&sb, " (%s)", asset.Kind)
		}
		sb.WriteString("\n")
		if len(asset.MatchingSkills) > 0 {
			fmt.Fprintf(&sb, "    Skills: %s\n", truncate(strings.Join(asset.MatchingSkills, ", "), 40))
		}
		if len(asset.MatchingConcepts) > 0 {
			fmt.Fprintf(&sb, "    Concepts: %s\n", truncate(strings.Join(asset.MatchingConcepts, ", "), 40))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more assets", len(ranked)-maxItemsToShow)
	}

	p.printBox("TOP RANKED ASSETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs the assets kept for an application.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSelection(sel selection.Selection, opts selection.Options) {
	if len(sel.Projects) == 0 && len(sel.Experiences) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("NO ASSETS SCORED AT LEAST %.1f", opts.Threshold))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Threshold: %.1f\n\n", opts.Threshold)
	writeSelected(&sb, fmt.Sprintf("Projects (max %d)", opts.MaxProjects), sel.Projects)
	writeSelected(&sb, fmt.Sprintf("Experiences (max %d)", opts.MaxExperiences), sel.Experiences)

	p.printBox("SELECTED ASSETS", strings.TrimSuffix(sb.String(), "\n\n"))
}

func writeSelected(sb *strings.Builder, heading string, assets []types.ProfileAsset) {
	sb.WriteString(heading + ":\n")
	if len(assets) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}
	for _, a := range assets {
		fmt.Fprintf(sb, "  • %s (%.2f)\n", truncate(a.Title, 40), a.Score)
	}
	sb.WriteString("\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
