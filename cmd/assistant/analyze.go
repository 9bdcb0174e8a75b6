package main

import (
	"fmt"

	"github.com/jonathan/application-assistant/internal/observability"
	"github.com/jonathan/application-assistant/internal/pipeline"
	"github.com/jonathan/application-assistant/internal/schemas"
	"github.com/jonathan/application-assistant/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentPostings bounds how many postings analyze reads at once
const maxConcurrentPostings = 4

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		jobFiles   []string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze job postings into structured JobAnalysis JSON",
		Long: "Extracts required skills, key concepts, experience years, title, company and responsibilities " +
			"from one or more job posting files (.txt, .md, .html, .pdf, .docx). One posting prints a JobAnalysis " +
			"object; several print an array in the order given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			analyses, err := a.analyzeFiles(cmd, jobFiles)
			if err != nil {
				return err
			}

			var output any = analyses
			if len(analyses) == 1 {
				output = analyses[0]
			}
			if err := writeJSON(cmd.OutOrStdout(), outputFile, output); err != nil {
				return err
			}
			if outputFile != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Successfully analyzed %d posting(s) to %s\n", len(analyses), outputFile)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&jobFiles, "job", "j", nil, "Path to a job posting file (repeatable, required)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	if err := cmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	return cmd
}

// analyzeFiles reads and analyzes every posting concurrently, keeping the
// input order in the result.
