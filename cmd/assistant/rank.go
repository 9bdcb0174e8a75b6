package main

import (
	"fmt"

	"github.com/jonathan/application-assistant/internal/export"
	"github.com/jonathan/application-assistant/internal/observability"
	"github.com/jonathan/application-assistant/internal/pipeline"
	"github.com/jonathan/application-assistant/internal/schemas"
	"github.com/jonathan/application-assistant/internal/selection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRankCmd(a *app) *cobra.Command {
	var (
		jobFile     string
		profileFile string
		outputFile  string
		xlsxFile    string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank profile assets against a job posting",
		Long: "Analyzes a job posting, then scores every project and experience of a profile (JSON or YAML) " +
			"against it, producing a RankedAssets JSON sorted by score. Optionally writes an Excel workbook.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.run(cmd, jobFile, profileFile, nil)
			if err != nil {
				return err
			}
			result := res.RankedAssets()
			a.checkSchema(schemas.RankedAssets, result)

			if err := writeJSON(cmd.OutOrStdout(), outputFile, result); err != nil {
				return err
			}
			if xlsxFile != "" {
				written, err := export.WriteWorkbook(xlsxFile, result.Analysis, result.Ranked)
				if err != nil {
					return err
				}
				a.logger.Info("workbook written", zap.String("path", written))
			}
			if outputFile != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Successfully ranked %d assets to %s\n", len(result.Ranked), outputFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to a job posting file (required)")
	cmd.Flags().StringVarP(&profileFile, "profile", "p", "", "Path to a profile JSON or YAML file (required)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().StringVar(&xlsxFile, "xlsx", "", "Path to an Excel workbook to write")
	for _, name := range []string{"job", "profile"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

// run executes the pipeline for one posting and profile. Selection runs
// only when sel is non-nil.
func (a *app) run(cmd *cobra.Command, jobFile, profileFile string, sel *selection.Options) (*pipeline.Result, error) {
	matcher := newMatcher()
	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		JobPath:     jobFile,
		ProfilePath: profileFile,
		Analyzer:    a.newAnalyzer(matcher),
		Ranker:      a.newRanker(matcher),
		Selection:   sel,
		Logger:      a.logger,
		OnProgress: func(event pipeline.ProgressEvent) {
			a.logger.Debug(event.Message, zap.String("step", event.Step), zap.String("category", event.Category))
		},
	})
	if err != nil {
		return nil, err
	}

	if a.verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintJobAnalysis(result.Analysis)
		printer.PrintRankedAssets(result.Ranked)
	}
	return result, nil
}
