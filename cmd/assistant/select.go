package main

import (
	"fmt"

	"github.com/jonathan/application-assistant/internal/observability"
	"github.com/jonathan/application-assistant/internal/schemas"
	"github.com/jonathan/application-assistant/internal/selection"
	"github.com/jonathan/application-assistant/internal/types"
	"github.com/spf13/cobra"
)

// selectionReport is the envelope written by the select command
type selectionReport struct {
	Analysis *types.JobAnalysis  `json:"analysis"`
	Ranked   []types.ProfileAsset `json:"ranked"`
	selection.Selection
}

func newSelectCmd(a *app) *cobra.Command {
	var (
		jobFile     string
		profileFile string
		outputFile  string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the profile assets worth including in an application",
		Long: "Ranks a profile against a job posting and keeps the assets scoring at least the threshold, " +
			"split into project-like and experience-like buckets. The ranked list is cut to --max-assets.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.SelectionOptions()
			if err := opts.Validate(); err != nil {
				return err
			}

			result, err := a.run(cmd, jobFile, profileFile, &opts)
			if err != nil {
				return err
			}

			report := selectionReport{
				Analysis:  result.Analysis,
				Ranked:    selection.TopN(result.Ranked, a.cfg.Selection.MaxAssets),
				Selection: *result.Selection,
			}
			a.checkSchema(schemas.Selection, report)
			if a.verbose {
				observability.NewPrinter(cmd.ErrOrStderr()).PrintSelection(report.Selection, opts)
			}

			return writeJSON(cmd.OutOrStdout(), outputFile, report)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&jobFile, "job", "j", "", "Path to a job posting file (required)")
	flags.StringVarP(&profileFile, "profile", "p", "", "Path to a profile JSON or YAML file (required)")
	flags.StringVarP(&outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	flags.Float64("threshold", selection.DefaultThreshold, "Minimum score an asset needs to be selected")
	flags.Int("max-projects", selection.DefaultMaxProjects, "Maximum number of projects to select")
	flags.Int("max-experiences", selection.DefaultMaxExperiences, "Maximum number of experiences to select")
	flags.Int("max-assets", selection.DefaultTopN, "Number of top ranked assets to report")
	bindFlag(a.v, "selection.threshold", flags.Lookup("threshold"))
	bindFlag(a.v, "selection.max-projects", flags.Lookup("max-projects"))
	bindFlag(a.v, "selection.max-experiences", flags.Lookup("max-experiences"))
	bindFlag(a.v, "selection.max-assets", flags.Lookup("max-assets"))

	for _, name := range []string{"job", "profile"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}
