package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/application-assistant/internal/catalog"
	"github.com/jonathan/application-assistant/internal/config"
	"github.com/jonathan/application-assistant/internal/llm"
	"github.com/jonathan/application-assistant/internal/logger"
	"github.com/jonathan/application-assistant/internal/nlp"
	"github.com/jonathan/application-assistant/internal/parsing"
	"github.com/jonathan/application-assistant/internal/ranking"
	"github.com/jonathan/application-assistant/internal/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg       *config.Config
	logger    *zap.Logger
	runID     string
	annotator nlp.Annotator
	client    llm.Client
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:               "assistant",
		Short:             "Job application assistant",
		Long:              "Analyzes job postings and ranks the projects and experiences of a profile against them.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Path to a YAML or JSON config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
	flags.Bool("json", false, "Emit logs as JSON")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("annotator", "", "Text-understanding backend: heuristic, gemini or none")
	bindFlag(a.v, "log.json", flags.Lookup("json"))
	bindFlag(a.v, "log.debug", flags.Lookup("debug"))
	bindFlag(a.v, "annotator", flags.Lookup("annotator"))

	cmd.AddCommand(
		newAnalyzeCmd(a),
		newRankCmd(a),
		newSelectCmd(a),
		newSimilarityCmd(),
		newVersionCmd(),
	)
	return cmd
}

// bindFlag lets a flag override the config key when it is set
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
	}
}

// setup loads configuration and builds the logger and annotator
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	base, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.runID = uuid.NewString()
	a.logger = logger.WithRunID(base, a.runID)
	a.annotator = a.newAnnotator()

	a.logger.Debug("configuration loaded",
		zap.String("annotator", cfg.Annotator),
		zap.Float64("threshold", cfg.Selection.Threshold),
	)
	return nil
}

func (a *app) teardown() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.logger.Warn("failed to close model client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// newAnnotator picks the text-understanding backend. The Gemini client is
// only created when the first posting is analyzed.
func (a *app) newAnnotator() nlp.Annotator {
	switch a.cfg.Annotator {
	case config.AnnotatorGemini:
		gemini := a.cfg.Gemini
		return nlp.NewLazy(func() (nlp.Annotator, error) {
			llmConfig := llm.DefaultConfig().WithModel(llm.TierLite, gemini.Model)
			client, err := llm.NewClient(context.Background(), llmConfig, gemini.APIKey)
			if err != nil {
				return nil, err
			}
			a.client = client
			return llm.NewAnnotator(client,
				llm.WithTimeout(gemini.Timeout),
				llm.WithLogger(a.logger),
			), nil
		})
	case config.AnnotatorNone:
		return nlp.Disabled{}
	default:
		return nlp.NewHeuristic()
	}
}

func (a *app) newAnalyzer(matcher *skills.Matcher) *parsing.Analyzer {
	return parsing.NewAnalyzer(catalog.Default(),
		parsing.WithAnnotator(a.annotator),
		parsing.WithLogger(a.logger),
		parsing.WithMatcher(matcher),
	)
}

func (a *app) newRanker(matcher *skills.Matcher) *ranking.Ranker {
	return ranking.NewRanker(
		ranking.WithMatcher(matcher),
		ranking.WithLogger(a.logger),
	)
}

// newMatcher builds the skill matcher shared by the analyzer and the ranker
func newMatcher() *skills.Matcher {
	return skills.NewMatcher(catalog.Default().TechSkills())
}
