// Package pipeline provides the high-level orchestration for analyzing a job
// posting and matching a profile against it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/application-assistant/internal/experience"
	"github.com/jonathan/application-assistant/internal/ingestion"
	"github.com/jonathan/application-assistant/internal/parsing"
	"github.com/jonathan/application-assistant/internal/pipeline/steps"
	"github.com/jonathan/application-assistant/internal/ranking"
	"github.com/jonathan/application-assistant/internal/schemas"
	"github.com/jonathan/application-assistant/internal/selection"
	"github.com/jonathan/application-assistant/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. It may be called
// from more than one goroutine.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	JobPath     string
	ProfilePath string
	Profile     *types.Profile // used instead of ProfilePath when set

	Analyzer *parsing.Analyzer
	Ranker   *ranking.Ranker

	// Selection enables the select step when non-nil
	Selection *selection.Options

	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Result holds every artifact produced by a run
type Result struct {
	Metadata  *ingestion.Metadata
	Analysis  *types.JobAnalysis
	Profile   *types.Profile
	Ranked    []types.ProfileAsset
	Selection *selection.Selection
}

// RankedAssets returns the analysis and ranked list as one document
func (r *Result) RankedAssets() *types.RankedAssets {
	return &types.RankedAssets{Analysis: r.Analysis, Ranked: r.Ranked}
}

// tracker records completed steps and reports progress
type tracker struct {
	mu         sync.Mutex
	completed  map[string]bool
	onProgress ProgressCallback
}

func (t *tracker) start(step string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return steps.ValidateDependencies(t.completed, step)
}

func (t *tracker) done(step, message string, content any) {
	t.mu.Lock()
	t.completed[step] = true
	t.mu.Unlock()

	if t.onProgress != nil {
		t.onProgress(ProgressEvent{
			Step:     step,
			Category: steps.StepRegistry[step].Category,
			Message:  message,
			Content:  content,
		})
	}
}

// Run reads and analyzes the posting while the profile loads, then ranks the
// profile and, when selection options are given, selects from the ranking.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Analyzer == nil || opts.Ranker == nil {
		return nil, errors.New("pipeline requires an analyzer and a ranker")
	}
	if opts.Selection != nil {
		if err := opts.Selection.Validate(); err != nil {
			return nil, err
		}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	t := &tracker{completed: make(map[string]bool), onProgress: opts.OnProgress}
	result := &Result{}

	g, gCtx := errgroup.WithContext(ctx)

	// Job branch
	g.Go(func() error {
		metadata, analysis, err := runJobBranch(gCtx, t, opts.JobPath, opts.Analyzer, log)
		if err != nil {
			return err
		}
		result.Metadata = metadata
		result.Analysis = analysis
		return nil
	})

	// Profile branch
	g.Go(func() error {
		if err := t.start(steps.LoadProfile); err != nil {
			return err
		}
		profile := opts.Profile
		if profile == nil {
			var err error
			profile, err = loadProfile(opts.ProfilePath, log)
			if err != nil {
				return err
			}
		}
		result.Profile = profile
		t.done(steps.LoadProfile, "Loaded profile", nil)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := t.start(steps.RankAssets); err != nil {
		return nil, err
	}
	result.Ranked = opts.Ranker.Rank(result.Analysis, result.Profile)
	t.done(steps.RankAssets, fmt.Sprintf("Ranked %d assets", len(result.Ranked)), result.Ranked)

	if opts.Selection == nil {
		return result, nil
	}

	if err := t.start(steps.SelectAssets); err != nil {
		return nil, err
	}
	sel := selection.Select(result.Ranked, *opts.Selection)
	result.Selection = &sel
	log.Info("assets selected",
		zap.Int("projects", len(sel.Projects)),
		zap.Int("experiences", len(sel.Experiences)),
		zap.Float64("threshold", opts.Selection.Threshold),
	)
	t.done(steps.SelectAssets,
		fmt.Sprintf("Selected %d projects and %d experiences", len(sel.Projects), len(sel.Experiences)), sel)

	return result, nil
}

// runJobBranch reads the posting file and analyzes it
func runJobBranch(ctx context.Context, t *tracker, path string, analyzer *parsing.Analyzer, log *zap.Logger) (*ingestion.Metadata, *types.JobAnalysis, error) {
	if err := t.start(steps.IngestJob); err != nil {
		return nil, nil, err
	}
	text, metadata, err := readPosting(path, log)
	if err != nil {
		return nil, nil, err
	}
	t.done(steps.IngestJob, fmt.Sprintf("Read job posting from %s", path), metadata)

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := t.start(steps.AnalyzeJob); err != nil {
		return nil, nil, err
	}
	analysis := analyzePosting(analyzer, text, metadata, log)
	t.done(steps.AnalyzeJob, fmt.Sprintf("Analyzed job posting: %s", analysis.JobTitle), analysis)
	return metadata, analysis, nil
}

// AnalyzeFile reads one posting file and analyzes it without the rest of the pipeline
func AnalyzeFile(path string, analyzer *parsing.Analyzer, log *zap.Logger) (*types.JobAnalysis, error) {
	if log == nil {
		log = zap.NewNop()
	}
	text, metadata, err := readPosting(path, log)
	if err != nil {
		return nil, err
	}
	return analyzePosting(analyzer, text, metadata, log), nil
}

func readPosting(path string, log *zap.Logger) (string, *ingestion.Metadata, error) {
	text, metadata, err := ingestion.ReadPosting(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job posting: %w", err)
	}
	log.Info("job posting read",
		zap.String("posting_id", metadata.ID),
		zap.String("source", metadata.Source),
		zap.String("format", string(metadata.Format)),
		zap.Int("chars", metadata.Chars),
	)
	return text, metadata, nil
}

func analyzePosting(analyzer *parsing.Analyzer, text string, metadata *ingestion.Metadata, log *zap.Logger) *types.JobAnalysis {
	analysis := analyzer.Analyze(text)
	if analysis.Degraded {
		log.Info("job posting analyzed with simplified extraction", zap.String("posting_id", metadata.ID))
	}
	return analysis
}

// loadProfile reads a profile file and warns when its shape is unexpected.
// Unexpected shapes are still ranked on a best-effort basis.
func loadProfile(path string, log *zap.Logger) (*types.Profile, error) {
	profile, err := experience.LoadProfile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if doc, err := experience.LoadDocument(path); err == nil {
		if err := schemas.Validate(schemas.Profile, doc); err != nil {
			log.Warn("profile has an unexpected shape", zap.String("path", path), zap.Error(err))
		}
	}
	return profile, nil
}
