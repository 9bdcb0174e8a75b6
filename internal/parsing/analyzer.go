// Package parsing turns free-text job postings into a structured JobAnalysis
// using the skill catalog and an optional text-understanding backend.
package parsing

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/application-assistant/internal/catalog"
	"github.com/jonathan/application-assistant/internal/logger"
	"github.com/jonathan/application-assistant/internal/nlp"
	"github.com/jonathan/application-assistant/internal/skills"
	"github.com/jonathan/application-assistant/internal/types"
	"go.uber.org/zap"
)

// Analyzer extracts requirements from job postings. It holds only
// read-only collaborators and is safe for concurrent use.
type Analyzer struct {
	catalog    *catalog.Catalog
	classifier *Classifier
	extractor  *skills.Extractor
	annotator  nlp.Annotator
	logger     *zap.Logger

	unavailableOnce sync.Once
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithAnnotator sets the text-understanding backend. Without one the
// analyzer always takes its simplified path.
func WithAnnotator(a nlp.Annotator) Option {
	return func(an *Analyzer) {
		if a != nil {
			an.annotator = a
		}
	}
}

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) Option {
	return func(an *Analyzer) {
		if l != nil {
			an.logger = l
		}
	}
}

// WithMatcher shares an existing skill matcher
func WithMatcher(m *skills.Matcher) Option {
	return func(an *Analyzer) {
		if m != nil {
			an.extractor = skills.NewExtractor(an.catalog, m)
		}
	}
}

// NewAnalyzer creates an Analyzer over cat. A nil cat uses catalog.Default.
func NewAnalyzer(cat *catalog.Catalog, opts ...Option) *Analyzer {
	if cat == nil {
		cat = catalog.Default()
	}
	a := &Analyzer{
		catalog:    cat,
		classifier: NewClassifier(cat),
		annotator:  nlp.Disabled{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.extractor == nil {
		a.extractor = skills.NewExtractor(cat, skills.NewMatcher(cat.TechSkills()))
	}
	return a
}

// Analyze extracts a JobAnalysis from raw posting text. It never fails:
// backend errors and internal panics degrade to the simplified result,
// which carries no title, company or responsibilities.
func (a *Analyzer) Analyze(raw string) (result *types.JobAnalysis) {
	lower := strings.ToLower(raw)
	category := catalog.DefaultCategory

	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("job analysis panicked, using simplified analysis",
				zap.String("panic", fmt.Sprint(r)),
				zap.String("text", logger.TruncateForLog(raw, 120)),
			)
			result = a.recoverSimplified(lower, category)
		}
	}()

	category = a.classifier.Classify(lower)

	ann, err := a.annotator.Annotate(raw)
	if err != nil || ann == nil {
		a.logFallback(err)
		return a.simplified(lower, category)
	}

	businessHits := a.extractor.ExtractConcepts(lower)
	analysis := &types.JobAnalysis{
		RequiredSkills:          a.extractor.ExtractByCategory(lower, category),
		KeyConcepts:             annotatedConcepts(ann, businessHits),
		RequiredExperienceYears: ExperienceYears(raw),
		CompanyName:             CompanyName(ann),
		JobTitle:                JobTitle(raw),
		KeyResponsibilities:     Responsibilities(raw),
		Category:                string(category),
	}

	a.logger.Debug("job analyzed",
		zap.String("category", analysis.Category),
		zap.Int("skills", len(analysis.RequiredSkills)),
		zap.Int("concepts", len(analysis.KeyConcepts)),
		zap.Int("experience_years", analysis.RequiredExperienceYears),
	)
	return analysis
}

// simplified is the analysis used when no text-understanding backend can
// serve the request.
func (a *Analyzer) simplified(lower string, category catalog.Category) *types.JobAnalysis {
	var teachingHits []string
	if category == catalog.CategoryTeaching {
		for _, c := range a.catalog.TeachingConcepts() {
			if strings.Contains(lower, c) {
				teachingHits = append(teachingHits, c)
			}
		}
	}

	return &types.JobAnalysis{
		RequiredSkills:          a.extractor.ExtractByCategory(lower, category),
		KeyConcepts:             fallbackConcepts(teachingHits, a.extractor.ExtractConcepts(lower)),
		RequiredExperienceYears: ExperienceYears(lower),
		KeyResponsibilities:     []string{},
		Category:                string(category),
		Degraded:                true,
	}
}

// recoverSimplified runs simplified and settles for an empty analysis if
// that panics too.
func (a *Analyzer) recoverSimplified(lower string, category catalog.Category) (result *types.JobAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			result = &types.JobAnalysis{
				RequiredSkills:      []string{},
				KeyConcepts:         []string{},
				KeyResponsibilities: []string{},
				Category:            string(category),
				Degraded:            true,
			}
		}
	}()
	return a.simplified(lower, category)
}

// logFallback reports an unusable backend once, and any other backend error
// every time it happens.
func (a *Analyzer) logFallback(err error) {
	if err == nil || errors.Is(err, nlp.ErrUnavailable) {
		a.unavailableOnce.Do(func() {
			a.logger.Warn("text-understanding backend unavailable, using simplified analysis", zap.Error(err))
		})
		return
	}
	a.logger.Warn("annotation failed, using simplified analysis", zap.Error(err))
}
