package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/application-assistant/internal/nlp"
	"go.uber.org/zap"
)

// DefaultAnnotateTimeout bounds a single annotation request
const DefaultAnnotateTimeout = 20 * time.Second

// Annotator implements nlp.Annotator by asking a model to tag entities and
// noun phrases. Any transport or decoding failure is returned to the caller,
// which is expected to fall back to its simplified path.
type Annotator struct {
	client  Client
	tier    ModelTier
	timeout time.Duration
	logger  *zap.Logger
}

// AnnotatorOption configures an Annotator
type AnnotatorOption func(*Annotator)

// WithTimeout overrides DefaultAnnotateTimeout
func WithTimeout(d time.Duration) AnnotatorOption {
	return func(a *Annotator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) AnnotatorOption {
	return func(a *Annotator) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnnotator creates an Annotator over client
func NewAnnotator(client Client, opts ...AnnotatorOption) *Annotator {
	a := &Annotator{
		client:  client,
		tier:    TierLite,
		timeout: DefaultAnnotateTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate implements nlp.Annotator
func (a *Annotator) Annotate(text string) (*nlp.Annotation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	prompt := BuildExtractionPrompt(AnnotationSchema(), text)

	start := time.Now()
	response, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("annotation response received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_chars", len(response)),
	)

	return parseAnnotation(response)
}

// parseAnnotation decodes a model response, dropping blank spans
func parseAnnotation(response string) (*nlp.Annotation, error) {
	var ann nlp.Annotation
	if err := json.Unmarshal([]byte(ExtractJSONObject(response)), &ann); err != nil {
		return nil, &ResponseError{Message: "failed to parse annotation JSON", Cause: err}
	}

	entities := make([]nlp.Entity, 0, len(ann.Entities))
	for _, e := range ann.Entities {
		e.Text = strings.TrimSpace(e.Text)
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Text == "" || e.Label == "" {
			continue
		}
		entities = append(entities, e)
	}

	phrases := make([]string, 0, len(ann.NounPhrases))
	for _, p := range ann.NounPhrases {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}

	return &nlp.Annotation{Entities: entities, NounPhrases: phrases}, nil
}
