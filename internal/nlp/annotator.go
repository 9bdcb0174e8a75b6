// Package nlp defines the optional text-understanding capability used by the
// job analyzer: given text, produce named entities and noun-phrase spans.
package nlp

import (
	"errors"
	"sync"
)

// Entity labels recognized by the analyzer
const (
	LabelOrg       = "ORG"
	LabelProduct   = "PRODUCT"
	LabelWorkOfArt = "WORK_OF_ART"
	LabelLanguage  = "LANGUAGE"
	LabelPerson    = "PERSON"
	LabelLocation  = "GPE"
)

// ErrUnavailable is returned by annotators that have no backend loaded
var ErrUnavailable = errors.New("text-understanding backend unavailable")

// Entity is a recognized span of text with a label
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotation is the output of one Annotate call
type Annotation struct {
	Entities    []Entity `json:"entities"`
	NounPhrases []string `json:"noun_phrases"`
}

// Annotator produces entities and noun phrases for a text
type Annotator interface {
	Annotate(text string) (*Annotation, error)
}

// Disabled is the no-op annotator. It always reports ErrUnavailable so the
// analyzer takes its simplified path.
type Disabled struct{}

// Annotate implements Annotator
func (Disabled) Annotate(string) (*Annotation, error) {
	return nil, ErrUnavailable
}

// Lazy loads a backend on first use and shares it afterwards. The load
// function runs at most once; a failed load leaves the Lazy permanently
// unavailable. Lazy is safe for concurrent use.
type Lazy struct {
	load    func() (Annotator, error)
	once    sync.Once
	backend Annotator
	err     error
}

// NewLazy wraps load in a Lazy annotator
func NewLazy(load func() (Annotator, error)) *Lazy {
	return &Lazy{load: load}
}

// Init loads the backend if it has not been loaded yet. Calling it again is
// a no-op that returns the result of the first load.
func (l *Lazy) Init() error {
	l.once.Do(func() {
		if l.load == nil {
			l.err = ErrUnavailable
			return
		}
		backend, err := l.load()
		if err != nil {
			l.err = errors.Join(ErrUnavailable, err)
			return
		}
		if backend == nil {
			l.err = ErrUnavailable
			return
		}
		l.backend = backend
	})
	return l.err
}

// Annotate implements Annotator
func (l *Lazy) Annotate(text string) (*Annotation, error) {
	if err := l.Init(); err != nil {
		return nil, err
	}
	return l.backend.Annotate(text)
}
