// Package prompts holds the model prompt templates, embedded at compile time
// as JSON files of key → template.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// files caches parsed prompt files by name
var files sync.Map

// NotFoundError reports a missing prompt file or key
type NotFoundError struct {
	File string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prompt key %q not found in %s", e.Key, e.File)
}

// Get returns the template stored under key in filename, e.g.
// Get("annotation.json", "annotate-system").
func Get(filename, key string) (string, error) {
	set, err := load(filename)
	if err != nil {
		return "", err
	}
	prompt, ok := set[key]
	if !ok {
		return "", &NotFoundError{File: filename, Key: key}
	}
	return prompt, nil
}

func load(filename string) (map[string]string, error) {
	if cached, ok := files.Load(filename); ok {
		return cached.(map[string]string), nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var set map[string]string
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	actual, _ := files.LoadOrStore(filename, set)
	return actual.(map[string]string), nil
}
