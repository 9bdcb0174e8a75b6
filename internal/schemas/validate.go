// Package schemas provides JSON Schema validation for the artifacts the
// assistant reads and writes.
package schemas

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/application-assistant/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Names of the embedded schemas
const (
	JobAnalysis  = "job_analysis.schema.json"
	RankedAssets = "ranked_assets.schema.json"
	Selection    = "selection.schema.json"
	ProfileAsset = "profile_asset.schema.json"
	Profile      = "profile.schema.json"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		fmt.Fprintf(&sb, "validation against %s failed:\n", ve.Schema)
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

var (
	compiledMu sync.Mutex
	compiled   = make(map[string]*gojsonschema.Schema)
)

// Names lists the embedded schema files
func Names() ([]string, error) {
	return fs.Glob(schemafiles.FS, "*.schema.json")
}

// Load compiles the named embedded schema with every sibling schema
// registered so relative $ref values resolve without touching the network.
// Compiled schemas are cached.
func Load(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	root, err := fs.ReadFile(schemafiles.FS, name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not found", Cause: err}
	}

	names, err := Names()
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "failed to list schemas", Cause: err}
	}

	loader := gojsonschema.NewSchemaLoader()
	loader.Draft = gojsonschema.Draft7
	for _, sibling := range names {
		if sibling == name {
			continue
		}
		data, err := fs.ReadFile(schemafiles.FS, sibling)
		if err != nil {
			return nil, &SchemaLoadError{Path: sibling, Message: "failed to read schema", Cause: err}
		}
		if err := loader.AddSchemas(gojsonschema.NewBytesLoader(data)); err != nil {
			return nil, &SchemaLoadError{Path: sibling, Message: "failed to register schema", Cause: err}
		}
	}

	schema, err := loader.Compile(gojsonschema.NewBytesLoader(root))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
	}
	compiled[name] = schema
	return schema, nil
}

// ValidateJSON validates a JSON document against the named embedded schema
func ValidateJSON(name string, data []byte) error {
	schema, err := Load(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read document for %s: %w", name, err)
	}
	return toValidationError(name, result)
}

// Validate marshals v and validates it against the named embedded schema
func Validate(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal document for %s: %w", name, err)
	}
	return ValidateJSON(name, data)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError("", result)
}

func toValidationError(name string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
