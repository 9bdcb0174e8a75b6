package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/application-assistant/internal/schemas"
	"go.uber.org/zap"
)

// writeJSON writes v as indented JSON to path, or to stdout when path is empty
func writeJSON(stdout io.Writer, path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	jsonOutput = append(jsonOutput, '\n')

	if path == "" {
		_, err := stdout.Write(jsonOutput)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// checkSchema validates v against the named schema. Output validation is a
// safety check, so failures are only logged.
func (a *app) checkSchema(name string, v any) {
	err := schemas.Validate(name, v)
	if err == nil {
		return
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		a.logger.Warn("output does not match schema",
			zap.String("schema", name),
			zap.Int("violations", len(validationErr.Errors)),
			zap.Error(err),
		)
		return
	}
	a.logger.Warn("could not validate output against schema", zap.String("schema", name), zap.Error(err))
}
