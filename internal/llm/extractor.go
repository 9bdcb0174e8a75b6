// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/application-assistant/internal/prompts"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name, e.g. "Annotation"
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// annotationDescription is used when the embedded prompt file lacks the key
const annotationDescription = `You are a named-entity and noun-phrase tagger for job postings.
Copy every span verbatim from the input. Do not invent organizations or products.`

// AnnotationSchema returns the extraction schema for entity and noun-phrase tagging.
func AnnotationSchema() ExtractionSchema {
	description, err := prompts.Get("annotation.json", "annotate-system")
	if err != nil || description == "" {
		description = annotationDescription
	}
	return ExtractionSchema{
		Name:        "Annotation",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "entities",
				Type:        "[{\"text\": \"string\", \"label\": \"ORG|PRODUCT|WORK_OF_ART|LANGUAGE|PERSON|GPE\"}]",
				Description: "Named entities in order of appearance, text copied verbatim",
				Required:    true,
			},
			{
				Name:        "noun_phrases",
				Type:        "[\"string\"]",
				Description: "Base noun phrases in order of appearance, without leading determiners",
				Required:    true,
			},
		},
	}
}
