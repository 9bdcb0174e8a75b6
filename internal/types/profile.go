// Package types provides type definitions for structured data used throughout the application-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Profile is the caller's profile. Only projects and experiences are scored;
// every other field of the source document is ignored.
type Profile struct {
	Projects    AssetField `json:"projects"`
	Experiences AssetField `json:"experiences"`
}

// UnmarshalJSON reads "experiences", falling back to the singular
// "experience" key older profiles use.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw struct {
		Projects    AssetField `json:"projects"`
		Experiences AssetField `json:"experiences"`
		Experience  AssetField `json:"experience"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Projects = raw.Projects
	p.Experiences = raw.Experiences
	if p.Experiences.IsZero() {
		p.Experiences = raw.Experience
	}
	return nil
}

// FieldShape tags which variant an AssetField holds
type FieldShape int

const (
	// FieldAbsent means the field was missing or null
	FieldAbsent FieldShape = iota
	// FieldText means the field was a single free-text value
	FieldText
	// FieldList means the field was a list of entries
	FieldList
	// FieldOther means the field had an unexpected scalar or object shape
	FieldOther
)

// AssetField holds the projects or experiences of a profile in any of the
// shapes callers send: one string, a list, or nothing.
type AssetField struct {
	Shape   FieldShape
	Text    string
	Entries []AssetEntry
	Value   any
}

// EntryShape tags which variant an AssetEntry holds
type EntryShape int

const (
	// EntryText is a free-form string entry
	EntryText EntryShape = iota
	// EntryRecord is a structured record with named fields
	EntryRecord
	// EntryOther is any other JSON value (number, bool, nested list)
	EntryOther
)

// AssetEntry is one element of a list-shaped AssetField
type AssetEntry struct {
	Shape  EntryShape
	Text   string
	Record map[string]any
	Value  any
}

// TextField builds a single-text AssetField
func TextField(text string) AssetField {
	return AssetField{Shape: FieldText, Text: text}
}

// ListField builds a list AssetField
func ListField(entries ...AssetEntry) AssetField {
	return AssetField{Shape: FieldList, Entries: entries}
}

// TextEntry builds a free-form list entry
func TextEntry(text string) AssetEntry {
	return AssetEntry{Shape: EntryText, Text: text}
}

// RecordEntry builds a structured list entry
func RecordEntry(record map[string]any) AssetEntry {
	return AssetEntry{Shape: EntryRecord, Record: record}
}

// FieldFromValue classifies a decoded JSON/YAML value into an AssetField
func FieldFromValue(v any) AssetField {
	switch val := v.(type) {
	case nil:
		return AssetField{}
	case string:
		return TextField(val)
	case []any:
		entries := make([]AssetEntry, 0, len(val))
		for _, item := range val {
			entries = append(entries, EntryFromValue(item))
		}
		return ListField(entries...)
	case []string:
		entries := make([]AssetEntry, 0, len(val))
		for _, item := range val {
			entries = append(entries, TextEntry(item))
		}
		return ListField(entries...)
	case []map[string]any:
		entries := make([]AssetEntry, 0, len(val))
		for _, item := range val {
			entries = append(entries, RecordEntry(item))
		}
		return ListField(entries...)
	default:
		return AssetField{Shape: FieldOther, Value: v}
	}
}

// EntryFromValue classifies one decoded list element
func EntryFromValue(v any) AssetEntry {
	switch val := v.(type) {
	case string:
		return TextEntry(val)
	case map[string]any:
		return RecordEntry(val)
	case map[any]any:
		record := make(map[string]any, len(val))
		for k, item := range val {
			record[fmt.Sprint(k)] = item
		}
		return RecordEntry(record)
	default:
		return AssetEntry{Shape: EntryOther, Value: v}
	}
}

// IsZero reports whether the field carries nothing to score
func (f AssetField) IsZero() bool {
	return f.Shape == FieldAbsent
}

// UnmarshalJSON accepts a string, a list of strings/records, or null
func (f *AssetField) UnmarshalJSON(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		*f = AssetField{}
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FieldFromValue(v)
	return nil
}

// MarshalJSON writes the field back in the shape it was read in
func (f AssetField) MarshalJSON() ([]byte, error) {
	switch f.Shape {
	case FieldText:
		return json.Marshal(f.Text)
	case FieldList:
		out := make([]any, 0, len(f.Entries))
		for _, e := range f.Entries {
			switch e.Shape {
			case EntryText:
				out = append(out, e.Text)
			case EntryRecord:
				out = append(out, e.Record)
			default:
				out = append(out, e.Value)
			}
		}
		return json.Marshal(out)
	case FieldOther:
		return json.Marshal(f.Value)
	default:
		return []byte("null"), nil
	}
}
