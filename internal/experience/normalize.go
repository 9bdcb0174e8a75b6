package experience

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/application-assistant/internal/types"
)

// Asset is one project or experience in the uniform shape the ranker scores
type Asset struct {
	Title       string
	Description string
	Kind        types.AssetKind
}

// assetRules is the ordered list of accessors used to read one kind of asset
type assetRules struct {
	kind         types.AssetKind
	defaultTitle string
	titleKeys    []string
}

var (
	projectRules = assetRules{
		kind:         types.KindProject,
		defaultTitle: "Project",
		titleKeys:    []string{"title", "name"},
	}
	experienceRules = assetRules{
		kind:         types.KindExperience,
		defaultTitle: "Experience",
		titleKeys:    []string{"position", "title", "role"},
	}
)

// descriptionKey is read for the description of every record
const descriptionKey = "description"

// Normalize flattens the projects and then the experiences of profile into
// assets. It never fails: unexpected shapes become best-effort assets or are
// skipped, and every asset has a non-empty title.
func Normalize(profile *types.Profile) []Asset {
	assets := make([]Asset, 0)
	if profile == nil {
		return assets
	}
	assets = projectRules.appendField(assets, profile.Projects)
	assets = experienceRules.appendField(assets, profile.Experiences)
	return assets
}

func (r assetRules) appendField(dst []Asset, field types.AssetField) []Asset {
	switch field.Shape {
	case types.FieldText:
		return append(dst, r.fromText(field.Text))
	case types.FieldList:
		for _, entry := range field.Entries {
			dst = append(dst, r.fromEntry(entry))
		}
		return dst
	case types.FieldOther:
		// A lone record is read as a one-element list; other scalars carry
		// nothing to score.
		if record, ok := field.Value.(map[string]any); ok {
			return append(dst, r.fromRecord(record))
		}
		return dst
	default:
		return dst
	}
}

func (r assetRules) fromEntry(entry types.AssetEntry) Asset {
	switch entry.Shape {
	case types.EntryText:
		return r.fromText(entry.Text)
	case types.EntryRecord:
		return r.fromRecord(entry.Record)
	default:
		return r.fromText(render(entry.Value))
	}
}

func (r assetRules) fromText(text string) Asset {
	return Asset{Title: r.defaultTitle, Description: text, Kind: r.kind}
}

func (r assetRules) fromRecord(record map[string]any) Asset {
	asset := Asset{Title: r.defaultTitle, Kind: r.kind}
	for _, key := range r.titleKeys {
		if title := strings.TrimSpace(render(record[key])); title != "" {
			asset.Title = title
			break
		}
	}

	if desc, ok := record[descriptionKey]; ok && desc != nil {
		asset.Description = render(desc)
	} else {
		asset.Description = render(record)
	}
	return asset
}

// render turns a decoded value into text. Strings pass through, scalars
// use their natural formatting and composites become JSON with sorted keys.
func render(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool, int, int64, float64, float32, uint64:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(jsonSafe(v))
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// jsonSafe converts map[any]any values produced by YAML decoding into
// string-keyed maps that encoding/json accepts.
func jsonSafe(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = jsonSafe(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonSafe(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonSafe(item)
		}
		return out
	default:
		return v
	}
}
