// Package option normalises option-like records into the canonical listbox
// Option shape. Every field falls back to the shared display text when it is
// absent; the value falls back to the record id.
package option

import (
	"fmt"
	"strings"
)

// RawOption is an option record as supplied by callers. A nil ID/Value or an
// empty string field counts as absent.
type RawOption struct {
	ID                any    `json:"id,omitempty" yaml:"id,omitempty"`
	Value             any    `json:"value,omitempty" yaml:"value,omitempty"`
	Display           string `json:"display,omitempty" yaml:"display,omitempty"`
	Content           string `json:"content,omitempty" yaml:"content,omitempty"`
	FilterableAs      string `json:"filterable_as,omitempty" yaml:"filterable_as,omitempty"`
	AutocompletableAs string `json:"autocompletable_as,omitempty" yaml:"autocompletable_as,omitempty"`
}

// Option is the normalised listbox entry.
type Option struct {
	Value             any    `json:"value"`
	Content           string `json:"content"`
	FilterableAs      string `json:"filterable_as"`
	AutocompletableAs string `json:"autocompletable_as"`
}

// New normalises raw into an Option.
func New(raw RawOption) Option {
	return Option{
		Value:             ListboxValue(raw),
		Content:           ListboxContent(raw),
		FilterableAs:      ListboxFilterableAs(raw),
		AutocompletableAs: ListboxAutocompletableAs(raw),
	}
}

// Normalize converts raws element-wise, keeping order and duplicates.
func Normalize(raws []RawOption) []Option {
	if len(raws) == 0 {
		return nil
	}
	out := make([]Option, 0, len(raws))
	for _, raw := range raws {
		out = append(out, New(raw))
	}
	return out
}

// ListboxValue returns raw.Value, falling back to raw.ID.
func ListboxValue(raw RawOption) any {
	if raw.Value != nil {
		return raw.Value
	}
	return raw.ID
}

// ListboxContent returns raw.Content, falling back to raw.Display.
func ListboxContent(raw RawOption) string {
	return firstPresent(raw.Content, raw.Display)
}

// ListboxFilterableAs returns raw.FilterableAs, falling back to raw.Display.
func ListboxFilterableAs(raw RawOption) string {
	return firstPresent(raw.FilterableAs, raw.Display)
}

// ListboxAutocompletableAs returns raw.AutocompletableAs, falling back to
// raw.Display.
func ListboxAutocompletableAs(raw RawOption) string {
	return firstPresent(raw.AutocompletableAs, raw.Display)
}

// ValueString renders the option value for markup. Nil renders as "".
func (o Option) ValueString() string {
	return Stringify(o.Value)
}

// Stringify renders scalar values the way they appear in attributes.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// firstPresent treats an empty string as absent.
func firstPresent(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

// Mapping names the record keys read for each RawOption field. Empty entries
// use the defaults from DefaultMapping.
type Mapping struct {
	ID                string `json:"id,omitempty" yaml:"id,omitempty"`
	Value             string `json:"value,omitempty" yaml:"value,omitempty"`
	Display           string `json:"display,omitempty" yaml:"display,omitempty"`
	Content           string `json:"content,omitempty" yaml:"content,omitempty"`
	FilterableAs      string `json:"filterable_as,omitempty" yaml:"filterable_as,omitempty"`
	AutocompletableAs string `json:"autocompletable_as,omitempty" yaml:"autocompletable_as,omitempty"`
}

// DefaultMapping reads the snake_case keys used by RawOption's tags.
func DefaultMapping() Mapping {
	return Mapping{
		ID:                "id",
		Value:             "value",
		Display:           "display",
		Content:           "content",
		FilterableAs:      "filterable_as",
		AutocompletableAs: "autocompletable_as",
	}
}

func (m Mapping) withDefaults() Mapping {
	defaults := DefaultMapping()
	if strings.TrimSpace(m.ID) == "" {
		m.ID = defaults.ID
	}
	if strings.TrimSpace(m.Value) == "" {
		m.Value = defaults.Value
	}
	if strings.TrimSpace(m.Display) == "" {
		m.Display = defaults.Display
	}
	if strings.TrimSpace(m.Content) == "" {
		m.Content = defaults.Content
	}
	if strings.TrimSpace(m.FilterableAs) == "" {
		m.FilterableAs = defaults.FilterableAs
	}
	if strings.TrimSpace(m.AutocompletableAs) == "" {
		m.AutocompletableAs = defaults.AutocompletableAs
	}
	return m
}

// Raw reads a RawOption from record using the mapping's key names. The
// camelCase spelling of the default filter/autocomplete keys is accepted too.
func (m Mapping) Raw(record map[string]any) RawOption {
	m = m.withDefaults()
	return RawOption{
		ID:                lookup(record, m.ID),
		Value:             lookup(record, m.Value),
		Display:           lookupString(record, m.Display),
		Content:           lookupString(record, m.Content),
		FilterableAs:      lookupString(record, m.FilterableAs, camelAlias(m.FilterableAs)),
		AutocompletableAs: lookupString(record, m.AutocompletableAs, camelAlias(m.AutocompletableAs)),
	}
}

// FromMap reads a RawOption from record using DefaultMapping.
func FromMap(record map[string]any) RawOption {
	return DefaultMapping().Raw(record)
}

// FromRecords normalises records through mapping.
func FromRecords(records []map[string]any, mapping Mapping) []Option {
	if len(records) == 0 {
		return nil
	}
	out := make([]Option, 0, len(records))
	for _, record := range records {
		out = append(out, New(mapping.Raw(record)))
	}
	return out
}

func lookup(record map[string]any, keys ...string) any {
	if record == nil {
		return nil
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if value, ok := record[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func lookupString(record map[string]any, keys ...string) string {
	return Stringify(lookup(record, keys...))
}

func camelAlias(key string) string {
	switch key {
	case "filterable_as":
		return "filterableAs"
	case "autocompletable_as":
		return "autocompletableAs"
	default:
		return ""
	}
}
