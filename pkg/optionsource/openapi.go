package optionsource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-combobox/pkg/option"
)

// ErrSchemaNotFound reports a schema reference that does not resolve.
var ErrSchemaNotFound = errors.New("optionsource: schema not found")

// Extension keys read for enum labels, in order of preference.
var enumLabelExtensions = []string{"x-enumNames", "x-enum-names", "x-enum-varnames"}

const componentsPrefix = "#/components/schemas/"

// ParseOpenAPIEnum turns the enum of a component schema into options. ref is
// a schema name, optionally followed by dotted property names
// ("Address.country"). Array schemas contribute the enum of their items.
// Labels come from x-enumNames when present.
func ParseOpenAPIEnum(ctx context.Context, data []byte, ref string) ([]option.Option, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("optionsource: load openapi document: %w", err)
	}
	return EnumOptions(doc, ref)
}

// EnumOptions resolves ref inside an already loaded document.
func EnumOptions(doc *openapi3.T, ref string) ([]option.Option, error) {
	schema, err := lookupSchema(doc, ref)
	if err != nil {
		return nil, err
	}

	if len(schema.Enum) == 0 && schema.Items != nil && schema.Items.Value != nil {
		schema = schema.Items.Value
	}
	if len(schema.Enum) == 0 {
		return nil, fmt.Errorf("optionsource: schema %q declares no enum values", ref)
	}

	labels := enumLabels(schema.Extensions)
	out := make([]option.Option, 0, len(schema.Enum))
	for idx, value := range schema.Enum {
		if value == nil {
			continue
		}
		display := option.Stringify(value)
		if idx < len(labels) && labels[idx] != "" {
			display = labels[idx]
		}
		out = append(out, option.New(option.RawOption{ID: value, Display: display}))
	}
	return out, nil
}

// FromOpenAPIEnum parses data once per call and serves the enum at ref.
func FromOpenAPIEnum(data []byte, ref string) Source {
	snapshot := append([]byte(nil), data...)
	return SourceFunc(func(ctx context.Context) ([]option.Option, error) {
		return ParseOpenAPIEnum(ctx, snapshot, ref)
	})
}

// OpenAPIEnum fetches loc through loader and serves the enum at ref.
func OpenAPIEnum(loader Loader, loc Location, ref string) Source {
	return SourceFunc(func(ctx context.Context) ([]option.Option, error) {
		doc, err := load(ctx, loader, loc)
		if err != nil {
			return nil, err
		}
		return ParseOpenAPIEnum(ctx, doc.Raw(), ref)
	})
}

func lookupSchema(doc *openapi3.T, ref string) (*openapi3.Schema, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), componentsPrefix)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrSchemaNotFound)
	}
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("%w: %q (document has no components)", ErrSchemaNotFound, ref)
	}

	parts := strings.Split(ref, ".")
	current := doc.Components.Schemas[parts[0]]
	if current == nil || current.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, parts[0])
	}

	schema := current.Value
	for _, part := range parts[1:] {
		if len(schema.Properties) == 0 && schema.Items != nil && schema.Items.Value != nil {
			schema = schema.Items.Value
		}
		next := schema.Properties[part]
		if next == nil || next.Value == nil {
			return nil, fmt.Errorf("%w: %q has no property %q", ErrSchemaNotFound, ref, part)
		}
		schema = next.Value
	}
	return schema, nil
}

func enumLabels(extensions map[string]any) []string {
	for _, key := range enumLabelExtensions {
		raw, ok := extensions[key]
		if !ok {
			continue
		}
		switch values := raw.(type) {
		case []string:
			return values
		case []any:
			labels := make([]string, len(values))
			for idx, value := range values {
				labels[idx] = option.Stringify(value)
			}
			return labels
		}
	}
	return nil
}
