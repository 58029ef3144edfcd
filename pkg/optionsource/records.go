package optionsource

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-combobox/pkg/option"
)

// ParseRecords decodes a YAML or JSON list of option records. The list may sit
// at the top level or under an "options" key. Scalar entries become options
// whose id and display are the scalar itself.
func ParseRecords(data []byte, mapping option.Mapping) ([]option.Option, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("optionsource: decode records: %w", err)
	}

	var entries []any
	switch v := payload.(type) {
	case nil:
		return nil, nil
	case []any:
		entries = v
	case map[string]any:
		list, ok := v["options"].([]any)
		if !ok {
			return nil, fmt.Errorf("optionsource: records document needs a list or an options key")
		}
		entries = list
	default:
		return nil, fmt.Errorf("optionsource: unsupported records document %T", payload)
	}

	out := make([]option.Option, 0, len(entries))
	for idx, entry := range entries {
		switch record := entry.(type) {
		case nil:
			continue
		case map[string]any:
			out = append(out, option.New(mapping.Raw(record)))
		case []any:
			return nil, fmt.Errorf("optionsource: record %d is a list", idx)
		default:
			out = append(out, option.New(option.RawOption{ID: record, Display: option.Stringify(record)}))
		}
	}
	return out, nil
}

// FromFile reads records from path inside fsys on every call.
func FromFile(fsys fs.FS, path string, mapping option.Mapping) Source {
	return SourceFunc(func(ctx context.Context) ([]option.Option, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if fsys == nil {
			return nil, fmt.Errorf("optionsource: filesystem is nil")
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("optionsource: read %q: %w", path, err)
		}
		return ParseRecords(data, mapping)
	})
}

// Records fetches loc through loader on every call and decodes its records.
func Records(loader Loader, loc Location, mapping option.Mapping) Source {
	return SourceFunc(func(ctx context.Context) ([]option.Option, error) {
		doc, err := load(ctx, loader, loc)
		if err != nil {
			return nil, err
		}
		return ParseRecords(doc.Raw(), mapping)
	})
}

func load(ctx context.Context, loader Loader, loc Location) (Document, error) {
	if loader == nil {
		return Document{}, fmt.Errorf("optionsource: loader is nil")
	}
	if loc == nil {
		return Document{}, fmt.Errorf("optionsource: location is nil")
	}
	doc, err := loader.Load(ctx, loc)
	if err != nil {
		return Document{}, fmt.Errorf("optionsource: load %q: %w", loc.Location(), err)
	}
	return doc, nil
}
