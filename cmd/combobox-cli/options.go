package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/optionsource"
)

// sourceFlags select where listbox options come from.
type sourceFlags struct {
	options string
	openapi string
	schema  string
	mapping map[string]string
}

var errNoSource = errors.New("no option source: pass --options or --openapi with --schema")

// source builds the configured option source. It returns errNoSource when no
// source flag was given.
func (f sourceFlags) source(loader optionsource.Loader) (optionsource.Source, error) {
	switch {
	case strings.TrimSpace(f.openapi) != "":
		if strings.TrimSpace(f.schema) == "" {
			return nil, fmt.Errorf("--schema is required with --openapi")
		}
		loc, err := optionsource.ParseLocation(f.openapi)
		if err != nil {
			return nil, err
		}
		return optionsource.OpenAPIEnum(loader, loc, f.schema), nil
	case strings.TrimSpace(f.options) != "":
		mapping, err := parseMapping(f.mapping)
		if err != nil {
			return nil, err
		}
		loc, err := optionsource.ParseLocation(f.options)
		if err != nil {
			return nil, err
		}
		return optionsource.Records(loader, loc, mapping), nil
	default:
		return nil, errNoSource
	}
}

// load returns the options of the configured source, or none when no source
// flag was given.
func (f sourceFlags) load(ctx context.Context, loader optionsource.Loader) ([]option.Option, error) {
	src, err := f.source(loader)
	if errors.Is(err, errNoSource) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return src.Options(ctx)
}

func parseMapping(raw map[string]string) (option.Mapping, error) {
	var mapping option.Mapping
	for key, value := range raw {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "id":
			mapping.ID = value
		case "value":
			mapping.Value = value
		case "display":
			mapping.Display = value
		case "content":
			mapping.Content = value
		case "filterable_as":
			mapping.FilterableAs = value
		case "autocompletable_as":
			mapping.AutocompletableAs = value
		default:
			return option.Mapping{}, fmt.Errorf("unknown mapping key %q", key)
		}
	}
	return mapping, nil
}
