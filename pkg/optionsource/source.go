package optionsource

import (
	"context"

	"github.com/goliatone/go-combobox/pkg/option"
)

// Source yields normalised options.
type Source interface {
	Options(ctx context.Context) ([]option.Option, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]option.Option, error)

// Options calls fn.
func (fn SourceFunc) Options(ctx context.Context) ([]option.Option, error) {
	return fn(ctx)
}

// Static returns a Source serving a copy of options.
func Static(options ...option.Option) Source {
	snapshot := append([]option.Option(nil), options...)
	return SourceFunc(func(ctx context.Context) ([]option.Option, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return append([]option.Option(nil), snapshot...), nil
	})
}

// StaticRaw normalises raws once and serves them as a Static source.
func StaticRaw(raws ...option.RawOption) Source {
	return Static(option.Normalize(raws)...)
}
