// Package combobox generates accessible combobox widgets for server-rendered
// Go applications. It re-exports the attribute builder, the option normaliser
// and the template helper surface so callers can stay on one import.
package combobox

import (
	"context"
	"html/template"

	"github.com/goliatone/go-combobox/pkg/attrs"
	"github.com/goliatone/go-combobox/pkg/form"
	"github.com/goliatone/go-combobox/pkg/helper"
	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/render"
	"github.com/goliatone/go-combobox/pkg/renderers/vanilla"
	"github.com/goliatone/go-combobox/pkg/tag"
)

// Option is the normalised listbox entry.
type Option = option.Option

// RawOption is an option record as supplied by callers.
type RawOption = option.RawOption

// TagOption configures the root tag.
type TagOption = tag.Option

// FormBinding scopes a combobox to a form object.
type FormBinding = form.Binding

// Widget is a root tag plus its listbox options.
type Widget = render.Widget

// RenderOptions carry per-request rendering settings.
type RenderOptions = render.RenderOptions

// Tag renders the combobox root tag for field.
func Tag(field string, opts ...tag.Option) template.HTML {
	return template.HTML(tag.Render(field, opts...))
}

// Attributes returns the ordered root tag attributes for field.
func Attributes(field string, opts ...tag.Option) *attrs.Set {
	return tag.Attributes(field, opts...)
}

// Options normalises raws into listbox options.
func Options(raws []RawOption) []Option {
	return option.Normalize(raws)
}

// FuncMap returns the template helper surface for the current configuration.
func FuncMap() map[string]any {
	return helper.FuncMap()
}

// NewFormBuilder returns a form binding for objectName. object may be nil.
func NewFormBuilder(objectName string, object form.Lookup) *form.Builder {
	return form.NewBuilder(objectName, object)
}

// DefaultRenderer names the built-in HTML renderer.
const DefaultRenderer = "vanilla"

// NewRegistry returns a renderer registry with the built-in renderer
// registered under DefaultRenderer.
func NewRegistry() (*render.Registry, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render draws a full widget with the built-in templates.
func Render(ctx context.Context, widget Widget, opts RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Render(ctx, DefaultRenderer, widget, opts)
}
