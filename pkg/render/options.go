package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-combobox/pkg/config"
)

// RenderOptions carry per-request settings that do not belong to the widget
// itself.
type RenderOptions struct {
	// Theme supplies partial overrides, tokens and asset lookups. Nil renders
	// with the built-in templates.
	Theme *theme.RendererConfig
	// ContentPolicy decides how option content is sanitised. Empty falls back
	// to the process configuration.
	ContentPolicy config.ContentPolicy
	// Label becomes the listbox aria-label.
	Label string
}

// Policy returns the effective content policy.
func (o RenderOptions) Policy() config.ContentPolicy {
	if o.ContentPolicy != "" {
		return o.ContentPolicy
	}
	return config.Current().ContentPolicy
}
