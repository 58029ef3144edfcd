package render

import (
	"context"

	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/tag"
)

// Widget is everything a renderer needs to draw one combobox: the root tag
// inputs and the options shown in its listbox.
type Widget struct {
	Field   string
	Tag     []tag.Option
	Options []option.Option
}

// Renderer turns a Widget into markup.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, widget Widget, options RenderOptions) ([]byte, error)
}
