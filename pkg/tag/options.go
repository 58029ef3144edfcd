package tag

import (
	"strings"

	"github.com/goliatone/go-combobox/pkg/attrs"
	"github.com/goliatone/go-combobox/pkg/form"
)

// DefaultType is the input type used when none is supplied.
const DefaultType = "text"

// Option configures a single tag render.
type Option func(*Options)

// Options holds the recognised tag configuration.
type Options struct {
	Type     string
	ID       string
	Name     string
	Value    any
	HasValue bool
	Form     form.Binding
	Open     bool
	AsyncSrc string
	Attrs    []attrs.Attr
}

// NewOptions applies fns over the zero configuration.
func NewOptions(fns ...Option) Options {
	var opts Options
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts
}

// WithType overrides the input type.
func WithType(value string) Option {
	return func(o *Options) {
		o.Type = strings.TrimSpace(value)
	}
}

// WithID overrides the generated id.
func WithID(value string) Option {
	return func(o *Options) {
		o.ID = strings.TrimSpace(value)
	}
}

// WithName overrides the generated name.
func WithName(value string) Option {
	return func(o *Options) {
		o.Name = strings.TrimSpace(value)
	}
}

// WithValue sets the positional value. A nil value clears it.
func WithValue(value any) Option {
	return func(o *Options) {
		o.Value = value
		o.HasValue = value != nil
	}
}

// WithForm binds the tag to a scoped form.
func WithForm(binding form.Binding) Option {
	return func(o *Options) {
		o.Form = binding
	}
}

// WithOpen renders the expanded container variant.
func WithOpen(open bool) Option {
	return func(o *Options) {
		o.Open = open
	}
}

// WithAsyncSrc points the widget at a remote options endpoint.
func WithAsyncSrc(src string) Option {
	return func(o *Options) {
		o.AsyncSrc = strings.TrimSpace(src)
	}
}

// WithAttr appends an extra attribute. Attributes the tag already emits are
// not overridden.
func WithAttr(key, value string) Option {
	return func(o *Options) {
		o.Attrs = append(o.Attrs, attrs.Attr{Key: key, Value: value})
	}
}
