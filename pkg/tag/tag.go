package tag

import (
	"strings"

	"github.com/goliatone/go-combobox/pkg/attrs"
	"github.com/goliatone/go-combobox/pkg/form"
	"github.com/goliatone/go-combobox/pkg/option"
)

const (
	// ListboxSuffix is appended to the control id to build the listbox id.
	ListboxSuffix = "-listbox"
	// ExpandedAttr marks the container of an expanded combobox.
	ExpandedAttr = "data-hw-combobox-expanded-value"
	// AsyncSrcAttr carries the remote options endpoint.
	AsyncSrcAttr = "data-hw-combobox-async-src-value"
	// ContainerClass is the class of the open-state container.
	ContainerClass = "hw-combobox"
)

// Resolved is the outcome of name/id/value resolution for a field.
type Resolved struct {
	Field     string
	Type      string
	Name      string
	ID        string
	Value     any
	HasValue  bool
	ListboxID string
	Open      bool
	AsyncSrc  string
}

// ValueString renders the resolved value for markup.
func (r Resolved) ValueString() string {
	return option.Stringify(r.Value)
}

// Resolve applies the precedence rules for field.
func Resolve(field string, fns ...Option) Resolved {
	opts := NewOptions(fns...)
	return resolve(field, opts)
}

func resolve(field string, opts Options) Resolved {
	out := Resolved{
		Field:    field,
		Type:     opts.Type,
		Open:     opts.Open,
		AsyncSrc: opts.AsyncSrc,
	}
	if out.Type == "" {
		out.Type = DefaultType
	}

	switch {
	case opts.Name != "":
		out.Name = opts.Name
	case opts.Form != nil:
		out.Name = opts.Form.FieldName(field)
	default:
		out.Name = field
	}

	switch {
	case opts.ID != "":
		out.ID = opts.ID
	case opts.Form != nil:
		out.ID = opts.Form.FieldID(field)
	default:
		out.ID = form.SanitizeID(field)
	}

	if opts.HasValue {
		out.Value = opts.Value
		out.HasValue = true
	}
	if opts.Form != nil {
		if bound, ok := opts.Form.FieldValue(field); ok && bound != nil {
			out.Value = bound
			out.HasValue = true
		}
	}

	out.ListboxID = out.ID + ListboxSuffix
	return out
}

// Attributes returns the ordered attribute set for the combobox input.
func Attributes(field string, fns ...Option) *attrs.Set {
	opts := NewOptions(fns...)
	return buildAttributes(resolve(field, opts), opts.Attrs)
}

func buildAttributes(resolved Resolved, extras []attrs.Attr) *attrs.Set {
	set := attrs.New()
	set.Set("type", resolved.Type)
	set.Set("name", resolved.Name)
	set.Set("id", resolved.ID)
	if resolved.HasValue {
		set.Set("value", resolved.ValueString())
	}
	set.Set("role", "combobox")
	set.Set("aria-controls", resolved.ListboxID)
	set.Set("aria-owns", resolved.ListboxID)
	set.Set("aria-haspopup", "listbox")
	set.Set("aria-autocomplete", "both")
	if resolved.AsyncSrc != "" {
		set.Set(AsyncSrcAttr, resolved.AsyncSrc)
	}

	for _, extra := range extras {
		set.SetIfAbsent(extra.Key, extra.Value)
	}
	return set
}

// Render returns the combobox root markup. Closed comboboxes render a bare
// input; open ones wrap it in a fieldset carrying the expanded state.
func Render(field string, fns ...Option) string {
	return RenderWith(field, "", fns...)
}

// RenderWith renders the combobox root followed by children, usually the
// listbox markup. Open comboboxes keep children inside the fieldset.
func RenderWith(field, children string, fns ...Option) string {
	opts := NewOptions(fns...)
	resolved := resolve(field, opts)
	return render(resolved, buildAttributes(resolved, opts.Attrs), children)
}

func render(resolved Resolved, set *attrs.Set, children string) string {
	var builder strings.Builder

	if resolved.Open {
		builder.WriteString(`<fieldset class="`)
		builder.WriteString(ContainerClass)
		builder.WriteString(`" `)
		builder.WriteString(ExpandedAttr)
		builder.WriteString(`="true">`)
	}

	builder.WriteString(`<input`)
	set.WriteTo(&builder)
	builder.WriteString(`>`)
	builder.WriteString(children)

	if resolved.Open {
		builder.WriteString(`</fieldset>`)
	}
	return builder.String()
}
