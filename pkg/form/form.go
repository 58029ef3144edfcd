// Package form derives conventional field names, ids and bound values from a
// named form object. A Binding is passed explicitly to the tag helpers so the
// combobox can participate in a scoped form (`user[state]`, `user_state`).
package form

import "strings"

// Binding associates field identifiers with a scoped form and its bound model.
type Binding interface {
	FieldName(field string) string
	FieldID(field string) string
	FieldValue(field string) (any, bool)
}

// Lookup resolves a field value on a bound model.
type Lookup interface {
	Lookup(field string) (any, bool)
}

// Record is a map-backed model satisfying Lookup.
type Record map[string]any

// Lookup returns the value stored under field.
func (r Record) Lookup(field string) (any, bool) {
	if r == nil {
		return nil, false
	}
	value, ok := r[field]
	return value, ok
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(field string) (any, bool)

// Lookup calls fn(field).
func (fn LookupFunc) Lookup(field string) (any, bool) {
	if fn == nil {
		return nil, false
	}
	return fn(field)
}

// Builder is the default Binding. ObjectName scopes generated names; Object is
// optional and supplies bound values.
type Builder struct {
	ObjectName string
	Object     Lookup
}

// Ensure Builder implements Binding.
var _ Binding = (*Builder)(nil)

// NewBuilder constructs a Builder for objectName. object may be nil.
func NewBuilder(objectName string, object Lookup) *Builder {
	return &Builder{
		ObjectName: strings.TrimSpace(objectName),
		Object:     object,
	}
}

// FieldName returns `object[field]`, or field when no object name is set.
func (b *Builder) FieldName(field string) string {
	if b == nil || b.ObjectName == "" {
		return field
	}
	return b.ObjectName + "[" + field + "]"
}

// FieldID returns `object_field` using sanitised segments.
func (b *Builder) FieldID(field string) string {
	if b == nil || b.ObjectName == "" {
		return SanitizeID(field)
	}
	return sanitizeObjectName(b.ObjectName) + "_" + sanitizeMethodName(field)
}

// FieldValue returns the bound value for field. Missing objects, missing keys
// and nil values all report false so callers keep their own fallback.
func (b *Builder) FieldValue(field string) (any, bool) {
	if b == nil || b.Object == nil {
		return nil, false
	}
	value, ok := b.Object.Lookup(field)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// SanitizeID turns a field name into an id: closing brackets are dropped and
// every character outside [-a-zA-Z0-9:.] becomes an underscore.
func SanitizeID(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))
	for _, r := range name {
		switch {
		case r == ']':
			continue
		case isIDRune(r):
			builder.WriteRune(r)
		default:
			builder.WriteByte('_')
		}
	}
	return builder.String()
}

func sanitizeObjectName(name string) string {
	name = strings.ReplaceAll(name, "][", "_")
	var builder strings.Builder
	builder.Grow(len(name))
	for _, r := range name {
		if isIDRune(r) {
			builder.WriteRune(r)
			continue
		}
		builder.WriteByte('_')
	}
	return strings.TrimSuffix(builder.String(), "_")
}

func sanitizeMethodName(name string) string {
	return strings.TrimSuffix(name, "?")
}

func isIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == ':', r == '.':
		return true
	default:
		return false
	}
}
