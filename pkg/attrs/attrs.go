// Package attrs provides an insertion-ordered HTML attribute set. Render
// helpers build a Set per call and write it out in the order attributes were
// added, which keeps markup deterministic across runs.
package attrs

import (
	"html"
	"strings"
)

// Attr is a single attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// Set is an ordered attribute collection. The zero value is ready to use.
type Set struct {
	items []Attr
	index map[string]int
}

// New builds a Set from the supplied attributes, keeping the first occurrence
// position for duplicated keys and the last value.
func New(items ...Attr) *Set {
	set := &Set{}
	for _, item := range items {
		set.Set(item.Key, item.Value)
	}
	return set
}

// Set stores value under key. Existing keys keep their position. Keys that
// are not valid attribute names are dropped.
func (s *Set) Set(key, value string) {
	key = normalize(key)
	if !ValidName(key) {
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if pos, ok := s.index[key]; ok {
		s.items[pos].Value = value
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, Attr{Key: key, Value: value})
}

// SetIfAbsent stores value only when key has not been set yet and reports
// whether the attribute was added.
func (s *Set) SetIfAbsent(key, value string) bool {
	if s.Has(key) {
		return false
	}
	if !ValidName(normalize(key)) {
		return false
	}
	s.Set(key, value)
	return true
}

// Get returns the value stored under key.
func (s *Set) Get(key string) (string, bool) {
	if s == nil || s.index == nil {
		return "", false
	}
	pos, ok := s.index[normalize(key)]
	if !ok {
		return "", false
	}
	return s.items[pos].Value, true
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Len returns the number of attributes.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Keys returns attribute names in insertion order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.items))
	for _, item := range s.items {
		keys = append(keys, item.Key)
	}
	return keys
}

// All returns a copy of the attributes in insertion order.
func (s *Set) All() []Attr {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]Attr, len(s.items))
	copy(out, s.items)
	return out
}

// Map returns the attributes as a plain map. Ordering is lost.
func (s *Set) Map() map[string]string {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.items))
	for _, item := range s.items {
		out[item.Key] = item.Value
	}
	return out
}

// WriteTo appends ` key="value"` pairs to builder with values HTML escaped.
func (s *Set) WriteTo(builder *strings.Builder) {
	if s == nil || builder == nil {
		return
	}
	for _, item := range s.items {
		builder.WriteByte(' ')
		builder.WriteString(item.Key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(item.Value))
		builder.WriteByte('"')
	}
}

// String renders the attribute list with a leading space, ready to be placed
// after a tag name.
func (s *Set) String() string {
	var builder strings.Builder
	s.WriteTo(&builder)
	return builder.String()
}

// ValidName reports whether name matches [a-zA-Z_:][-a-zA-Z0-9_:.]*.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == ':':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
