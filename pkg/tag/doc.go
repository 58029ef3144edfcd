// Package tag builds the root tag of the combobox widget. Attributes resolve
// the control's name, id and value from the field identifier, an optional
// form binding and explicit overrides, then append the fixed accessibility
// attributes that tie the input to its listbox.
//
// Precedence is total: explicit options beat form-derived values, which beat
// identifier-derived ones. The bound form value replaces a positional value
// only when it resolves to something non-nil.
package tag
