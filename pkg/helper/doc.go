// Package helper exposes the combobox view helpers as a template function
// map. Fully-qualified names (hw_combobox_tag, hw_combobox_options and the
// hw_listbox_option_* accessors) are always registered. The short aliases
// combobox_tag and combobox_options point at the very same functions and are
// left out when config.BypassConvenienceMethods is set, so host applications
// with their own helpers of those names keep them.
package helper
