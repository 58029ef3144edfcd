// Package listbox prepares combobox options for rendering: each option gets a
// stable element id, its selection state and sanitised content.
package listbox

import (
	"strconv"

	"github.com/goliatone/go-combobox/pkg/option"
)

// Item is a render-ready listbox entry.
type Item struct {
	ID                string `json:"id"`
	Value             string `json:"value"`
	Content           string `json:"content"`
	FilterableAs      string `json:"filterable_as"`
	AutocompletableAs string `json:"autocompletable_as"`
	Selected          bool   `json:"selected"`
}

// OptionID returns the element id of the option at index.
func OptionID(listboxID string, index int) string {
	return listboxID + "-option-" + strconv.Itoa(index)
}

// Items converts options into items for listboxID. The option whose value
// matches selected is marked selected. A nil sanitizer leaves content as is.
func Items(listboxID string, options []option.Option, selected string, sanitizer Sanitizer) []Item {
	if len(options) == 0 {
		return nil
	}
	out := make([]Item, 0, len(options))
	matched := false
	for idx, opt := range options {
		value := opt.ValueString()
		content := opt.Content
		if sanitizer != nil {
			content = sanitizer.Sanitize(content)
		}
		item := Item{
			ID:                OptionID(listboxID, idx),
			Value:             value,
			Content:           content,
			FilterableAs:      opt.FilterableAs,
			AutocompletableAs: opt.AutocompletableAs,
		}
		if !matched && selected != "" && value == selected {
			item.Selected = true
			matched = true
		}
		out = append(out, item)
	}
	return out
}
