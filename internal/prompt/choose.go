package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-combobox/pkg/option"
	"golang.org/x/text/cases"
)

// NoneLabel is the first entry of ChooseOption and leaves the value unset.
const NoneLabel = "(none)"

// AskField asks for a non-empty field identifier.
func AskField(ctx context.Context, driver Driver, defaultField string) (string, error) {
	field, err := driver.Input(ctx, InputConfig{
		Message: "Field",
		Default: defaultField,
		Help:    "Attribute name, e.g. state_id",
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("field is required")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(field), nil
}

// ChooseOption lets the user pick the initial value among options. Typed
// input filters on FilterableAs. The boolean result is false when options is
// empty or the user picked NoneLabel.
func ChooseOption(ctx context.Context, driver Driver, message string, options []option.Option, current string) (option.Option, bool, error) {
	if len(options) == 0 {
		return option.Option{}, false, driver.Info(ctx, "no options loaded")
	}

	labels := make([]string, 0, len(options)+1)
	labels = append(labels, NoneLabel)
	defaultIndex := 0
	for i, opt := range options {
		labels = append(labels, Label(opt))
		if current != "" && defaultIndex == 0 && opt.ValueString() == current {
			defaultIndex = i + 1
		}
	}

	fold := cases.Fold()
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: defaultIndex,
		Filter: func(input string, index int) bool {
			if index == 0 || input == "" {
				return true
			}
			return strings.Contains(fold.String(options[index-1].FilterableAs), fold.String(input))
		},
	})
	if err != nil {
		return option.Option{}, false, err
	}
	if idx <= 0 || idx > len(options) {
		return option.Option{}, false, nil
	}
	return options[idx-1], true, nil
}

// Label picks the plain-text label shown for opt in a terminal.
func Label(opt option.Option) string {
	switch {
	case opt.AutocompletableAs != "":
		return opt.AutocompletableAs
	case opt.FilterableAs != "":
		return opt.FilterableAs
	default:
		return opt.ValueString()
	}
}
