package helper

import (
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/goliatone/go-combobox/pkg/attrs"
	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/form"
	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/tag"
)

// Helper names registered by FuncMap.
const (
	NameComboboxTag                    = "hw_combobox_tag"
	NameComboboxOptions                = "hw_combobox_options"
	NameListboxOptionValue             = "hw_listbox_option_value"
	NameListboxOptionContent           = "hw_listbox_option_content"
	NameListboxOptionFilterableAs      = "hw_listbox_option_filterable_as"
	NameListboxOptionAutocompletableAs = "hw_listbox_option_autocompletable_as"

	AliasComboboxTag     = "combobox_tag"
	AliasComboboxOptions = "combobox_options"
)

// ErrInvalidArgs reports helper arguments that cannot be interpreted.
var ErrInvalidArgs = errors.New("helper: invalid arguments")

// Aliases maps each convenience alias to the helper it names.
func Aliases() map[string]string {
	return map[string]string{
		AliasComboboxTag:     NameComboboxTag,
		AliasComboboxOptions: NameComboboxOptions,
	}
}

// FuncMap returns the helper surface for the active process configuration.
func FuncMap() map[string]any {
	return FuncMapFor(config.Current())
}

// FuncMapFor returns the helper surface for cfg.
func FuncMapFor(cfg config.Config) map[string]any {
	funcs := map[string]any{
		NameComboboxTag:                    ComboboxTag,
		NameComboboxOptions:                ComboboxOptions,
		NameListboxOptionValue:             ListboxOptionValue,
		NameListboxOptionContent:           ListboxOptionContent,
		NameListboxOptionFilterableAs:      ListboxOptionFilterableAs,
		NameListboxOptionAutocompletableAs: ListboxOptionAutocompletableAs,
	}
	if cfg.BypassConvenienceMethods {
		return funcs
	}
	for alias, target := range Aliases() {
		funcs[alias] = funcs[target]
	}
	return funcs
}

// ComboboxTag renders the combobox root tag for field. value is the positional
// value (nil for none). args accepts tag.Option values, a map[string]any of
// options or alternating key/value pairs. Recognised keys are type, id, name,
// form, open and async_src; any other key becomes an extra HTML attribute.
func ComboboxTag(field string, value any, args ...any) (template.HTML, error) {
	opts := []tag.Option{tag.WithValue(value)}
	parsed, err := parseTagArgs(args)
	if err != nil {
		return "", err
	}
	opts = append(opts, parsed...)
	return template.HTML(tag.Render(field, opts...)), nil
}

// ComboboxOptions normalises a sequence of option records.
func ComboboxOptions(raw any) ([]option.Option, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []option.Option:
		return v, nil
	case []option.RawOption:
		return option.Normalize(v), nil
	case []map[string]any:
		return option.FromRecords(v, option.DefaultMapping()), nil
	case []any:
		out := make([]option.Option, 0, len(v))
		for idx, item := range v {
			rawOption, err := toRawOption(item)
			if err != nil {
				return nil, fmt.Errorf("%w: option %d: %v", ErrInvalidArgs, idx, err)
			}
			out = append(out, option.New(rawOption))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported options type %T", ErrInvalidArgs, raw)
	}
}

// ListboxOptionValue returns the option value, falling back to its id.
func ListboxOptionValue(raw any) (any, error) {
	rawOption, err := toRawOption(raw)
	if err != nil {
		return nil, err
	}
	return option.ListboxValue(rawOption), nil
}

// ListboxOptionContent returns the option content, falling back to display.
func ListboxOptionContent(raw any) (string, error) {
	rawOption, err := toRawOption(raw)
	if err != nil {
		return "", err
	}
	return option.ListboxContent(rawOption), nil
}

// ListboxOptionFilterableAs returns the filter text, falling back to display.
func ListboxOptionFilterableAs(raw any) (string, error) {
	rawOption, err := toRawOption(raw)
	if err != nil {
		return "", err
	}
	return option.ListboxFilterableAs(rawOption), nil
}

// ListboxOptionAutocompletableAs returns the autocomplete text, falling back to
// display.
func ListboxOptionAutocompletableAs(raw any) (string, error) {
	rawOption, err := toRawOption(raw)
	if err != nil {
		return "", err
	}
	return option.ListboxAutocompletableAs(rawOption), nil
}

func toRawOption(raw any) (option.RawOption, error) {
	switch v := raw.(type) {
	case option.RawOption:
		return v, nil
	case *option.RawOption:
		if v == nil {
			return option.RawOption{}, nil
		}
		return *v, nil
	case map[string]any:
		return option.FromMap(v), nil
	case nil:
		return option.RawOption{}, nil
	default:
		return option.RawOption{}, fmt.Errorf("%w: unsupported option type %T", ErrInvalidArgs, raw)
	}
}

func parseTagArgs(args []any) ([]tag.Option, error) {
	var opts []tag.Option
	for idx := 0; idx < len(args); idx++ {
		switch v := args[idx].(type) {
		case nil:
			continue
		case tag.Option:
			opts = append(opts, v)
		case []tag.Option:
			opts = append(opts, v...)
		case map[string]any:
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				opt, err := keyedOption(key, v[key])
				if err != nil {
					return nil, err
				}
				opts = append(opts, opt)
			}
		case string:
			if idx+1 >= len(args) {
				return nil, fmt.Errorf("%w: missing value for %q", ErrInvalidArgs, v)
			}
			opt, err := keyedOption(v, args[idx+1])
			if err != nil {
				return nil, err
			}
			opts = append(opts, opt)
			idx++
		default:
			return nil, fmt.Errorf("%w: unsupported argument %T", ErrInvalidArgs, v)
		}
	}
	return opts, nil
}

func keyedOption(key string, value any) (tag.Option, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "type":
		return tag.WithType(option.Stringify(value)), nil
	case "id":
		return tag.WithID(option.Stringify(value)), nil
	case "name":
		return tag.WithName(option.Stringify(value)), nil
	case "value":
		return tag.WithValue(value), nil
	case "form":
		if value == nil {
			return tag.WithForm(nil), nil
		}
		binding, ok := value.(form.Binding)
		if !ok {
			return nil, fmt.Errorf("%w: form must implement form.Binding, got %T", ErrInvalidArgs, value)
		}
		return tag.WithForm(binding), nil
	case "open":
		return tag.WithOpen(truthy(value)), nil
	case "async_src", "asyncsrc":
		return tag.WithAsyncSrc(option.Stringify(value)), nil
	case "":
		return nil, fmt.Errorf("%w: empty option key", ErrInvalidArgs)
	default:
		if !attrs.ValidName(strings.TrimSpace(key)) {
			return nil, fmt.Errorf("%w: invalid attribute name %q", ErrInvalidArgs, key)
		}
		return tag.WithAttr(key, option.Stringify(value)), nil
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		}
		return false
	case int:
		return v != 0
	default:
		return false
	}
}
