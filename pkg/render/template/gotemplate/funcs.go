package gotemplate

import (
	"fmt"
	htmltemplate "html/template"
	"reflect"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
)

var (
	htmlType     = reflect.TypeOf(htmltemplate.HTML(""))
	valuePtrType = reflect.TypeOf((*pongo2.Value)(nil))
)

// safeFunc wraps functions whose first result is html/template.HTML so pongo2
// receives a safe value and skips autoescaping. Other functions are returned
// untouched.
func safeFunc(fn any) any {
	rv := reflect.ValueOf(fn)
	t := rv.Type()
	if t.NumOut() == 0 || t.NumOut() > 2 || t.Out(0) != htmlType {
		return fn
	}

	in := make([]reflect.Type, t.NumIn())
	for i := range in {
		in[i] = t.In(i)
	}
	out := []reflect.Type{valuePtrType}
	if t.NumOut() == 2 {
		out = append(out, t.Out(1))
	}

	wrapped := reflect.MakeFunc(reflect.FuncOf(in, out, t.IsVariadic()), func(args []reflect.Value) []reflect.Value {
		var results []reflect.Value
		if t.IsVariadic() {
			results = rv.CallSlice(args)
		} else {
			results = rv.Call(args)
		}
		results[0] = reflect.ValueOf(pongo2.AsSafeValue(results[0].String()))
		return results
	})
	return wrapped.Interface()
}

// asValue keeps html/template.HTML results safe when they come back from a
// filter registered through RegisterFilter.
func asValue(result any) *pongo2.Value {
	if markup, ok := result.(htmltemplate.HTML); ok {
		return pongo2.AsSafeValue(string(markup))
	}
	return pongo2.AsValue(result)
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("cssvars") {
		_ = pongo2.RegisterFilter("cssvars", filterCSSVars)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterCSSVars renders a map of custom properties as an inline style value,
// sorted by name: {"--combobox-accent": "#333"} -> "--combobox-accent: #333;".
func filterCSSVars(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	vars := map[string]string{}
	switch raw := in.Interface().(type) {
	case map[string]string:
		for key, value := range raw {
			vars[key] = value
		}
	case map[string]any:
		for key, value := range raw {
			if value == nil {
				continue
			}
			vars[key] = fmt.Sprint(value)
		}
	default:
		return pongo2.AsValue(""), nil
	}

	named := make(map[string]string, len(vars))
	for key, value := range vars {
		name := strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		named[name] = value
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s;", name, named[name]))
	}
	return pongo2.AsValue(strings.Join(parts, " ")), nil
}
