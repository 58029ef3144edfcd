package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Partial keys a theme can override through its manifest templates.
const (
	PartialWidget  = "combobox.widget"
	PartialListbox = "combobox.listbox"
)

// DefaultThemeFallbacks maps partial keys to the built-in template names.
func DefaultThemeFallbacks() map[string]string {
	return map[string]string{
		PartialWidget:  "templates/combobox.tpl",
		PartialListbox: "templates/listbox.tpl",
	}
}

// ResolveTheme selects name/variant through selector and flattens the result
// into a renderer config. A nil selector yields a nil config.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	return RendererConfigFor(selection, fallbacks), nil
}

// RendererConfigFor merges fallbacks, manifest and variant (in that order of
// increasing precedence) into a renderer config. Tokens are mirrored as CSS
// custom properties prefixed with "--".
func RendererConfigFor(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string),
		Tokens:   make(map[string]string),
		CSSVars:  make(map[string]string),
	}
	mergeStrings(cfg.Partials, fallbacks)

	var (
		prefix string
		files  = make(map[string]string)
	)

	if manifest := selection.Manifest; manifest != nil {
		if cfg.Theme == "" {
			cfg.Theme = manifest.Name
		}
		mergeStrings(cfg.Partials, manifest.Templates)
		mergeStrings(cfg.Tokens, manifest.Tokens)
		prefix = manifest.Assets.Prefix
		mergeStrings(files, manifest.Assets.Files)

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			mergeStrings(cfg.Partials, variant.Templates)
			mergeStrings(cfg.Tokens, variant.Tokens)
			if strings.TrimSpace(variant.Assets.Prefix) != "" {
				prefix = variant.Assets.Prefix
			}
			mergeStrings(files, variant.Assets.Files)
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || strings.TrimSpace(file) == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

func mergeStrings(dst, src map[string]string) {
	for key, value := range src {
		if strings.TrimSpace(key) == "" {
			continue
		}
		dst[key] = value
	}
}
