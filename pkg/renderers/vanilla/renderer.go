package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-combobox/pkg/helper"
	"github.com/goliatone/go-combobox/pkg/listbox"
	"github.com/goliatone/go-combobox/pkg/render"
	rendertemplate "github.com/goliatone/go-combobox/pkg/render/template"
	gotemplate "github.com/goliatone/go-combobox/pkg/render/template/gotemplate"
	"github.com/goliatone/go-combobox/pkg/tag"
)

// StylesheetAsset is the theme asset key looked up for a widget stylesheet.
const StylesheetAsset = "combobox.stylesheet"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        listbox.Sanitizer
}

// WithTemplatesFS layers files over the built-in templates. Partials missing
// from files still resolve to the embedded ones.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir layers a directory on disk over the built-in templates.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the content policy based sanitizer for option
// content.
func WithSanitizer(sanitizer listbox.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = sanitizer
	}
}

// Renderer draws a combobox widget: the root tag plus its listbox.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer listbox.Sanitizer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := []gotemplate.Option{}
		if cfg.templateFS != nil {
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templateFS))
		}
		engineOpts = append(engineOpts,
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithTemplateFunc(helper.FuncMap()),
		)
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, sanitizer: cfg.sanitizer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws widget. The listbox id, selection and expanded state all follow
// the resolved root tag so the markup stays consistent with tag.Render.
func (r *Renderer) Render(_ context.Context, widget render.Widget, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if strings.TrimSpace(widget.Field) == "" {
		return nil, fmt.Errorf("vanilla renderer: widget field is required")
	}

	resolved := tag.Resolve(widget.Field, widget.Tag...)
	selected := ""
	if resolved.HasValue {
		selected = resolved.ValueString()
	}

	sanitizer := r.sanitizer
	if sanitizer == nil {
		sanitizer = listbox.SanitizerFor(opts.Policy())
	}
	items := listbox.Items(resolved.ListboxID, widget.Options, selected, sanitizer)

	partials := partialsFor(opts)
	themeData := themeContext(opts)

	listboxMarkup, err := r.templates.RenderTemplate(partials[render.PartialListbox], map[string]any{
		"listbox": map[string]any{
			"id":    resolved.ListboxID,
			"label": opts.Label,
			"open":  resolved.Open,
		},
		"items": items,
		"theme": themeData,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render listbox: %w", err)
	}

	// Open widgets nest the listbox in the expanded fieldset.
	root := tag.Render(widget.Field, widget.Tag...)
	if resolved.Open {
		root = tag.RenderWith(widget.Field, listboxMarkup, widget.Tag...)
		listboxMarkup = ""
	}

	result, err := r.templates.RenderTemplate(partials[render.PartialWidget], map[string]any{
		"widget": map[string]any{
			"field":   resolved.Field,
			"open":    resolved.Open,
			"tag":     root,
			"listbox": listboxMarkup,
		},
		"theme": themeData,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render widget: %w", err)
	}
	return []byte(result), nil
}

func partialsFor(opts render.RenderOptions) map[string]string {
	partials := render.DefaultThemeFallbacks()
	if opts.Theme == nil {
		return partials
	}
	for key, name := range opts.Theme.Partials {
		if _, known := partials[key]; !known || strings.TrimSpace(name) == "" {
			continue
		}
		partials[key] = name
	}
	return partials
}

func themeContext(opts render.RenderOptions) map[string]any {
	cfg := opts.Theme
	if cfg == nil {
		return map[string]any{}
	}
	data := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
	}
	if len(cfg.CSSVars) > 0 {
		vars := make(map[string]any, len(cfg.CSSVars))
		for key, value := range cfg.CSSVars {
			vars[key] = value
		}
		data["css_vars"] = vars
	}
	if cfg.AssetURL != nil {
		if href := cfg.AssetURL(StylesheetAsset); href != "" {
			data["stylesheet"] = href
		}
	}
	return data
}
