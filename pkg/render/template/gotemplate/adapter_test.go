package gotemplate_test

import (
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/form"
	"github.com/goliatone/go-combobox/pkg/helper"
	"github.com/goliatone/go-combobox/pkg/render/template/gotemplate"
	"github.com/goliatone/go-combobox/pkg/testsupport"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": {Data: []byte("{{ name|shout_test }}")},
		"combobox.tpl": {Data: []byte(
			`{{ hw_combobox_tag(field, value, "form", form, "open", open) }}`,
		)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch: %q vs %q", written, result)
	}
}

func TestEngineRenderDetectsInlineContent(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ greeting }}, {{ name }}", struct {
		Greeting string `json:"greeting"`
		Name     string `json:"name"`
	}{Greeting: "Hi", Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hi, Grace" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	shout := func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	}
	if err := engine.RegisterFilter("shout_test", shout); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout_test", shout); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngineHelpersRenderUnescaped(t *testing.T) {
	restore := config.Swap(config.Config{})
	defer restore()

	engine := newEngine(t, gotemplate.WithTemplateFunc(helper.FuncMap()))

	result, err := engine.RenderTemplate("combobox", map[string]any{
		"field": "bar",
		"value": "baz",
		"form":  form.NewBuilder("foo", form.Record{"bar": "foobar"}),
		"open":  true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.MustFind(t, result, "fieldset[data-hw-combobox-expanded-value=true]")
	input := testsupport.MustFind(t, result, "fieldset > input")
	testsupport.AssertAttrs(t, input, map[string]string{
		"name":  "foo[bar]",
		"id":    "foo_bar",
		"value": "foobar",
		"role":  "combobox",
	})
}

func TestEngineAliasesFollowBypassFlag(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(helper.FuncMapFor(config.Config{})))
	result, err := engine.RenderString(`{{ combobox_tag("foo", "bar") }}`, nil)
	if err != nil {
		t.Fatalf("render alias: %v", err)
	}
	testsupport.AssertAttrs(t, testsupport.MustFind(t, result, "input"), map[string]string{"value": "bar"})

	bypassed := newEngine(t, gotemplate.WithTemplateFunc(helper.FuncMapFor(config.Config{BypassConvenienceMethods: true})))
	result, err = bypassed.RenderString(`{{ combobox_tag("foo", "bar") }}`, nil)
	if err != nil {
		t.Fatalf("render bypassed alias: %v", err)
	}
	if strings.TrimSpace(result) != "" {
		t.Fatalf("expected bypassed alias to resolve to nothing, got %q", result)
	}
}

func TestEngineHelperErrorsSurface(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(helper.FuncMapFor(config.Config{})))
	_, err := engine.RenderString(`{{ hw_combobox_tag("foo", nil, "id") }}`, nil)
	if err == nil || !errors.Is(err, helper.ErrInvalidArgs) && !strings.Contains(err.Error(), "invalid arguments") {
		t.Fatalf("expected invalid arguments error, got %v", err)
	}
}

func TestEngineWrapsHTMLFuncs(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"badge": func(label string) htmltemplate.HTML {
			return htmltemplate.HTML("<b>" + htmltemplate.HTMLEscapeString(label) + "</b>")
		},
		"plain": func(label string) string { return "<i>" + label + "</i>" },
	}))

	result, err := engine.RenderString(`{{ badge("x") }}|{{ plain("y") }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "<b>x</b>|&lt;i&gt;y&lt;/i&gt;" {
		t.Fatalf("unexpected escaping: %q", result)
	}
}

func TestEngineCSSVarsFilter(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderString(`{{ vars|cssvars }}`, map[string]any{
		"vars": map[string]string{"--b": "2px", "a": "#fff", "--empty": ""},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "--a: #fff; --b: 2px;" {
		t.Fatalf("unexpected css vars %q", result)
	}
}

func TestNewUpstreamRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.NewUpstream(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestNewUpstreamRendersWithComboboxFiltersAndHooks(t *testing.T) {
	files := fstest.MapFS{
		"style.tpl": {Data: []byte(`style="{{ vars|cssvars }}"`)},
	}
	engine, err := gotemplate.NewUpstream(gotemplatepkg.WithFS(files))
	if err != nil {
		t.Fatalf("new upstream: %v", err)
	}
	engine.RegisterPostHook(func(ctx *gotemplatepkg.HookContext) (string, error) {
		return ctx.Output + "<!-- " + ctx.TemplateName + " -->", nil
	})

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("style", map[string]any{
			"vars": map[string]string{"b": "2px", "--a": "#fff"},
		}, w)
	})
	if result != `style="--a: #fff; --b: 2px;"<!-- style -->` {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch: %q vs %q", written, result)
	}
}
