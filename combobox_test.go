package combobox_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	combobox "github.com/goliatone/go-combobox"
	"github.com/goliatone/go-combobox/pkg/form"
	"github.com/goliatone/go-combobox/pkg/optionsource"
	"github.com/goliatone/go-combobox/pkg/tag"
)

func TestTagScopedToFormBuilder(t *testing.T) {
	builder := combobox.NewFormBuilder("foo", nil)
	got := string(combobox.Tag("bar", tag.WithForm(builder)))

	for _, want := range []string{`name="foo[bar]"`, `id="foo_bar"`, `aria-controls="foo_bar-listbox"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %s", want, got)
		}
	}
}

func TestAttributesMatchTag(t *testing.T) {
	set := combobox.Attributes("foo")
	if value, ok := set.Get("name"); !ok || value != "foo" {
		t.Fatalf("expected name=foo, got %q (ok=%v)", value, ok)
	}
}

func TestOptionsNormalises(t *testing.T) {
	got := combobox.Options([]combobox.RawOption{{ID: 1, Value: "foo", Display: "Foo"}, {ID: 2, Display: "Bar"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
	if got[0].Value != "foo" || got[1].Value != 2 {
		t.Fatalf("unexpected values: %+v", got)
	}
}

func TestFuncMapExposesHelpers(t *testing.T) {
	funcs := combobox.FuncMap()
	if _, ok := funcs["hw_combobox_tag"]; !ok {
		t.Fatalf("expected hw_combobox_tag in func map")
	}
}

func TestRenderWidget(t *testing.T) {
	widget := combobox.Widget{
		Field:   "state",
		Tag:     []tag.Option{tag.WithValue("AK"), tag.WithForm(form.NewBuilder("user", nil))},
		Options: combobox.Options([]combobox.RawOption{{ID: "AL", Display: "Alabama"}, {ID: "AK", Display: "Alaska"}}),
	}

	out, err := combobox.Render(context.Background(), widget, combobox.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `id="user_state-listbox"`) {
		t.Fatalf("expected listbox id in output: %s", html)
	}
	if !strings.Contains(html, `aria-selected="true"`) {
		t.Fatalf("expected a selected option: %s", html)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(combobox.EmbeddedTemplates(), "templates/combobox.tpl"); err != nil {
		t.Fatalf("expected embedded combobox template: %v", err)
	}
}

func TestNewLoaderReadsFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "states.yaml")
	if err := os.WriteFile(path, []byte("- id: AL\n  display: Alabama\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := combobox.NewLoader()
	doc, err := loader.Load(context.Background(), optionsource.FileLocation(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(string(doc.Raw()), "Alabama") {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}
