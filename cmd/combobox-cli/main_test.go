package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-combobox/internal/logging"
	"github.com/goliatone/go-combobox/internal/prompt"
	"github.com/goliatone/go-combobox/pkg/config"
)

const statesYAML = `
- id: AL
  display: Alabama
  content: <b>Alabama</b>
- id: AK
  display: Alaska
`

const statusOpenAPI = `
openapi: 3.0.3
info:
  title: Accounts
  version: 1.0.0
paths: {}
components:
  schemas:
    Status:
      type: string
      enum: [active, archived]
      x-enumNames: [Active, Archived]
`

type stubPrompter struct {
	inputs    []string
	selectIdx []int
	confirm   []bool
}

func (s *stubPrompter) Input(context.Context, prompt.InputConfig) (string, error) {
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[0]
	s.inputs = s.inputs[1:]
	return val, nil
}

func (s *stubPrompter) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	if len(s.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[0]
	s.confirm = s.confirm[1:]
	return val, nil
}

func (s *stubPrompter) Select(context.Context, prompt.SelectConfig) (int, error) {
	if len(s.selectIdx) == 0 {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[0]
	s.selectIdx = s.selectIdx[1:]
	return val, nil
}

func (s *stubPrompter) Info(context.Context, string) error { return nil }

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	restore := config.Swap(config.Current())
	t.Cleanup(restore)

	root := newRootCommand(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testApp(prompter prompt.Driver) *app {
	a := newApp()
	a.prompter = prompter
	return a
}

func TestRenderWidgetFromOptionsFile(t *testing.T) {
	options := writeFixture(t, "states.yaml", statesYAML)

	out, err := execute(t, testApp(nil), "render",
		"--field", "state", "--form", "user", "--value", "AK",
		"--options", options, "--label", "States")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`name="user[state]"`,
		`id="user_state"`,
		`value="AK"`,
		`aria-label="States"`,
		`id="user_state-listbox-option-1"`,
		`<b>Alabama</b>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
	if strings.Count(out, `aria-selected="true"`) != 1 {
		t.Fatalf("expected exactly one selected option:\n%s", out)
	}
}

func TestRenderTagOnlyOpen(t *testing.T) {
	out, err := execute(t, testApp(nil), "render", "--field", "foo", "--open", "--tag-only")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<fieldset") || !strings.Contains(out, `data-hw-combobox-expanded-value="true"`) {
		t.Fatalf("expected open fieldset, got %s", out)
	}
	if strings.Contains(out, "<ul") {
		t.Fatalf("expected no listbox with --tag-only, got %s", out)
	}
}

func TestRenderBoundValueWins(t *testing.T) {
	out, err := execute(t, testApp(nil), "render", "--field", "state", "--form", "user",
		"--bind", "state=AL", "--value", "AK", "--tag-only")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `value="AL"`) {
		t.Fatalf("expected bound value, got %s", out)
	}
}

func TestRenderRequiresField(t *testing.T) {
	_, err := execute(t, testApp(nil), "render", "--tag-only")
	if err == nil || !strings.Contains(err.Error(), "--field") {
		t.Fatalf("expected missing field error, got %v", err)
	}
}

func TestRenderOpenAPIEnum(t *testing.T) {
	document := writeFixture(t, "openapi.yaml", statusOpenAPI)

	out, err := execute(t, testApp(nil), "render", "--field", "status", "--openapi", document, "--schema", "Status")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `data-value="archived"`) || !strings.Contains(out, ">Archived</li>") {
		t.Fatalf("expected enum options, got %s", out)
	}
}

func TestRenderOpenAPIRequiresSchema(t *testing.T) {
	document := writeFixture(t, "openapi.yaml", statusOpenAPI)
	if _, err := execute(t, testApp(nil), "render", "--field", "status", "--openapi", document); err == nil {
		t.Fatalf("expected error without --schema")
	}
}

func TestRenderInteractive(t *testing.T) {
	options := writeFixture(t, "states.yaml", statesYAML)
	prompter := &stubPrompter{
		inputs:    []string{"state"},
		selectIdx: []int{2},
		confirm:   []bool{true},
	}

	out, err := execute(t, testApp(prompter), "render", "--interactive", "--options", options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`name="state"`, `value="AK"`, `data-hw-combobox-expanded-value="true"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestRenderInteractiveAbort(t *testing.T) {
	_, err := execute(t, testApp(&stubPrompter{}), "render", "--interactive")
	if err == nil {
		t.Fatalf("expected error when prompter has nothing scripted")
	}
}

func TestRenderWithThemeManifest(t *testing.T) {
	manifest := writeFixture(t, "theme.yaml", `
name: acme
version: 1.0.0
tokens:
  combobox-accent: "#123456"
variants:
  dark:
    tokens:
      combobox-accent: "#654321"
`)

	out, err := execute(t, testApp(nil), "render", "--field", "state", "--theme", manifest, "--variant", "dark")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "--combobox-accent: #654321") {
		t.Fatalf("expected variant css var, got %s", out)
	}
	if !strings.Contains(out, `data-hw-combobox-theme="acme"`) {
		t.Fatalf("expected theme marker, got %s", out)
	}
}

func TestRenderUnknownThemeVariant(t *testing.T) {
	manifest := writeFixture(t, "theme.yaml", "name: acme\nversion: 1.0.0\n")
	if _, err := execute(t, testApp(nil), "render", "--field", "state", "--theme", manifest, "--variant", "dark"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestRenderConfigStrictPolicy(t *testing.T) {
	options := writeFixture(t, "states.yaml", statesYAML)
	cfg := writeFixture(t, "combobox.yaml", "content_policy: strict\n")

	out, err := execute(t, testApp(nil), "--config", cfg, "render", "--field", "state", "--options", options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<b>") {
		t.Fatalf("expected markup stripped under strict policy, got %s", out)
	}
}

func TestRenderWritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "widget.html")
	out, err := execute(t, testApp(nil), "render", "--field", "foo", "--tag-only", "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("expected nothing on stdout, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `name="foo"`) {
		t.Fatalf("unexpected file contents: %s", data)
	}
}

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	if _, err := execute(t, testApp(nil), "--log-format", "xml", "render", "--field", "foo"); err == nil {
		t.Fatalf("expected log format error")
	}
}

func TestServeMuxSearchesOptions(t *testing.T) {
	options := writeFixture(t, "states.yaml", statesYAML)
	a := testApp(nil)
	a.logger = logging.Discard()

	mux, path, err := newServeMux(a, &serveFlags{
		basePath:    "/widgets",
		emptySearch: "top",
		source:      sourceFlags{options: options},
	})
	if err != nil {
		t.Fatalf("newServeMux: %v", err)
	}
	if path != "/widgets/api/combobox/options" {
		t.Fatalf("unexpected mount path %q", path)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path+"?q=alas", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data []struct {
			Value   any    `json:"value"`
			Content string `json:"content"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "AK" {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestServeMuxValidation(t *testing.T) {
	a := testApp(nil)
	if _, _, err := newServeMux(a, &serveFlags{emptySearch: "top"}); !errors.Is(err, errNoSource) {
		t.Fatalf("expected errNoSource, got %v", err)
	}
	if _, _, err := newServeMux(a, &serveFlags{emptySearch: "all", source: sourceFlags{options: "x.yaml"}}); err == nil {
		t.Fatalf("expected empty-search validation error")
	}
}

func TestParseMappingRejectsUnknownKey(t *testing.T) {
	if _, err := parseMapping(map[string]string{"label": "name"}); err == nil {
		t.Fatalf("expected unknown key error")
	}
	mapping, err := parseMapping(map[string]string{"id": "code", "display": "label"})
	if err != nil {
		t.Fatalf("parseMapping: %v", err)
	}
	if mapping.ID != "code" || mapping.Display != "label" {
		t.Fatalf("unexpected mapping %+v", mapping)
	}
}
