package testsupport

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// MustParseHTML parses markup into a goquery document.
func MustParseHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// MustFind returns the first element matching selector, failing the test when
// nothing matches.
func MustFind(t *testing.T, markup, selector string) *goquery.Selection {
	t.Helper()

	sel := MustParseHTML(t, markup).Find(selector).First()
	if sel.Length() == 0 {
		t.Fatalf("expected %q to match in:\n%s", selector, markup)
	}
	return sel
}

// MustFindAll returns every element matching selector, failing the test when
// nothing matches.
func MustFindAll(t *testing.T, markup, selector string) *goquery.Selection {
	t.Helper()

	sel := MustParseHTML(t, markup).Find(selector)
	if sel.Length() == 0 {
		t.Fatalf("expected %q to match in:\n%s", selector, markup)
	}
	return sel
}

// AttrKeys returns the attribute names of the first node in sel, in source
// order.
func AttrKeys(sel *goquery.Selection) []string {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	node := sel.Nodes[0]
	keys := make([]string, 0, len(node.Attr))
	for _, attr := range node.Attr {
		keys = append(keys, attr.Key)
	}
	return keys
}

// AssertAttrs fails unless sel carries every expected attribute value.
func AssertAttrs(t *testing.T, sel *goquery.Selection, want map[string]string) {
	t.Helper()

	for key, value := range want {
		got, ok := sel.Attr(key)
		if !ok {
			t.Fatalf("expected attribute %q to be present, attrs: %v", key, AttrKeys(sel))
		}
		if got != value {
			t.Fatalf("attribute %q = %q, want %q", key, got, value)
		}
	}
}
