package optionsource_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/internal/fetch"
	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/optionsource"
)

const petstore = `
openapi: 3.0.3
info:
  title: Pets
  version: 1.0.0
paths: {}
components:
  schemas:
    Status:
      type: string
      enum: [available, pending, sold]
      x-enumNames: [Available, Pending]
    Pet:
      type: object
      properties:
        size:
          type: integer
          enum: [1, 2, 3]
        tags:
          type: array
          items:
            type: string
            enum: [cute, fluffy]
        owner:
          type: object
          properties:
            country:
              type: string
              enum: [de, fr]
              x-enumNames: [Germany, France]
        name:
          type: string
`

func TestParseOpenAPIEnumComponentWithLabels(t *testing.T) {
	got, err := optionsource.ParseOpenAPIEnum(context.Background(), []byte(petstore), "Status")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []option.Option{
		{Value: "available", Content: "Available", FilterableAs: "Available", AutocompletableAs: "Available"},
		{Value: "pending", Content: "Pending", FilterableAs: "Pending", AutocompletableAs: "Pending"},
		{Value: "sold", Content: "sold", FilterableAs: "sold", AutocompletableAs: "sold"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOpenAPIEnumProperties(t *testing.T) {
	cases := map[string]struct {
		ref     string
		content []string
	}{
		"integer property": {ref: "Pet.size", content: []string{"1", "2", "3"}},
		"array items":      {ref: "Pet.tags", content: []string{"cute", "fluffy"}},
		"nested property":  {ref: "#/components/schemas/Pet.owner.country", content: []string{"Germany", "France"}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := optionsource.ParseOpenAPIEnum(context.Background(), []byte(petstore), tc.ref)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			content := make([]string, 0, len(got))
			for _, opt := range got {
				content = append(content, opt.Content)
			}
			if diff := cmp.Diff(tc.content, content); diff != "" {
				t.Fatalf("content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOpenAPIEnumErrors(t *testing.T) {
	if _, err := optionsource.ParseOpenAPIEnum(context.Background(), []byte(petstore), "Missing"); !errors.Is(err, optionsource.ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound, got %v", err)
	}
	if _, err := optionsource.ParseOpenAPIEnum(context.Background(), []byte(petstore), "Pet.unknown"); !errors.Is(err, optionsource.ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound for property, got %v", err)
	}
	if _, err := optionsource.ParseOpenAPIEnum(context.Background(), []byte(petstore), "Pet.name"); err == nil {
		t.Fatalf("expected error for schema without enum")
	}
	if _, err := optionsource.ParseOpenAPIEnum(context.Background(), []byte("{not yaml"), "Status"); err == nil {
		t.Fatalf("expected error for invalid document")
	}
}

func TestOpenAPIEnumThroughLoader(t *testing.T) {
	loader := fetch.New(optionsource.NewLoaderOptions(optionsource.WithFileSystem(fstest.MapFS{
		"petstore.yaml": {Data: []byte(petstore)},
	})))

	got, err := optionsource.OpenAPIEnum(loader, optionsource.FSLocation("petstore.yaml"), "Pet.tags").Options(context.Background())
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(got) != 2 || got[0].Value != "cute" {
		t.Fatalf("unexpected options %+v", got)
	}

	static := optionsource.FromOpenAPIEnum([]byte(petstore), "Status")
	if opts, err := static.Options(context.Background()); err != nil || len(opts) != 3 {
		t.Fatalf("expected three options, got %v (%v)", opts, err)
	}
}
