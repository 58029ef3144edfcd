package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-combobox/internal/prompt"
	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/form"
	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/render"
	"github.com/goliatone/go-combobox/pkg/renderers/vanilla"
	"github.com/goliatone/go-combobox/pkg/tag"
)

type renderFlags struct {
	field       string
	value       string
	id          string
	name        string
	inputType   string
	formName    string
	bind        map[string]string
	open        bool
	asyncSrc    string
	label       string
	policy      string
	templates   string
	themePath   string
	variant     string
	output      string
	tagOnly     bool
	interactive bool
	source      sourceFlags
}

func newRenderCommand(a *app) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print combobox markup",
		Long: `Prints the markup of a combobox widget: the root tag followed by its
listbox. With --tag-only just the root tag is printed.

With --interactive the field and the initial value are asked in the terminal;
the value is picked among the loaded options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.field, "field", "", "Field identifier, e.g. state_id")
	f.StringVar(&flags.value, "value", "", "Initial value")
	f.StringVar(&flags.id, "id", "", "Explicit element id")
	f.StringVar(&flags.name, "name", "", "Explicit input name")
	f.StringVar(&flags.inputType, "type", "", "Input type (default text)")
	f.StringVar(&flags.formName, "form", "", "Form object name scoping the field")
	f.StringToStringVar(&flags.bind, "bind", nil, "Bound form values, e.g. state_id=AK")
	f.BoolVar(&flags.open, "open", false, "Render the widget expanded")
	f.StringVar(&flags.asyncSrc, "async-src", "", "URL the widget queries for options")
	f.StringVar(&flags.label, "label", "", "Listbox aria-label")
	f.StringVar(&flags.policy, "policy", "", "Option content policy (ugc, strict, trusted)")
	f.StringVar(&flags.templates, "templates", "", "Directory layered over the built-in templates")
	f.StringVar(&flags.themePath, "theme", "", "Theme manifest (YAML)")
	f.StringVar(&flags.variant, "variant", "", "Theme variant")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (stdout if empty)")
	f.BoolVar(&flags.tagOnly, "tag-only", false, "Print only the root tag")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "Ask for the field and value")
	f.StringVar(&flags.source.options, "options", "", "Option records file or URL (YAML/JSON)")
	f.StringVar(&flags.source.openapi, "openapi", "", "OpenAPI document file or URL")
	f.StringVar(&flags.source.schema, "schema", "", "Schema (and dotted property) whose enum supplies options")
	f.StringToStringVar(&flags.source.mapping, "mapping", nil, "Record key mapping, e.g. id=code,display=label")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, flags *renderFlags) error {
	ctx := cmd.Context()
	log := a.logger.WithField("command", "render")

	options, err := flags.source.load(ctx, a.loader())
	if err != nil {
		return err
	}
	log.WithField("options", len(options)).Debug("options loaded")

	field := strings.TrimSpace(flags.field)
	value, hasValue := any(flags.value), cmd.Flags().Changed("value")
	open := flags.open

	if flags.interactive {
		field, err = prompt.AskField(ctx, a.prompter, field)
		if err != nil {
			return err
		}
		chosen, ok, err := prompt.ChooseOption(ctx, a.prompter, "Initial value", options, flags.value)
		if err != nil {
			return err
		}
		if ok {
			value, hasValue = chosen.Value, true
		}
		open, err = a.prompter.Confirm(ctx, prompt.ConfirmConfig{Message: "Render expanded?", Default: open})
		if err != nil {
			return err
		}
	}
	if field == "" {
		return fmt.Errorf("--field is required")
	}

	if flags.policy != "" {
		if err := (config.Config{ContentPolicy: config.ContentPolicy(flags.policy)}).Validate(); err != nil {
			return err
		}
	}

	tagOptions := flags.tagOptions(value, hasValue, open)
	var out []byte
	if flags.tagOnly {
		out = []byte(tag.Render(field, tagOptions...))
	} else {
		out, err = renderWidget(cmd, flags, field, tagOptions, options)
		if err != nil {
			return err
		}
	}
	return writeOutput(cmd, a, flags.output, out)
}

func (f *renderFlags) tagOptions(value any, hasValue, open bool) []tag.Option {
	var opts []tag.Option
	if f.inputType != "" {
		opts = append(opts, tag.WithType(f.inputType))
	}
	if f.id != "" {
		opts = append(opts, tag.WithID(f.id))
	}
	if f.name != "" {
		opts = append(opts, tag.WithName(f.name))
	}
	if hasValue {
		opts = append(opts, tag.WithValue(value))
	}
	if f.formName != "" || len(f.bind) > 0 {
		record := make(form.Record, len(f.bind))
		for key, bound := range f.bind {
			record[key] = bound
		}
		opts = append(opts, tag.WithForm(form.NewBuilder(f.formName, record)))
	}
	if open {
		opts = append(opts, tag.WithOpen(true))
	}
	if f.asyncSrc != "" {
		opts = append(opts, tag.WithAsyncSrc(f.asyncSrc))
	}
	return opts
}

func renderWidget(cmd *cobra.Command, flags *renderFlags, field string, tagOptions []tag.Option, options []option.Option) ([]byte, error) {
	themeCfg, err := loadTheme(flags.themePath, flags.variant)
	if err != nil {
		return nil, err
	}
	renderer, err := vanilla.New(vanilla.WithTemplatesDir(flags.templates))
	if err != nil {
		return nil, err
	}
	return renderer.Render(cmd.Context(), render.Widget{
		Field:   field,
		Tag:     tagOptions,
		Options: options,
	}, render.RenderOptions{
		Theme:         themeCfg,
		ContentPolicy: config.ContentPolicy(flags.policy),
		Label:         flags.label,
	})
}

func writeOutput(cmd *cobra.Command, a *app, path string, out []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.WithField("path", path).Info("markup written")
	return nil
}
