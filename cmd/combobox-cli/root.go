package main

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	combobox "github.com/goliatone/go-combobox"
	"github.com/goliatone/go-combobox/internal/logging"
	"github.com/goliatone/go-combobox/internal/prompt"
	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/optionsource"
)

const defaultFetchTimeout = 10 * time.Second

// app holds the collaborators shared by every command. Tests swap the
// prompter and loader.
type app struct {
	logLevel   string
	logFormat  string
	configPath string

	logger    *logrus.Logger
	prompter  prompt.Driver
	newLoader func() optionsource.Loader
}

func newApp() *app {
	return &app{
		logger: logging.Discard(),
		newLoader: func() optionsource.Loader {
			return combobox.NewLoader(optionsource.WithHTTPFallback(defaultFetchTimeout))
		},
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "combobox-cli",
		Short: "Render and serve accessible combobox widgets",
		Long: `combobox-cli renders combobox markup from the command line and serves
async option endpoints for widgets that load their listbox remotely.

Options come from YAML/JSON record files, URLs, or the enum of an OpenAPI
schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.logLevel, a.logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger

			if path := strings.TrimSpace(a.configPath); path != "" {
				cfg, err := config.LoadFile(path)
				if err != nil {
					return err
				}
				config.Set(cfg)
				a.logger.WithField("path", path).Debug("configuration loaded")
			}
			if a.prompter == nil {
				a.prompter = prompt.NewSurveyDriver(cmd.OutOrStdout())
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", logging.FormatText, "Log format (text, json)")
	flags.StringVar(&a.configPath, "config", "", "YAML, JSON or TOML configuration file")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newRenderCommand(a))
	root.AddCommand(newServeCommand(a))
	return root
}

func (a *app) loader() optionsource.Loader {
	if a.newLoader == nil {
		return combobox.NewLoader()
	}
	return a.newLoader()
}
