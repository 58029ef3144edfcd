package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-combobox/components/asyncoptions"
)

const shutdownTimeout = 5 * time.Second

type serveFlags struct {
	addr         string
	basePath     string
	routePath    string
	defaultLimit int
	maxLimit     int
	emptySearch  string
	source       sourceFlags
}

func newServeCommand(a *app) *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an async options endpoint",
		Long: `Serves the options of --options (or an OpenAPI enum) as a searchable,
paginated JSON endpoint. Point a widget at it with --async-src.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, a, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.addr, "addr", ":8080", "Listen address")
	f.StringVar(&flags.basePath, "base-path", "", "Path prefix for the endpoint")
	f.StringVar(&flags.routePath, "route", "", "Endpoint route (default /api/combobox/options)")
	f.IntVar(&flags.defaultLimit, "default-limit", 0, "Page size when the request has none")
	f.IntVar(&flags.maxLimit, "max-limit", 0, "Largest page size a request may ask for")
	f.StringVar(&flags.emptySearch, "empty-search", string(asyncoptions.EmptySearchTop), "Result for an empty query (top, none)")
	f.StringVar(&flags.source.options, "options", "", "Option records file or URL (YAML/JSON)")
	f.StringVar(&flags.source.openapi, "openapi", "", "OpenAPI document file or URL")
	f.StringVar(&flags.source.schema, "schema", "", "Schema (and dotted property) whose enum supplies options")
	f.StringToStringVar(&flags.source.mapping, "mapping", nil, "Record key mapping, e.g. id=code,display=label")
	return cmd
}

// newServeMux builds the mux serving the options endpoint and returns the
// mounted path.
func newServeMux(a *app, flags *serveFlags) (*http.ServeMux, string, error) {
	mode := asyncoptions.EmptySearchMode(flags.emptySearch)
	switch mode {
	case asyncoptions.EmptySearchTop, asyncoptions.EmptySearchNone:
	default:
		return nil, "", fmt.Errorf("unsupported --empty-search %q", flags.emptySearch)
	}

	src, err := flags.source.source(a.loader())
	if err != nil {
		return nil, "", err
	}

	fns := []asyncoptions.OptionFn{
		asyncoptions.WithSource(src),
		asyncoptions.WithLogger(a.logger),
		asyncoptions.WithEmptySearchMode(mode),
	}
	if flags.routePath != "" {
		fns = append(fns, asyncoptions.WithRoutePath(flags.routePath))
	}
	if flags.defaultLimit > 0 {
		fns = append(fns, asyncoptions.WithDefaultLimit(flags.defaultLimit))
	}
	if flags.maxLimit > 0 {
		fns = append(fns, asyncoptions.WithMaxLimit(flags.maxLimit))
	}

	mux := http.NewServeMux()
	path, err := asyncoptions.New(fns...).RegisterRoutes(mux, flags.basePath)
	if err != nil {
		return nil, "", err
	}
	return mux, path, nil
}

func runServe(cmd *cobra.Command, a *app, flags *serveFlags) error {
	mux, path, err := newServeMux(a, flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	server := &http.Server{
		Addr:              flags.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		a.logger.WithFields(logrus.Fields{"addr": flags.addr, "path": path}).Info("serving options")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.logger.Info("server stopped")
		return nil
	})
	return group.Wait()
}
