package asyncoptions

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-combobox/internal/logging"
	"github.com/goliatone/go-combobox/pkg/option"
	"github.com/goliatone/go-combobox/pkg/optionsource"
)

// EmptySearchMode decides what an empty query returns.
type EmptySearchMode string

const (
	// EmptySearchNone returns no options until the user types.
	EmptySearchNone EmptySearchMode = "none"
	// EmptySearchTop returns the first page of options in source order.
	EmptySearchTop EmptySearchMode = "top"
)

const (
	defaultRoutePath    = "/api/combobox/options"
	defaultSearchParam  = "q"
	defaultLimitParam   = "limit"
	defaultPageParam    = "page"
	defaultDefaultLimit = 50
	defaultMaxLimit     = 200
)

// GuardFunc can reject a request. Returning an HTTPError picks the status
// code; any other error yields 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	PageParam       string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	Source optionsource.Source
	Logger logrus.FieldLogger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       defaultRoutePath,
		SearchParam:     defaultSearchParam,
		LimitParam:      defaultLimitParam,
		PageParam:       defaultPageParam,
		DefaultLimit:    defaultDefaultLimit,
		MaxLimit:        defaultMaxLimit,
		EmptySearchMode: EmptySearchTop,
	}
}

// NewOptions applies fns over DefaultOptions and restores defaults for any
// zero values left behind.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}

	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaultDefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaultMaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchTop
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = defaultSearchParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = defaultLimitParam
	}
	if opts.PageParam == "" {
		opts.PageParam = defaultPageParam
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithPageParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithSource(source optionsource.Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Source = source
	}
}

// WithOptions serves a fixed list through optionsource.Static.
func WithOptions(options ...option.Option) OptionFn {
	return WithSource(optionsource.Static(options...))
}

func WithLogger(logger logrus.FieldLogger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
