package asyncoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-combobox/pkg/option"
)

// HTTPError is an error carrying the status code the handler should reply
// with. Guards return one to pick a code other than 403.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError is the stock HTTPError. A non-positive Code reports 500.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type optionsResponse struct {
	Data     []option.Option `json:"data"`
	NextPage int             `json:"next_page,omitempty"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

// NewHandler is an alias of Handler.
func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				opts.Logger.WithError(err).WithField("path", r.URL.Path).Debug("asyncoptions: guard rejected request")
				writeGuardError(w, err)
				return
			}
		}

		params := r.URL.Query()
		query := params.Get(opts.SearchParam)
		page := parseInt(params.Get(opts.PageParam))
		limit := parseInt(params.Get(opts.LimitParam))

		var all []option.Option
		if opts.Source != nil {
			loaded, err := opts.Source.Options(r.Context())
			if err != nil {
				opts.Logger.WithError(err).WithField("path", r.URL.Path).Error("asyncoptions: load options")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			all = loaded
		}

		result := Search(all, query, page, limit, opts)
		if result.Options == nil {
			result.Options = []option.Option{}
		}

		opts.Logger.WithFields(logrus.Fields{
			"query":     query,
			"page":      result.Page,
			"results":   len(result.Options),
			"next_page": result.NextPage,
		}).Debug("asyncoptions: search")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(optionsResponse{Data: result.Options, NextPage: result.NextPage})
	})
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
