package fetch

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-combobox/pkg/optionsource"
)

// Loader implements optionsource.Loader with file, fs.FS and HTTP strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ optionsource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options optionsource.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the document at loc.
func (l *Loader) Load(ctx context.Context, loc optionsource.Location) (optionsource.Document, error) {
	if loc == nil {
		return optionsource.Document{}, errors.New("fetch: location is nil")
	}

	var (
		data []byte
		err  error
	)

	switch loc.Kind() {
	case optionsource.LocationKindFile:
		data, err = loadFile(ctx, loc.Location())
	case optionsource.LocationKindFS:
		data, err = loadFromFS(ctx, l.fs, loc.Location())
	case optionsource.LocationKindURL:
		if !l.allowHTTP {
			return optionsource.Document{}, errors.New("fetch: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, loc.Location(), l.timeout)
	default:
		err = errors.New("fetch: unsupported location kind")
	}
	if err != nil {
		return optionsource.Document{}, err
	}

	return optionsource.NewDocument(loc, data)
}
