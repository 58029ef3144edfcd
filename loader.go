package combobox

import (
	"github.com/goliatone/go-combobox/internal/fetch"
	"github.com/goliatone/go-combobox/pkg/optionsource"
)

// NewLoader constructs an option document loader while keeping the concrete
// type hidden from consumers.
func NewLoader(options ...optionsource.LoaderOption) optionsource.Loader {
	cfg := optionsource.NewLoaderOptions(options...)
	return fetch.New(cfg)
}
