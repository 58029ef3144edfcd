package combobox

import (
	"io/fs"

	"github.com/goliatone/go-combobox/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in widget templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
