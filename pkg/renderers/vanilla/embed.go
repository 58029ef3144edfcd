package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in widget templates. Paths are rooted at
// templates/, matching render.DefaultThemeFallbacks.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
