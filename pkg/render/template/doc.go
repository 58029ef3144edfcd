// Package template defines the template engine seam the combobox renderers
// depend on. The gotemplate subpackage provides the pongo2 backed engine.
package template
