// Package optionsource produces combobox options from static lists, YAML/JSON
// record files and OpenAPI enum schemas.
//
// Documents are fetched through a Loader from a Location (a file path, an
// fs.FS entry or a URL). The loader implementation lives in internal/fetch and
// is constructed with combobox.NewLoader.
package optionsource
