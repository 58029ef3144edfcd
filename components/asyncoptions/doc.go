// Package asyncoptions serves combobox options over HTTP for widgets rendered
// with an async source (tag.WithAsyncSrc).
//
// The handler answers GET and HEAD requests with {"data": [...], "next_page": n}.
// The q, page and limit query parameters filter and paginate the options of an
// optionsource.Source. Matching is case-folded against each option's
// FilterableAs text, and prefix matches come first.
package asyncoptions
