package asyncoptions

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/goliatone/go-combobox/pkg/option"
)

// Page is one slice of search results. NextPage is zero on the last page.
type Page struct {
	Options  []option.Option
	Page     int
	NextPage int
}

// Search filters options by query and returns the requested 1-based page.
// Matches keep source order, except that options whose filter text starts with
// the query come before the rest.
func Search(options []option.Option, query string, page, limit int, opts Options) Page {
	limit = clampLimit(limit, opts)
	if page <= 0 {
		page = 1
	}
	result := Page{Page: page}
	if limit == 0 {
		return result
	}

	query = strings.TrimSpace(query)
	var matches []option.Option
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return result
		}
		matches = options
	} else {
		matches = filter(options, query)
	}

	if page-1 >= (len(matches)+limit-1)/limit {
		return result
	}
	offset := (page - 1) * limit
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	result.Options = append([]option.Option(nil), matches[offset:end]...)
	if end < len(matches) {
		result.NextPage = page + 1
	}
	return result
}

func filter(options []option.Option, query string) []option.Option {
	// cases.Caser is not safe for concurrent use.
	folder := cases.Fold()
	q := folder.String(query)

	matches := make([]matchedOption, 0, 32)
	for _, opt := range options {
		text := folder.String(opt.FilterableAs)
		if !strings.Contains(text, q) {
			continue
		}
		matches = append(matches, matchedOption{
			option:   opt,
			isPrefix: strings.HasPrefix(text, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	out := make([]option.Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedOption struct {
	option   option.Option
	isPrefix bool
}
