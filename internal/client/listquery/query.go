// Package listquery implements the shared list-page pattern: a query
// state derived from the route, pagination math over the server's
// lastPage, optimistic row toggles with rollback, and confirmed deletes.
package listquery

import (
	"net/url"
	"sort"
	"strconv"
)

// Query is the current list query: page, limit and free-form filters.
// It is the single source of truth a list page renders from, mirroring
// the route's query string.
type Query struct {
	values map[string]string
}

// NewQuery creates an empty query
func NewQuery() Query {
	return Query{values: make(map[string]string)}
}

// ParseQuery derives a query from URL values, keeping the first value
// of each key. Empty values are dropped rather than kept as "".
func ParseQuery(values url.Values) Query {
	q := NewQuery()
	for key, vals := range values {
		if len(vals) > 0 && vals[0] != "" {
			q.values[key] = vals[0]
		}
	}
	return q
}

// Page returns the 1-based page, defaulting to 1
func (q Query) Page() int {
	if raw, ok := q.values["page"]; ok {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			return page
		}
	}
	return 1
}

// Limit returns the page size, or fallback when unset. Page sizes are
// resource-specific and supplied by the caller's configuration.
func (q Query) Limit(fallback int) int {
	if raw, ok := q.values["limit"]; ok {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return fallback
}

// Get returns a filter value, "" when absent
func (q Query) Get(key string) string {
	return q.values[key]
}

// Has reports whether key is present
func (q Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Merge returns a new query where each key in partial replaces the
// same-named key, omitted keys are preserved, and an empty value
// removes the key instead of serializing it. The receiver is unchanged.
func (q Query) Merge(partial map[string]string) Query {
	merged := NewQuery()
	for key, value := range q.values {
		merged.values[key] = value
	}
	for key, value := range partial {
		if value == "" {
			delete(merged.values, key)
		} else {
			merged.values[key] = value
		}
	}
	return merged
}

// Values renders the query as URL values
func (q Query) Values() url.Values {
	out := url.Values{}
	for key, value := range q.values {
		out.Set(key, value)
	}
	return out
}

// Keys returns the present keys in sorted order, for stable encoding
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for key := range q.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Encode renders the query string form
func (q Query) Encode() string {
	return q.Values().Encode()
}

// PaginationView is the derived pagination state a list page renders.
// It is computed from the current page and the server-reported last
// page, never fetched separately.
type PaginationView struct {
	CurrentPage     int
	NextPage        int // 0 when there is none
	PreviousPage    int // 0 when there is none
	HasNextPage     bool
	HasPreviousPage bool
	LastPage        int
}

// Paginate computes the view for a current page against lastPage
func Paginate(currentPage, lastPage int) PaginationView {
	if currentPage < 1 {
		currentPage = 1
	}
	if lastPage < 1 {
		lastPage = 1
	}
	view := PaginationView{
		CurrentPage: currentPage,
		LastPage:    lastPage,
	}
	if currentPage > 1 {
		view.PreviousPage = currentPage - 1
		view.HasPreviousPage = true
	}
	if currentPage < lastPage {
		view.NextPage = currentPage + 1
		view.HasNextPage = true
	}
	return view
}
