package domain

import "strings"

// DefaultPerPage is the fixed page size for list endpoints.
const DefaultPerPage = 20

// Record is the polymorphic interface for items displayed in list screens.
// Domain entities implement it directly so the UI layer stays generic.
type Record interface {
	// GetID returns the server-assigned identifier
	GetID() int64

	// GetTitle returns the primary display line
	GetTitle() string

	// GetDescription returns the secondary display line
	GetDescription() string

	// GetStatus returns the categorical state used for badges ("" if none)
	GetStatus() string
}

// ListQuery carries the filter state of one list fetch: free-text search,
// categorical filters, and the page cursor.
type ListQuery struct {
	Search  string
	Filters map[string]string
	Page    int
	PerPage int
}

// NewListQuery returns a query for page 1 with the default page size.
func NewListQuery() ListQuery {
	return ListQuery{Filters: map[string]string{}, Page: 1, PerPage: DefaultPerPage}
}

// Clone returns an independent copy of the query.
func (q ListQuery) Clone() ListQuery {
	out := q
	out.Filters = make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		out.Filters[k] = v
	}
	return out
}

// NormalizedSearch returns the trimmed search string; empty means "omit".
func (q ListQuery) NormalizedSearch() string {
	return strings.TrimSpace(q.Search)
}

// Pagination is the page cursor metadata returned by the server.
type Pagination struct {
	CurrentPage int
	LastPage    int
	Total       int
}

// HasMore reports whether a further page exists.
func (p Pagination) HasMore() bool {
	return p.CurrentPage < p.LastPage
}

// Page is one page of a list response.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
