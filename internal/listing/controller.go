// Package listing implements the paginated list data controller shared by
// every list screen: one place for the debounced search, the categorical
// filter re-fetch, the guarded load-more append, and the race guard that
// makes the most recently issued request the only one allowed to win.
package listing

import (
	"context"
	"sync"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

const (
	// DefaultDebounce is the pause after the last keystroke before a
	// search-driven re-fetch is issued.
	DefaultDebounce = 500 * time.Millisecond

	defaultFetchTimeout = 30 * time.Second
)

// Fetcher loads one page of records for the given query. Screens supply a
// closure over their repository's list call.
type Fetcher[T any] func(ctx context.Context, q domain.ListQuery) (domain.Page[T], error)

// Snapshot is an immutable view of the controller state for rendering.
type Snapshot[T any] struct {
	Items         []T
	Pagination    domain.Pagination
	Search        string
	IsLoading     bool // Initial or filter-change fetch in flight
	IsLoadingMore bool // Next-page append in flight
	Refreshing    bool // Pull-to-refresh / focus re-entry fetch in flight
	Err           string
}

type fetchKind int

const (
	fetchReplace fetchKind = iota
	fetchMore
	fetchRefresh
)

// Controller owns the filter/search/pagination state of one list screen.
// All methods are safe for concurrent use; results of superseded requests
// are discarded without touching state.
type Controller[T any] struct {
	fetch    Fetcher[T]
	debounce time.Duration
	timeout  time.Duration
	perPage  int
	onChange func()

	mu      sync.Mutex
	search  string
	filters map[string]string

	items      []T
	pagination domain.Pagination
	errMsg     string

	loading     bool
	loadingMore bool
	refreshing  bool
	loadedOnce  bool

	// gen tags each issued fetch; only the completion whose tag still
	// matches may mutate state. closed makes every completion stale.
	gen    uint64
	closed bool

	timer *time.Timer

	lastKind fetchKind
	lastPage int
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithDebounce overrides the search debounce interval.
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.debounce = d }
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.timeout = d }
}

// WithPerPage overrides the page size.
func WithPerPage[T any](n int) Option[T] {
	return func(c *Controller[T]) { c.perPage = n }
}

// WithOnChange registers a callback fired after every state change.
func WithOnChange[T any](fn func()) Option[T] {
	return func(c *Controller[T]) { c.onChange = fn }
}

// WithFilters seeds initial filter state (e.g. a saved preset).
func WithFilters[T any](filters map[string]string) Option[T] {
	return func(c *Controller[T]) {
		for k, v := range filters {
			if v != "" && v != "all" {
				c.filters[k] = v
			}
		}
	}
}

// NewController creates a controller around fetch. Call Load to issue the
// first request.
func NewController[T any](fetch Fetcher[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:    fetch,
		debounce: DefaultDebounce,
		timeout:  defaultFetchTimeout,
		perPage:  domain.DefaultPerPage,
		filters:  map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load issues the initial fetch of page 1 with current filters.
func (c *Controller[T]) Load() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.issueLocked(fetchReplace, 1)
	c.mu.Unlock()
	c.notify()
}

// SetSearch updates the search string and schedules a debounced re-fetch of
// page 1. Each call resets the pending timer, so a burst of keystrokes
// produces exactly one request carrying the final string.
func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.search = text
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.issueLocked(fetchReplace, 1)
		c.mu.Unlock()
		c.notify()
	})
	c.mu.Unlock()
	c.notify()
}

// SetFilter updates a categorical filter and re-fetches page 1 immediately.
// An empty or "all" value clears the key. A pending search debounce is
// cancelled: its fetch would carry the same state this one already issues.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	if value == "" || value == "all" {
		delete(c.filters, key)
	} else {
		c.filters[key] = value
	}
	c.issueLocked(fetchReplace, 1)
	c.mu.Unlock()
	c.notify()
}

// Filter returns the current value for a filter key ("" when unset).
func (c *Controller[T]) Filter(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters[key]
}

// Filters returns a copy of the current filter state.
func (c *Controller[T]) Filters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		out[k] = v
	}
	return out
}

// LoadMore fetches the next page and appends its results. No-op while a
// load-more is already in flight or when the current page is the last.
func (c *Controller[T]) LoadMore() {
	c.mu.Lock()
	if c.closed || c.loadingMore || c.loading || !c.pagination.HasMore() {
		c.mu.Unlock()
		return
	}
	c.issueLocked(fetchMore, c.pagination.CurrentPage+1)
	c.mu.Unlock()
	c.notify()
}

// Refresh re-fetches page 1 with the current filters without showing the
// initial loading state. Before the first completed fetch it behaves like
// Load.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	if !c.loadedOnce {
		c.issueLocked(fetchReplace, 1)
	} else {
		c.issueLocked(fetchRefresh, 1)
	}
	c.mu.Unlock()
	c.notify()
}

// Retry re-issues the last fetch after an error.
func (c *Controller[T]) Retry() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	kind, page := c.lastKind, c.lastPage
	if page == 0 {
		kind, page = fetchReplace, 1
	}
	c.issueLocked(kind, page)
	c.mu.Unlock()
	c.notify()
}

// Close marks the screen unmounted: pending debounce timers are stopped and
// every in-flight result is ignored on arrival.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Items:         items,
		Pagination:    c.pagination,
		Search:        c.search,
		IsLoading:     c.loading,
		IsLoadingMore: c.loadingMore,
		Refreshing:    c.refreshing,
		Err:           c.errMsg,
	}
}

// issueLocked starts a fetch under c.mu: bumps the generation, raises the
// flag for the fetch kind, and runs the request in the background.
func (c *Controller[T]) issueLocked(kind fetchKind, page int) {
	c.gen++
	myGen := c.gen

	c.loading, c.loadingMore, c.refreshing = false, false, false
	switch kind {
	case fetchMore:
		c.loadingMore = true
	case fetchRefresh:
		c.refreshing = true
	default:
		c.loading = true
	}
	c.lastKind, c.lastPage = kind, page

	q := domain.ListQuery{
		Search:  c.search,
		Filters: make(map[string]string, len(c.filters)),
		Page:    page,
		PerPage: c.perPage,
	}
	for k, v := range c.filters {
		q.Filters[k] = v
	}

	go c.run(myGen, kind, q)
}

func (c *Controller[T]) run(myGen uint64, kind fetchKind, q domain.ListQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	if c.closed || myGen != c.gen {
		// Superseded or unmounted: the result is dropped, the newer
		// request owns the loading flags.
		c.mu.Unlock()
		return
	}
	c.loading, c.loadingMore, c.refreshing = false, false, false
	if err != nil {
		// Existing items stay visible behind the error banner.
		c.errMsg = DisplayError(err)
	} else {
		c.errMsg = ""
		if kind == fetchMore {
			c.items = append(c.items, page.Items...)
		} else {
			c.items = page.Items
		}
		c.pagination = page.Pagination
		c.loadedOnce = true
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Controller[T]) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
