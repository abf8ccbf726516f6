// Package listview implements the table-state machine every dashboard screen
// shares: one filter box, sortable columns, numbered pages, expandable rows.
// It also owns the one subtle bug class these screens kept reintroducing:
// a slow response for an old query overwriting the rows of a newer one.
package listview

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrPermissionDenied is returned by Refresh when the session was built
	// without its view capability. No fetch is issued.
	ErrPermissionDenied = errors.New("listview: permission denied")

	// ErrStaleResponse is returned when a newer query was issued while this
	// fetch was in flight; the result has been discarded.
	ErrStaleResponse = errors.New("listview: stale response discarded")
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Query is the request state a fetch is issued with.
type Query struct {
	Search    string
	Filters   map[string]string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (q Query) clone() Query {
	filters := make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		filters[k] = v
	}
	q.Filters = filters
	return q
}

// Page is one fetched window of rows.
type Page[T any] struct {
	Rows       []T
	TotalPages int
}

// Fetcher loads one window from the server.
type Fetcher[T any] func(ctx context.Context, q Query) (Page[T], error)

// Session owns the view state for one screen. All methods are safe for
// concurrent use; Refresh may be called from multiple goroutines and only
// the newest in-flight query's result is ever applied.
type Session[T any] struct {
	mu         sync.Mutex
	fetch      Fetcher[T]
	allowed    bool
	fallback   string
	query      Query
	rows       []T
	totalPages int
	lastErr    string
	seq        uint64
	expanded   map[string]bool
}

type Option func(*config)

type config struct {
	pageSize  int
	sortBy    string
	sortOrder string
	fallback  string
}

func WithPageSize(n int) Option {
	return func(c *config) { c.pageSize = n }
}

func WithDefaultSort(field, order string) Option {
	return func(c *config) {
		c.sortBy = field
		c.sortOrder = order
	}
}

// WithFallbackMessage sets the error text shown when a failed fetch carries
// no server message.
func WithFallbackMessage(msg string) Option {
	return func(c *config) { c.fallback = msg }
}

// NewSession builds a session. allowed reflects the caller's view
// capability; a denied session never calls the fetcher.
func NewSession[T any](fetch Fetcher[T], allowed bool, opts ...Option) *Session[T] {
	cfg := config{
		pageSize:  10,
		sortOrder: OrderAsc,
		fallback:  "Unable to load data. Please try again.",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session[T]{
		fetch:    fetch,
		allowed:  allowed,
		fallback: cfg.fallback,
		query: Query{
			Filters:   map[string]string{},
			Page:      1,
			PageSize:  cfg.pageSize,
			SortBy:    cfg.sortBy,
			SortOrder: cfg.sortOrder,
		},
		expanded: map[string]bool{},
	}
}

// Denied reports whether the session lacks its view capability.
func (s *Session[T]) Denied() bool {
	return !s.allowed
}

// SetFilter replaces the free-text filter and resets to page one.
func (s *Session[T]) SetFilter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Search = text
	s.query.Page = 1
}

// SetAuxFilter sets a named auxiliary filter (month, year, date range
// bounds) and resets to page one. An empty value clears the filter.
func (s *Session[T]) SetAuxFilter(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.query.Filters, name)
	} else {
		s.query.Filters[name] = value
	}
	s.query.Page = 1
}

// SetSort activates a column. A new column sorts ascending; the already
// active column flips direction. Either way the view returns to page one.
func (s *Session[T]) SetSort(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query.SortBy == field {
		if s.query.SortOrder == OrderAsc {
			s.query.SortOrder = OrderDesc
		} else {
			s.query.SortOrder = OrderAsc
		}
	} else {
		s.query.SortBy = field
		s.query.SortOrder = OrderAsc
	}
	s.query.Page = 1
}

// SetPage clamps into [1, totalPages] when the total is known.
func (s *Session[T]) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if s.totalPages > 0 && page > s.totalPages {
		page = s.totalPages
	}
	s.query.Page = page
}

func (s *Session[T]) NextPage() {
	s.mu.Lock()
	page := s.query.Page + 1
	s.mu.Unlock()
	s.SetPage(page)
}

func (s *Session[T]) PrevPage() {
	s.mu.Lock()
	page := s.query.Page - 1
	s.mu.Unlock()
	s.SetPage(page)
}

func (s *Session[T]) CanPrev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.Page > 1
}

func (s *Session[T]) CanNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPages > 0 && s.query.Page < s.totalPages
}

// PageNumbers returns one entry per known page, for rendering the pager.
func (s *Session[T]) PageNumbers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, s.totalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ToggleExpanded flips one row's expanded state without touching any other
// row.
func (s *Session[T]) ToggleExpanded(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded[id] {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = true
	}
}

func (s *Session[T]) IsExpanded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded[id]
}

// Refresh issues a fetch for the current query state. Each call takes a
// sequence number; when the fetch returns, its result is applied only if no
// newer call has been issued in the meantime. A failed fetch keeps the
// previous rows and records the error message.
func (s *Session[T]) Refresh(ctx context.Context) error {
	if !s.allowed {
		return ErrPermissionDenied
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	q := s.query.clone()
	s.mu.Unlock()

	page, err := s.fetch(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrStaleResponse
	}

	if err != nil {
		if msg := err.Error(); msg != "" {
			s.lastErr = msg
		} else {
			s.lastErr = s.fallback
		}
		return err
	}

	s.rows = page.Rows
	s.totalPages = page.TotalPages
	s.lastErr = ""
	return nil
}

// Rows returns the last applied window.
func (s *Session[T]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *Session[T]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.clone()
}

func (s *Session[T]) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPages
}

// LastError returns the message from the most recent failed fetch, or the
// empty string after a success.
func (s *Session[T]) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
