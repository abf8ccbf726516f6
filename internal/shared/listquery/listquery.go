package listquery

import (
	"sort"
	"strings"
)

// Params is the query block every list endpoint accepts. Each screen of the
// dashboard posts the same shape: free-text search, sort column + direction,
// and a page window.
type Params struct {
	Search    string `json:"search"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

func (p *Params) Normalize(defaultSize int, defaultSort string) {
	p.Search = strings.TrimSpace(p.Search)
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	p.SortBy = strings.ToLower(strings.TrimSpace(p.SortBy))
	if p.SortBy == "" {
		p.SortBy = defaultSort
	}
	p.SortOrder = strings.ToLower(strings.TrimSpace(p.SortOrder))
	if p.SortOrder != "desc" {
		p.SortOrder = "asc"
	}
}

func (p Params) Desc() bool {
	return p.SortOrder == "desc"
}

// Matches reports whether the search term occurs in any of the fields,
// case-insensitively. An empty term matches everything.
func Matches(search string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SortBy orders rows by the string key. Missing values must be surfaced by
// the key func as "" so they order before everything else ascending and
// after everything else descending. Ties keep no particular order.
func SortBy[T any](rows []T, key func(T) string, desc bool) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := strings.ToLower(key(rows[i])), strings.ToLower(key(rows[j]))
		if desc {
			return a > b
		}
		return a < b
	})
}

// Paginate cuts the sorted set down to the requested window. The sort is
// applied over the whole set first, so results are globally ordered rather
// than page-local.
func Paginate[T any](rows []T, page, pageSize int) ([]T, int) {
	total := len(rows)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return rows[start:end], totalPages
}
