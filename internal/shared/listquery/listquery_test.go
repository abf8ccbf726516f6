package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Normalize(t *testing.T) {
	p := Params{Search: "  acme ", Page: 0, PageSize: -3, SortBy: " Name ", SortOrder: "DESC"}
	p.Normalize(10, "createdat")

	assert.Equal(t, "acme", p.Search)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.True(t, p.Desc())
}

func TestParams_Normalize_Defaults(t *testing.T) {
	p := Params{SortOrder: "sideways"}
	p.Normalize(5, "invoice_date")

	assert.Equal(t, "invoice_date", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
	assert.False(t, p.Desc())
	assert.Equal(t, 5, p.PageSize)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", "anything"))
	assert.True(t, Matches("  ", "anything"))
	assert.True(t, Matches("ACME", "Acme LLC", "other"))
	assert.True(t, Matches("acme", "other", "The Acme Co"))
	assert.False(t, Matches("acme", "Beta Corp", "Gamma Inc"))
}

func TestSortBy_MissingValuesFirstAscending(t *testing.T) {
	rows := []string{"beta", "", "alpha"}
	SortBy(rows, func(s string) string { return s }, false)
	assert.Equal(t, []string{"", "alpha", "beta"}, rows)
}

func TestSortBy_MissingValuesLastDescending(t *testing.T) {
	// Duplicate and empty keys exercise the tie handling of the comparator.
	rows := []string{"", "beta", "alpha", "beta", ""}
	SortBy(rows, func(s string) string { return s }, true)
	assert.Equal(t, []string{"beta", "beta", "alpha", "", ""}, rows)
}

func TestSortBy_CaseInsensitive(t *testing.T) {
	rows := []string{"banana", "Apple", "cherry"}
	SortBy(rows, func(s string) string { return s }, false)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, rows)
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	window, totalPages := Paginate(rows, 1, 2)
	assert.Equal(t, []int{1, 2}, window)
	assert.Equal(t, 3, totalPages)

	window, _ = Paginate(rows, 3, 2)
	assert.Equal(t, []int{5}, window)

	// Pages past the end come back empty, not out of range.
	window, _ = Paginate(rows, 9, 2)
	assert.Empty(t, window)
}

func TestPaginate_Empty(t *testing.T) {
	window, totalPages := Paginate([]int{}, 1, 10)
	assert.Empty(t, window)
	assert.Equal(t, 0, totalPages)
}
