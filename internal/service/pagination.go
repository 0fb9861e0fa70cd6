// Package service holds the business operations behind the HTTP handlers.
// Each operation receives its store handle explicitly and mutations run in
// a single transaction that commits or rolls back on every exit path.
package service

const (
	DefaultPerPage = 10  // Page size when none is requested
	MaxPerPage     = 100 // Hard cap on page size
)

// Pagination is a normalized page request
type Pagination struct {
	Page    int // 1-based page number
	PerPage int // Items per page, 1..MaxPerPage
}

// NewPagination clamps a raw page request into range
func NewPagination(page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

// Offset is the number of rows skipped before this page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageCount returns ceil(total / perPage)
func PageCount(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// PageInfo is the pagination metadata returned with a listing
type PageInfo struct {
	Page    int   `json:"page"`     // Current page
	Pages   int   `json:"pages"`    // Total pages
	PerPage int   `json:"per_page"` // Page size
	Total   int64 `json:"total"`    // Total matching items
}

func newPageInfo(p Pagination, total int64) PageInfo {
	return PageInfo{Page: p.Page, Pages: PageCount(total, p.PerPage), PerPage: p.PerPage, Total: total}
}
