package usecase

// Page is a normalized pagination window.
type Page struct {
	Page  int
	Limit int
}

// NormalizePage clamps raw pagination input to the supported range.
func NormalizePage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Page{Page: page, Limit: limit}
}

// Offset returns the row offset of the window.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes a listing result window. Total counts all rows
// matching the filter, independent of the page window.
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// NewPagination computes the pagination object for a page and total count.
func NewPagination(page Page, total int64) Pagination {
	totalPages := total / int64(page.Limit)
	if total%int64(page.Limit) != 0 {
		totalPages++
	}

	return Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
