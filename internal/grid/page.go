package grid

// DefaultPageSize is used when the caller does not supply a page size.
const DefaultPageSize = 10

// PageState holds the one-based current page and the page size.
type PageState struct {
	Page int
	Size int
}

// NewPageState creates a page state on page one. A non-positive size
// falls back to DefaultPageSize.
func NewPageState(size int) PageState {
	if size <= 0 {
		size = DefaultPageSize
	}
	return PageState{Page: 1, Size: size}
}

// TotalPages returns the number of pages needed for total rows, never
// less than one.
func (p PageState) TotalPages(total int) int {
	if p.Size <= 0 || total <= 0 {
		return 1
	}
	pages := (total + p.Size - 1) / p.Size
	if pages < 1 {
		return 1
	}
	return pages
}

// Bounds returns the half-open slice window for the current page,
// clamped to [0, total]. A page beyond the data yields an empty window.
func (p PageState) Bounds(total int) (start, end int) {
	if p.Size <= 0 || total < 0 {
		return 0, 0
	}
	start = (p.Page - 1) * p.Size
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end = start + p.Size
	if end > total {
		end = total
	}
	return start, end
}

// Next advances one page, clamped to the last page for total rows.
func (p PageState) Next(total int) PageState {
	if p.Page < p.TotalPages(total) {
		p.Page++
	}
	return p
}

// Prev steps back one page, clamped to page one.
func (p PageState) Prev() PageState {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// AtFirst reports whether the state is on the first page.
func (p PageState) AtFirst() bool {
	return p.Page <= 1
}

// AtLast reports whether the state is on or beyond the last page for
// total rows.
func (p PageState) AtLast(total int) bool {
	return p.Page >= p.TotalPages(total)
}
