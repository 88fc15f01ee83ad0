package ports

import "orderservice/internal/pkg/errs"

// Paging defaults and bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects one page of a result set. Pages are zero-based.
type PageRequest struct {
	page int
	size int
}

// NewPageRequest creates a page request. A non-positive size falls back to
// DefaultPageSize; sizes above MaxPageSize are rejected rather than silently
// truncated.
func NewPageRequest(page, size int) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, errs.NewValueIsInvalidError("page")
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}

	return PageRequest{page: page, size: size}, nil
}

// Page returns the zero-based page number.
func (p PageRequest) Page() int {
	return p.page
}

// Size returns the page size.
func (p PageRequest) Size() int {
	if p.size == 0 {
		return DefaultPageSize
	}
	return p.size
}

// Offset returns the row offset of the page's first element.
func (p PageRequest) Offset() int {
	return p.page * p.Size()
}

// Page is one page of results together with the total match count.
type Page[T any] struct {
	Items      []T
	Total      int64
	PageNumber int
	PageSize   int
}
