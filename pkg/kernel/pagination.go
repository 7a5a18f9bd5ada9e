package kernel

// Pagination bounds. Out-of-range input is clamped, never rejected: the
// request boundary owns strict validation, this layer favors availability.
const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// PaginationOptions carries normalized page/size values
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"limit"`
}

// NewPaginationOptions builds options from raw input, clamping into range
func NewPaginationOptions(page, pageSize int) PaginationOptions {
	return PaginationOptions{Page: page, PageSize: pageSize}.Normalized()
}

// Normalized returns a copy with page >= 1 and size in [1, MaxPageSize].
// A zero size means "caller didn't choose" and gets the default.
func (p PaginationOptions) Normalized() PaginationOptions {
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize < 1 {
		p.PageSize = 1
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Offset computes the rows to skip for the current page
func (p PaginationOptions) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.PageSize
}

// Page describes the position of a result page within the full set
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// NewPage computes page metadata for a total row count. Pages is 0 when
// the set is empty.
func NewPage(number, size, total int) Page {
	pages := 0
	if total > 0 {
		pages = (total + size - 1) / size
	}
	return Page{
		Number: number,
		Size:   size,
		Total:  total,
		Pages:  pages,
	}
}

// Paginated wraps a page of items with its metadata
type Paginated[T any] struct {
	Items []T  `json:"data"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}
