package filterx

// Page is pagination metadata.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// Paginated holds one page of items and where it sits in the whole set.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"pagination"`
	Empty bool `json:"empty"`
}

// Paginate slices items to the 1-based page of the given size. Pages past
// the end are empty; page and size below 1 are treated as 1.
func Paginate[T any](items []T, page, size int) Paginated[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	start := min((page-1)*size, total)
	end := min(start+size, total)

	window := make([]T, end-start)
	copy(window, items[start:end])

	return Paginated[T]{
		Items: window,
		Page: Page{
			Number: page,
			Size:   size,
			Total:  total,
			Pages:  (total + size - 1) / size,
		},
		Empty: len(window) == 0,
	}
}

// HasNext reports whether a page follows this one.
func (p Paginated[T]) HasNext() bool {
	return p.Page.Number < p.Page.Pages
}

// HasPrevious reports whether a page precedes this one.
func (p Paginated[T]) HasPrevious() bool {
	return p.Page.Number > 1
}
