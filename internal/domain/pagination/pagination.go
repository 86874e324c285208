package pagination

import "github.com/samber/lo"

// Pagination is the envelope returned by list operations.
type Pagination[T any] struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	Items       []T   `json:"items"`
}

func New[T any](currentPage, perPage int, total int64, items []T) Pagination[T] {
	return Pagination[T]{
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
		Items:       items,
	}
}

// Map transforms every item and keeps the paging metadata unchanged.
func Map[T, U any](p Pagination[T], f func(T) U) Pagination[U] {
	var items []U
	if p.Items != nil {
		items = lo.Map(p.Items, func(item T, _ int) U { return f(item) })
	}
	return Pagination[U]{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		Items:       items,
	}
}
