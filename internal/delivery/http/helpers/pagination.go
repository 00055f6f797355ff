package helpers

import (
	"officeweb/internal/listing"
	"officeweb/internal/pagination"
)

// Page sizes for each list view.
const (
	PostsPageSize    = 10
	InquiryPageSize  = 10
	ServicesPageSize = 12
	AdminPageSize    = 10
)

// ListResponse is the JSON body of a paged API list.
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination pagination.Control `json:"pagination"`
}

// NewListResponse converts a list state into an API body, mapping each item with fn.
func NewListResponse[T, R any](state listing.State[T], fn func(T) R) ListResponse[R] {
	items := make([]R, 0, len(state.Items))
	for _, it := range state.Items {
		items = append(items, fn(it))
	}
	return ListResponse[R]{Items: items, Pagination: state.Control()}
}
