package domain

// PaginationParams selects one page of a remote collection.
type PaginationParams struct {
	Page     int
	PageSize int
}

// PagedResult is the backend's paged-collection envelope.
// Only Items and TotalPages drive list views; the rest is informational.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}
