package query

import (
	"fmt"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
)

// PagedResult is one page of a filtered listing plus total-count metadata.
type PagedResult[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// NewPagedResult wraps a page of data. TotalPages is derived from the total
// count, so a request for a page past the end yields an empty Data slice
// with consistent metadata instead of an error. PageSize is validated
// upstream; a zero or negative value reaching this layer is a bug, so it
// fails fast with ErrInvalidArgument rather than dividing by zero.
func NewPagedResult[T any](data []T, page, pageSize, totalItems int) (PagedResult[T], error) {
	if pageSize < 1 {
		return PagedResult[T]{}, fmt.Errorf("%w: page_size must be >= 1, got %d", domain.ErrInvalidArgument, pageSize)
	}

	if data == nil {
		data = []T{}
	}

	return PagedResult[T]{
		Data:        data,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  (totalItems + pageSize - 1) / pageSize,
	}, nil
}
