package repository

import (
	"context"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
)

// StockItemFilter is the declarative filter for stock item listings.
// CategoryName matches against the joined category's name; Quantity is an
// exact match and distinguishes "not filtered" from "quantity is zero".
type StockItemFilter struct {
	query.Params
	Name         string `query:"name" validate:"omitempty,max=50"`
	Description  string `query:"description" validate:"omitempty,max=255"`
	Quantity     *int   `query:"quantity" validate:"omitempty,gte=0"`
	CategoryName string `query:"category_name" validate:"omitempty,max=50"`
}

type StockItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StockItem, error)
	GetByNameAndCategory(ctx context.Context, name string, categoryID int64) (*domain.StockItem, error)
	List(ctx context.Context, filter StockItemFilter) ([]domain.StockItem, int, error)
	Create(ctx context.Context, item *domain.StockItem) error
	Update(ctx context.Context, item *domain.StockItem) error
	Delete(ctx context.Context, id int64) error
	IsEmpty(ctx context.Context) (bool, error)
}
