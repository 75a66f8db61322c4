package repository

import (
	"context"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
)

// CategoryFilter is the declarative filter for item category listings.
type CategoryFilter struct {
	query.Params
	Name string `query:"name" validate:"omitempty,max=50"`
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemCategory, error)
	GetByName(ctx context.Context, name string) (*domain.ItemCategory, error)
	List(ctx context.Context, filter CategoryFilter) ([]domain.ItemCategory, int, error)
	Create(ctx context.Context, category *domain.ItemCategory) error
	Update(ctx context.Context, category *domain.ItemCategory) error
	Delete(ctx context.Context, id int64) error
	IsEmpty(ctx context.Context) (bool, error)
}
