package repository

import (
	"context"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
)

// RoleFilter is the declarative filter for role listings.
type RoleFilter struct {
	query.Params
	Name string `query:"name" validate:"omitempty,max=50"`
}

type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context, filter RoleFilter) ([]domain.Role, int, error)
	Create(ctx context.Context, role *domain.Role) error
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
	IsEmpty(ctx context.Context) (bool, error)
}
