package repository

import (
	"context"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
)

// UserFilter is the declarative filter for user listings. String fields
// are substring matches, IsActive is an equality match and RoleName
// matches against the joined role's name.
type UserFilter struct {
	query.Params
	UserName  string `query:"user_name" validate:"omitempty,max=50"`
	FirstName string `query:"first_name" validate:"omitempty,max=50"`
	LastName  string `query:"last_name" validate:"omitempty,max=50"`
	Email     string `query:"email" validate:"omitempty,max=50"`
	IsActive  *bool  `query:"is_active"`
	RoleName  string `query:"role_name" validate:"omitempty,max=50"`
}

// UserRepository provides user storage. Lookups return
// domain.ErrUserNotFound when no row matches; that is a normal outcome,
// distinguishable from a storage failure.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, int, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	IsEmpty(ctx context.Context) (bool, error)
}
