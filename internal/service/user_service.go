package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/hash"
)

type CreateUserRequest struct {
	UserName  string `json:"user_name" validate:"required,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=50"`
	RoleID    int64  `json:"role_id" validate:"required,gt=0"`
}

// UpdateUserRequest uses pointers so an omitted field is left untouched.
// In particular IsActive false and Quantity-style zero values survive the
// trip instead of being read as "not provided".
type UpdateUserRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,min=1,max=50"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Email     *string `json:"email" validate:"omitempty,email,max=50"`
	IsActive  *bool   `json:"is_active"`
	RoleID    *int64  `json:"role_id" validate:"omitempty,gt=0"`
}

type UserService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter repository.UserFilter) (query.PagedResult[domain.User], error) {
	filter.Normalize()

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return query.PagedResult[domain.User]{}, err
	}

	return query.NewPagedResult(users, filter.Page, filter.PageSize, total)
}

// Create checks username and email uniqueness and that the target role
// exists, then stores the user as active with a hashed password.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if _, err := s.users.GetByUserName(ctx, req.UserName); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check user name: %w", err)
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	role, err := s.roles.GetByID(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		UserName:             req.UserName,
		HashedPassword:       hashed,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		IsActive:             true,
		CreationDate:         now,
		LastModificationDate: now,
		RoleID:               role.ID,
		Role:                 *role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies only the fields present in the request. Uniqueness is
// re-checked for a changed username or email, and a changed role must
// exist. Conflicts leave the stored row unmodified.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserName != nil && *req.UserName != user.UserName {
		if _, err := s.users.GetByUserName(ctx, *req.UserName); err == nil {
			return nil, domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("check user name: %w", err)
		}
		user.UserName = *req.UserName
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, *req.Email); err == nil {
			return nil, domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hashed, err := hash.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if req.RoleID != nil && *req.RoleID != user.RoleID {
		role, err := s.roles.GetByID(ctx, *req.RoleID)
		if err != nil {
			return nil, err
		}
		user.RoleID = role.ID
		user.Role = *role
	}

	user.LastModificationDate = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
