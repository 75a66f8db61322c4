// Package service implements the application rules on top of the
// repositories: uniqueness checks on natural keys, password hashing,
// token verification and paginated listings.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
)

type CreateRoleRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateRoleRequest uses pointers so an omitted field is left untouched
// while a present zero value still fails validation.
type UpdateRoleRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

type RoleService struct {
	roles repository.RoleRepository
}

func NewRoleService(roles repository.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.GetByID(ctx, id)
}

func (s *RoleService) List(ctx context.Context, filter repository.RoleFilter) (query.PagedResult[domain.Role], error) {
	filter.Normalize()

	roles, total, err := s.roles.List(ctx, filter)
	if err != nil {
		return query.PagedResult[domain.Role]{}, err
	}

	return query.NewPagedResult(roles, filter.Page, filter.PageSize, total)
}

// Create rejects a duplicate role name before inserting.
func (s *RoleService) Create(ctx context.Context, req CreateRoleRequest) (*domain.Role, error) {
	_, err := s.roles.GetByName(ctx, req.Name)
	if err == nil {
		return nil, domain.ErrRoleExists
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("check role name: %w", err)
	}

	now := time.Now()
	role := &domain.Role{
		Name:                 req.Name,
		CreationDate:         now,
		LastModificationDate: now,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Update applies only the fields present in the request. A rename that
// collides with another role leaves the stored row unmodified.
func (s *RoleService) Update(ctx context.Context, id int64, req UpdateRoleRequest) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != role.Name {
		_, err := s.roles.GetByName(ctx, *req.Name)
		if err == nil {
			return nil, domain.ErrRoleExists
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return nil, fmt.Errorf("check role name: %w", err)
		}
		role.Name = *req.Name
	}

	role.LastModificationDate = time.Now()
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return s.roles.Delete(ctx, id)
}
