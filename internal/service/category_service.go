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

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.ItemCategory, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, filter repository.CategoryFilter) (query.PagedResult[domain.ItemCategory], error) {
	filter.Normalize()

	categories, total, err := s.categories.List(ctx, filter)
	if err != nil {
		return query.PagedResult[domain.ItemCategory]{}, err
	}

	return query.NewPagedResult(categories, filter.Page, filter.PageSize, total)
}

func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*domain.ItemCategory, error) {
	_, err := s.categories.GetByName(ctx, req.Name)
	if err == nil {
		return nil, domain.ErrCategoryExists
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("check category name: %w", err)
	}

	now := time.Now()
	category := &domain.ItemCategory{
		Name:                 req.Name,
		CreationDate:         now,
		LastModificationDate: now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Update applies only the fields present in the request. A rename that
// collides with another category leaves the stored row unmodified.
func (s *CategoryService) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.ItemCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		_, err := s.categories.GetByName(ctx, *req.Name)
		if err == nil {
			return nil, domain.ErrCategoryExists
		}
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		category.Name = *req.Name
	}

	category.LastModificationDate = time.Now()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}
