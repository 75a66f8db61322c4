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

type CreateStockItemRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
}

// UpdateStockItemRequest uses pointers so quantity zero is a real update
// rather than an omitted field.
type UpdateStockItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=0"`
	CategoryID  *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

type StockItemService struct {
	items      repository.StockItemRepository
	categories repository.CategoryRepository
}

func NewStockItemService(items repository.StockItemRepository, categories repository.CategoryRepository) *StockItemService {
	return &StockItemService{items: items, categories: categories}
}

func (s *StockItemService) Get(ctx context.Context, id int64) (*domain.StockItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *StockItemService) List(ctx context.Context, filter repository.StockItemFilter) (query.PagedResult[domain.StockItem], error) {
	filter.Normalize()

	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return query.PagedResult[domain.StockItem]{}, err
	}

	return query.NewPagedResult(items, filter.Page, filter.PageSize, total)
}

// Create requires the category to exist and the item name to be unique
// within that category.
func (s *StockItemService) Create(ctx context.Context, req CreateStockItemRequest) (*domain.StockItem, error) {
	category, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if _, err := s.items.GetByNameAndCategory(ctx, req.Name, category.ID); err == nil {
		return nil, domain.ErrStockItemExists
	} else if !errors.Is(err, domain.ErrStockItemNotFound) {
		return nil, fmt.Errorf("check stock item name: %w", err)
	}

	now := time.Now()
	item := &domain.StockItem{
		Name:                 req.Name,
		Description:          req.Description,
		Quantity:             req.Quantity,
		CreationDate:         now,
		LastModificationDate: now,
		CategoryID:           category.ID,
		Category:             *category,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update applies only the fields present in the request. When the name or
// category changes, uniqueness is re-checked against the target category.
// Conflicts leave the stored row unmodified.
func (s *StockItemService) Update(ctx context.Context, id int64, req UpdateStockItemRequest) (*domain.StockItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if req.Name != nil {
		name = *req.Name
	}

	categoryID := item.CategoryID
	category := item.Category
	if req.CategoryID != nil && *req.CategoryID != item.CategoryID {
		target, err := s.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = target.ID
		category = *target
	}

	if name != item.Name || categoryID != item.CategoryID {
		existing, err := s.items.GetByNameAndCategory(ctx, name, categoryID)
		if err == nil && existing.ID != item.ID {
			return nil, domain.ErrStockItemExists
		}
		if err != nil && !errors.Is(err, domain.ErrStockItemNotFound) {
			return nil, fmt.Errorf("check stock item name: %w", err)
		}
	}

	item.Name = name
	item.CategoryID = categoryID
	item.Category = category

	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	item.LastModificationDate = time.Now()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *StockItemService) Delete(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}
