package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
)

func newStockItemFixture(t *testing.T) (*StockItemService, *fakeStockItemRepo, *fakeCategoryRepo) {
	t.Helper()

	items := newFakeStockItemRepo()
	categories := newFakeCategoryRepo()
	return NewStockItemService(items, categories), items, categories
}

func createCategory(t *testing.T, categories *fakeCategoryRepo, name string) *domain.ItemCategory {
	t.Helper()

	category := &domain.ItemCategory{Name: name}
	if err := categories.Create(context.Background(), category); err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category
}

func TestStockItemCreate(t *testing.T) {
	svc, _, categories := newStockItemFixture(t)
	electronics := createCategory(t, categories, "Electronics")

	description := "27 inch monitor"
	item, err := svc.Create(context.Background(), CreateStockItemRequest{
		Name:        "Monitor",
		Description: &description,
		Quantity:    3,
		CategoryID:  electronics.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Category.Name != "Electronics" {
		t.Fatalf("category not attached: %+v", item.Category)
	}

	_, err = svc.Create(context.Background(), CreateStockItemRequest{Name: "Monitor", CategoryID: electronics.ID})
	if !errors.Is(err, domain.ErrStockItemExists) {
		t.Fatalf("duplicate in same category: expected ErrStockItemExists, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateStockItemRequest{Name: "Monitor", CategoryID: 999})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("missing category: expected ErrCategoryNotFound, got %v", err)
	}
}

func TestStockItemSameNameDifferentCategory(t *testing.T) {
	svc, _, categories := newStockItemFixture(t)
	electronics := createCategory(t, categories, "Electronics")
	refurbished := createCategory(t, categories, "Refurbished")

	if _, err := svc.Create(context.Background(), CreateStockItemRequest{Name: "Monitor", CategoryID: electronics.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateStockItemRequest{Name: "Monitor", CategoryID: refurbished.ID}); err != nil {
		t.Fatalf("same name in another category should be allowed, got %v", err)
	}
}

func TestStockItemUpdateQuantityZero(t *testing.T) {
	svc, _, categories := newStockItemFixture(t)
	electronics := createCategory(t, categories, "Electronics")

	item, err := svc.Create(context.Background(), CreateStockItemRequest{
		Name:       "Monitor",
		Quantity:   5,
		CategoryID: electronics.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	zero := 0
	updated, err := svc.Update(context.Background(), item.ID, UpdateStockItemRequest{Quantity: &zero})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 0 {
		t.Fatalf("quantity zero was not applied, got %d", updated.Quantity)
	}
	if updated.Name != "Monitor" {
		t.Fatalf("omitted fields were modified: %s", updated.Name)
	}
}

func TestStockItemMoveToCategoryWithConflict(t *testing.T) {
	svc, items, categories := newStockItemFixture(t)
	electronics := createCategory(t, categories, "Electronics")
	refurbished := createCategory(t, categories, "Refurbished")

	if _, err := svc.Create(context.Background(), CreateStockItemRequest{Name: "Monitor", CategoryID: refurbished.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	moved, err := svc.Create(context.Background(), CreateStockItemRequest{Name: "Monitor", CategoryID: electronics.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Moving into a category that already holds the name is a conflict.
	if _, err := svc.Update(context.Background(), moved.ID, UpdateStockItemRequest{CategoryID: &refurbished.ID}); !errors.Is(err, domain.ErrStockItemExists) {
		t.Fatalf("expected ErrStockItemExists, got %v", err)
	}

	stored, err := items.GetByID(context.Background(), moved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CategoryID != electronics.ID {
		t.Fatalf("conflicting move modified the row: category %d", stored.CategoryID)
	}

	// Moving into an empty category succeeds and refreshes the snapshot.
	storage := createCategory(t, categories, "Storage")
	updated, err := svc.Update(context.Background(), moved.ID, UpdateStockItemRequest{CategoryID: &storage.ID})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CategoryID != storage.ID || updated.Category.Name != "Storage" {
		t.Fatalf("category move not applied: %+v", updated)
	}
}

func TestStockItemListAllPagesSumToTotal(t *testing.T) {
	svc, _, categories := newStockItemFixture(t)
	electronics := createCategory(t, categories, "Electronics")

	for i := 0; i < 23; i++ {
		if _, err := svc.Create(context.Background(), CreateStockItemRequest{
			Name:       fmt.Sprintf("Item %02d", i),
			Quantity:   i,
			CategoryID: electronics.ID,
		}); err != nil {
			t.Fatalf("Create item %d: %v", i, err)
		}
	}

	var filter repository.StockItemFilter
	filter.Page = 1
	filter.PageSize = 10

	first, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if first.TotalItems != 23 || first.TotalPages != 3 {
		t.Fatalf("expected 23 items over 3 pages, got %d/%d", first.TotalItems, first.TotalPages)
	}

	seen := 0
	wantLens := []int{10, 10, 3}
	for page := 1; page <= first.TotalPages; page++ {
		filter.Page = page
		result, err := svc.List(context.Background(), filter)
		if err != nil {
			t.Fatalf("List page %d: %v", page, err)
		}
		if len(result.Data) != wantLens[page-1] {
			t.Fatalf("page %d: expected %d items, got %d", page, wantLens[page-1], len(result.Data))
		}
		if result.TotalItems != 23 || result.TotalPages != 3 {
			t.Fatalf("page %d: metadata drifted: %d/%d", page, result.TotalItems, result.TotalPages)
		}
		seen += len(result.Data)
	}
	if seen != first.TotalItems {
		t.Fatalf("page lengths sum to %d, want %d", seen, first.TotalItems)
	}

	// One page past the end stays empty with unchanged metadata.
	filter.Page = 4
	past, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List past end: %v", err)
	}
	if len(past.Data) != 0 || past.TotalItems != 23 || past.TotalPages != 3 {
		t.Fatalf("expected empty page with full metadata, got %+v", past)
	}
}

func TestStockItemClearDescription(t *testing.T) {
	svc, _, categories := newStockItemFixture(t)
	electronics := createCategory(t, categories, "Electronics")

	description := "old text"
	item, err := svc.Create(context.Background(), CreateStockItemRequest{
		Name:        "Monitor",
		Description: &description,
		CategoryID:  electronics.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	updated, err := svc.Update(context.Background(), item.ID, UpdateStockItemRequest{Description: &empty})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description == nil || *updated.Description != "" {
		t.Fatalf("empty description was not applied: %v", updated.Description)
	}
}
