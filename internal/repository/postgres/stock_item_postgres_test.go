package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
)

var stockItemRowColumns = []string{
	"id", "name", "description", "quantity", "creation_date",
	"last_modification_date", "category_id",
	"category.id", "category.name",
	"category.creation_date", "category.last_modification_date",
}

func stockItemRows(id int64, name string, quantity int, categoryID int64, categoryName string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(stockItemRowColumns).
		AddRow(id, name, nil, quantity, now, now, categoryID, categoryID, categoryName, now, now)
}

func TestStockItemGetByIDJoinsCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockItemRepository(db)

	mock.ExpectQuery(`FROM stock_items s JOIN item_categories c ON c.id = s.category_id WHERE s.id`).
		WithArgs(int64(3)).
		WillReturnRows(stockItemRows(3, "Monitor", 5, 2, "Electronics"))

	item, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if item.Name != "Monitor" || item.Quantity != 5 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Category.ID != 2 || item.Category.Name != "Electronics" {
		t.Fatalf("category not hydrated: %+v", item.Category)
	}
	if item.Description != nil {
		t.Fatalf("expected nil description, got %v", *item.Description)
	}
}

func TestStockItemGetByNameAndCategoryNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockItemRepository(db)

	mock.ExpectQuery(`WHERE s.name = \$1 AND s.category_id = \$2`).
		WithArgs("Monitor", int64(2)).
		WillReturnRows(sqlmock.NewRows(stockItemRowColumns))

	if _, err := repo.GetByNameAndCategory(context.Background(), "Monitor", 2); !errors.Is(err, domain.ErrStockItemNotFound) {
		t.Fatalf("expected ErrStockItemNotFound, got %v", err)
	}
}

func TestStockItemListSortByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockItemRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stock_items s JOIN item_categories c ON c.id = s.category_id WHERE s.name ILIKE \$1 AND s.quantity = \$2`).
		WithArgs("%mon%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`WHERE s.name ILIKE \$1 AND s.quantity = \$2 ORDER BY c.name DESC, s.id ASC LIMIT \$3 OFFSET \$4`).
		WithArgs("%mon%", 5, 10, 0).
		WillReturnRows(stockItemRows(3, "Monitor", 5, 2, "Electronics"))

	quantity := 5
	filter := repository.StockItemFilter{Name: "mon", Quantity: &quantity}
	filter.Page = 1
	filter.PageSize = 10
	filter.SortBy = "category"
	filter.SortDirection = query.SortDesc

	items, total, err := repo.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("unexpected result: total=%d items=%d", total, len(items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStockItemCreateUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockItemRepository(db)

	mock.ExpectQuery("INSERT INTO stock_items").
		WithArgs("Monitor", nil, 5, int64(2), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	item := &domain.StockItem{Name: "Monitor", Quantity: 5, CategoryID: 2}
	if err := repo.Create(context.Background(), item); !errors.Is(err, domain.ErrStockItemExists) {
		t.Fatalf("expected ErrStockItemExists, got %v", err)
	}
}

func TestStockItemUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStockItemRepository(db)

	mock.ExpectExec("UPDATE stock_items").
		WithArgs("Monitor", nil, 0, int64(2), sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &domain.StockItem{ID: 3, Name: "Monitor", Quantity: 0, CategoryID: 2}
	if err := repo.Update(context.Background(), item); err != nil {
		t.Fatalf("Update: %v", err)
	}
}
