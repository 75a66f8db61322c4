package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/query"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
)

type stockItemRepository struct {
	db *sqlx.DB
}

// NewStockItemRepository creates a PostgreSQL stock item repository.
// Every read joins the category row.
func NewStockItemRepository(db *sqlx.DB) repository.StockItemRepository {
	return &stockItemRepository{db: db}
}

// Exposed sort fields, including the "category" relation alias which
// orders by the joined category name.
var stockItemSortColumns = map[string]string{
	"id":                     "s.id",
	"name":                   "s.name",
	"description":            "s.description",
	"quantity":               "s.quantity",
	"creation_date":          "s.creation_date",
	"last_modification_date": "s.last_modification_date",
	"category":               "c.name",
}

const stockItemColumns = `
	s.id, s.name, s.description, s.quantity, s.creation_date,
	s.last_modification_date, s.category_id,
	c.id AS "category.id", c.name AS "category.name",
	c.creation_date AS "category.creation_date",
	c.last_modification_date AS "category.last_modification_date"`

const stockItemFrom = ` FROM stock_items s JOIN item_categories c ON c.id = s.category_id`

func (r *stockItemRepository) GetByID(ctx context.Context, id int64) (*domain.StockItem, error) {
	stmt := `SELECT` + stockItemColumns + stockItemFrom + ` WHERE s.id = $1`

	var item domain.StockItem
	err := r.db.GetContext(ctx, &item, stmt, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStockItemNotFound
		}
		return nil, fmt.Errorf("get stock item by id: %w", err)
	}

	return &item, nil
}

func (r *stockItemRepository) GetByNameAndCategory(ctx context.Context, name string, categoryID int64) (*domain.StockItem, error) {
	stmt := `SELECT` + stockItemColumns + stockItemFrom + ` WHERE s.name = $1 AND s.category_id = $2`

	var item domain.StockItem
	err := r.db.GetContext(ctx, &item, stmt, name, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStockItemNotFound
		}
		return nil, fmt.Errorf("get stock item by name and category: %w", err)
	}

	return &item, nil
}

// List returns stock items matching the filter plus the total match
// count, evaluated before pagination.
func (r *stockItemRepository) List(ctx context.Context, filter repository.StockItemFilter) ([]domain.StockItem, int, error) {
	b := query.NewBuilder()
	b.Substring("s.name", filter.Name).
		Substring("s.description", filter.Description).
		EqualInt("s.quantity", filter.Quantity).
		Substring("c.name", filter.CategoryName)
	where := b.Where()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*)`+stockItemFrom+where, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count stock items: %w", err)
	}

	stmt := `SELECT` + stockItemColumns + stockItemFrom + where +
		query.OrderClause(filter.Params, stockItemSortColumns, "s.id") +
		b.Paginate(filter.Params)

	items := []domain.StockItem{}
	if err := r.db.SelectContext(ctx, &items, stmt, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list stock items: %w", err)
	}

	return items, total, nil
}

func (r *stockItemRepository) Create(ctx context.Context, item *domain.StockItem) error {
	stmt := `
		INSERT INTO stock_items (
			name, description, quantity, category_id,
			creation_date, last_modification_date
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.GetContext(ctx, &item.ID, stmt,
		item.Name, item.Description, item.Quantity, item.CategoryID,
		item.CreationDate, item.LastModificationDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStockItemExists
		}
		return fmt.Errorf("create stock item: %w", err)
	}

	return nil
}

func (r *stockItemRepository) Update(ctx context.Context, item *domain.StockItem) error {
	stmt := `
		UPDATE stock_items
		SET name = $1,
			description = $2,
			quantity = $3,
			category_id = $4,
			last_modification_date = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, stmt,
		item.Name, item.Description, item.Quantity, item.CategoryID,
		item.LastModificationDate, item.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStockItemExists
		}
		return fmt.Errorf("update stock item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update stock item rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrStockItemNotFound
	}

	return nil
}

func (r *stockItemRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete stock item rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrStockItemNotFound
	}

	return nil
}

func (r *stockItemRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM stock_items`); err != nil {
		return false, fmt.Errorf("count stock items: %w", err)
	}
	return count == 0, nil
}
