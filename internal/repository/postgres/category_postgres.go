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

type categoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a PostgreSQL item category repository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

var categorySortColumns = map[string]string{
	"id":                     "id",
	"name":                   "name",
	"creation_date":          "creation_date",
	"last_modification_date": "last_modification_date",
}

const categoryColumns = `id, name, creation_date, last_modification_date`

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.ItemCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM item_categories WHERE id = $1`

	var category domain.ItemCategory
	err := r.db.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.ItemCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM item_categories WHERE name = $1`

	var category domain.ItemCategory
	err := r.db.GetContext(ctx, &category, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter) ([]domain.ItemCategory, int, error) {
	b := query.NewBuilder()
	b.Substring("name", filter.Name)
	where := b.Where()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM item_categories`+where, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	stmt := `SELECT ` + categoryColumns + ` FROM item_categories` + where +
		query.OrderClause(filter.Params, categorySortColumns, "id") +
		b.Paginate(filter.Params)

	categories := []domain.ItemCategory{}
	if err := r.db.SelectContext(ctx, &categories, stmt, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	return categories, total, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.ItemCategory) error {
	query := `
		INSERT INTO item_categories (name, creation_date, last_modification_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.GetContext(ctx, &category.ID, query, category.Name, category.CreationDate, category.LastModificationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.ItemCategory) error {
	query := `
		UPDATE item_categories
		SET name = $1,
			last_modification_date = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.LastModificationDate, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("update category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM item_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM item_categories`); err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	return count == 0, nil
}
