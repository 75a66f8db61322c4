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

type roleRepository struct {
	db *sqlx.DB
}

// NewRoleRepository creates a PostgreSQL role repository.
func NewRoleRepository(db *sqlx.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

var roleSortColumns = map[string]string{
	"id":                     "id",
	"name":                   "name",
	"creation_date":          "creation_date",
	"last_modification_date": "last_modification_date",
}

const roleColumns = `id, name, creation_date, last_modification_date`

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`

	var role domain.Role
	err := r.db.GetContext(ctx, &role, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}

	return &role, nil
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1`

	var role domain.Role
	err := r.db.GetContext(ctx, &role, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}

	return &role, nil
}

// List returns roles matching the filter plus the total match count,
// evaluated before pagination.
func (r *roleRepository) List(ctx context.Context, filter repository.RoleFilter) ([]domain.Role, int, error) {
	b := query.NewBuilder()
	b.Substring("name", filter.Name)
	where := b.Where()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM roles`+where, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count roles: %w", err)
	}

	stmt := `SELECT ` + roleColumns + ` FROM roles` + where +
		query.OrderClause(filter.Params, roleSortColumns, "id") +
		b.Paginate(filter.Params)

	roles := []domain.Role{}
	if err := r.db.SelectContext(ctx, &roles, stmt, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list roles: %w", err)
	}

	return roles, total, nil
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `
		INSERT INTO roles (name, creation_date, last_modification_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.GetContext(ctx, &role.ID, query, role.Name, role.CreationDate, role.LastModificationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("create role: %w", err)
	}

	return nil
}

func (r *roleRepository) Update(ctx context.Context, role *domain.Role) error {
	query := `
		UPDATE roles
		SET name = $1,
			last_modification_date = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, role.Name, role.LastModificationDate, role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("update role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update role rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRoleNotFound
	}

	return nil
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete role rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRoleNotFound
	}

	return nil
}

func (r *roleRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM roles`); err != nil {
		return false, fmt.Errorf("count roles: %w", err)
	}
	return count == 0, nil
}
