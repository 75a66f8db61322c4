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

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a PostgreSQL user repository. Every read joins
// the role row so callers always see the user's current role.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Exposed sort fields, including the "role" relation alias which orders by
// the joined role name.
var userSortColumns = map[string]string{
	"id":                     "u.id",
	"user_name":              "u.user_name",
	"first_name":             "u.first_name",
	"last_name":              "u.last_name",
	"email":                  "u.email",
	"is_active":              "u.is_active",
	"creation_date":          "u.creation_date",
	"last_modification_date": "u.last_modification_date",
	"role":                   "r.name",
}

const userColumns = `
	u.id, u.user_name, u.hashed_password, u.first_name, u.last_name, u.email,
	u.is_active, u.creation_date, u.last_modification_date, u.role_id,
	r.id AS "role.id", r.name AS "role.name",
	r.creation_date AS "role.creation_date",
	r.last_modification_date AS "role.last_modification_date"`

const userFrom = ` FROM users u JOIN roles r ON r.id = u.role_id`

func (r *userRepository) getOne(ctx context.Context, condition string, arg any) (*domain.User, error) {
	stmt := `SELECT` + userColumns + userFrom + ` WHERE ` + condition

	var user domain.User
	err := r.db.GetContext(ctx, &user, stmt, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `u.id = $1`, id)
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return r.getOne(ctx, `u.user_name = $1`, userName)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `u.email = $1`, email)
}

// List returns users matching the filter plus the total match count,
// evaluated before pagination.
func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, int, error) {
	b := query.NewBuilder()
	b.Substring("u.user_name", filter.UserName).
		Substring("u.first_name", filter.FirstName).
		Substring("u.last_name", filter.LastName).
		Substring("u.email", filter.Email).
		EqualBool("u.is_active", filter.IsActive).
		Substring("r.name", filter.RoleName)
	where := b.Where()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*)`+userFrom+where, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	stmt := `SELECT` + userColumns + userFrom + where +
		query.OrderClause(filter.Params, userSortColumns, "u.id") +
		b.Paginate(filter.Params)

	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, stmt, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	stmt := `
		INSERT INTO users (
			user_name, hashed_password, first_name, last_name, email,
			is_active, creation_date, last_modification_date, role_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.db.GetContext(ctx, &user.ID, stmt,
		user.UserName, user.HashedPassword, user.FirstName, user.LastName,
		user.Email, user.IsActive, user.CreationDate, user.LastModificationDate,
		user.RoleID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	stmt := `
		UPDATE users
		SET user_name = $1,
			hashed_password = $2,
			first_name = $3,
			last_name = $4,
			email = $5,
			is_active = $6,
			last_modification_date = $7,
			role_id = $8
		WHERE id = $9`

	result, err := r.db.ExecContext(ctx, stmt,
		user.UserName, user.HashedPassword, user.FirstName, user.LastName,
		user.Email, user.IsActive, user.LastModificationDate, user.RoleID,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count == 0, nil
}
