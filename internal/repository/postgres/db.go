package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// schema holds the four tables with role/category foreign keys and the
// natural-key unique constraints the services rely on for conflict
// detection.
const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL UNIQUE,
	creation_date TIMESTAMPTZ NOT NULL,
	last_modification_date TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS item_categories (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL UNIQUE,
	creation_date TIMESTAMPTZ NOT NULL,
	last_modification_date TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	user_name VARCHAR(50) NOT NULL UNIQUE,
	hashed_password VARCHAR(255) NOT NULL,
	first_name VARCHAR(50) NOT NULL,
	last_name VARCHAR(50) NOT NULL,
	email VARCHAR(50) NOT NULL UNIQUE,
	is_active BOOLEAN NOT NULL DEFAULT FALSE,
	creation_date TIMESTAMPTZ NOT NULL,
	last_modification_date TIMESTAMPTZ NOT NULL,
	role_id BIGINT NOT NULL REFERENCES roles (id)
);

CREATE INDEX IF NOT EXISTS idx_users_role_id ON users (role_id);

CREATE TABLE IF NOT EXISTS stock_items (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	quantity INTEGER NOT NULL,
	category_id BIGINT NOT NULL REFERENCES item_categories (id),
	creation_date TIMESTAMPTZ NOT NULL,
	last_modification_date TIMESTAMPTZ NOT NULL,
	description TEXT,
	UNIQUE (name, category_id)
);

CREATE INDEX IF NOT EXISTS idx_stock_items_category_id ON stock_items (category_id);
`

// Migrate applies the schema. All statements are idempotent so running it
// on every startup is safe.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. Services pre-check natural keys, this catches the race where
// two concurrent writers pass the pre-check.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
