package domain

import "time"

// User is an account that can authenticate against the API. The Role field
// is populated from a join on every read so callers always see the current
// role, never a stale snapshot.
type User struct {
	ID                   int64     `json:"id" db:"id"`
	UserName             string    `json:"user_name" db:"user_name"`
	HashedPassword       string    `json:"-" db:"hashed_password"`
	FirstName            string    `json:"first_name" db:"first_name"`
	LastName             string    `json:"last_name" db:"last_name"`
	Email                string    `json:"email" db:"email"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	CreationDate         time.Time `json:"creation_date" db:"creation_date"`
	LastModificationDate time.Time `json:"last_modification_date" db:"last_modification_date"`
	RoleID               int64     `json:"-" db:"role_id"`
	Role                 Role      `json:"role" db:"role"`
}
