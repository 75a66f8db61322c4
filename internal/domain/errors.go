package domain

import "errors"

// Failure taxonomy for the whole service. Every operation surfaces one of
// these sentinels (wrapped with context where useful); the HTTP layer maps
// them to status codes and nothing in between swallows them.
var (
	// Lookups.
	ErrUserNotFound      = errors.New("user not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrCategoryNotFound  = errors.New("item category not found")
	ErrStockItemNotFound = errors.New("stock item not found")

	// Uniqueness conflicts.
	ErrUserExists      = errors.New("user already exists")
	ErrRoleExists      = errors.New("role already exists")
	ErrCategoryExists  = errors.New("item category already exists")
	ErrStockItemExists = errors.New("stock item already exists")

	// Authentication.
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrWrongPassword      = errors.New("wrong password")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrInvalidRole        = errors.New("token role does not match current role")
	ErrWrongUsername      = errors.New("token subject does not match current username")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")

	// Input validation past the DTO layer.
	ErrInvalidArgument = errors.New("invalid argument")
)
