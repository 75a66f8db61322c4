package domain

import "github.com/golang-jwt/jwt/v5"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// RoleClaim is the role snapshot embedded in a token. It identifies which
// role row to re-fetch; it is never trusted as current truth on its own.
type RoleClaim struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Claims is the signed claim set carried by both access and refresh
// tokens. TokenType distinguishes the two kinds; every consumer must check
// it against the kind it expects.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64     `json:"uid"`
	Role      RoleClaim `json:"role"`
	TokenType string    `json:"token_type"`
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Principal is the authenticated identity resolved from an access token,
// re-validated against storage on every request.
type Principal struct {
	ID       int64     `json:"id"`
	UserName string    `json:"user_name"`
	Role     RoleClaim `json:"role"`
}
