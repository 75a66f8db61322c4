// Package jwt signs and verifies the access/refresh token pair. It is a
// pure codec: no storage, no caller state, just claims in and claims out.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
)

type TokenService struct {
	secret        []byte
	method        jwt.SigningMethod
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewTokenService builds a codec for the configured HMAC algorithm. An
// unknown algorithm name is a construction error, which the caller treats
// as fatal at startup.
func NewTokenService(secret, algorithm string, accessExpiry, refreshExpiry time.Duration) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenService{
		secret:        []byte(secret),
		method:        method,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}, nil
}

// GenerateTokenPair issues an access and a refresh token for the user,
// embedding the current role snapshot. The snapshot only identifies which
// rows to re-fetch on later token use; it is never trusted as current
// truth.
func (s *TokenService) GenerateTokenPair(user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := s.generate(user, domain.TokenTypeAccess, s.accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generate(user, domain.TokenTypeRefresh, s.refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *TokenService) generate(user *domain.User, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserName,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.ID,
		Role: domain.RoleClaim{
			ID:   user.Role.ID,
			Name: user.Role.Name,
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// ValidateToken parses and verifies a token string. Expired tokens map to
// domain.ErrTokenExpired; every other parse or signature failure maps to
// domain.ErrInvalidCredentials. Callers must still check TokenType against
// the kind they expect.
func (s *TokenService) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	return claims, nil
}
