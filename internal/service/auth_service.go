package service

import (
	"context"
	"fmt"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/hash"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/jwt"
)

// LoginRequest carries the credentials presented at the token endpoint.
type LoginRequest struct {
	UserName string `json:"user_name" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthService issues and resolves tokens. Token contents are never
// trusted as current truth: every use re-fetches the user and role so
// deactivation, deletion, renames and role changes take effect at once.
type AuthService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	tokens *jwt.TokenService
}

func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, tokens *jwt.TokenService) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens}
}

// VerifyCredentials checks a username/password pair. Failures are
// reported in a fixed order: unknown user, then disabled account, then
// wrong password.
func (s *AuthService) VerifyCredentials(ctx context.Context, userName, password string) (*domain.User, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserDisabled
	}

	ok, err := hash.VerifyPassword(password, user.HashedPassword)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, domain.ErrWrongPassword
	}

	return user, nil
}

// Login verifies the credentials and issues a fresh token pair.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.TokenPair, error) {
	user, err := s.VerifyCredentials(ctx, req.UserName, req.Password)
	if err != nil {
		return nil, err
	}

	return s.tokens.GenerateTokenPair(user)
}

// Refresh exchanges a valid refresh token for a new pair. The user and
// role are re-fetched and every claim is re-checked against the current
// rows; a stale role name or username in the token invalidates it. The
// old refresh token stays valid until it expires, there is no
// server-side revocation.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*domain.TokenPair, error) {
	claims, err := s.tokens.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != domain.TokenTypeRefresh {
		return nil, domain.ErrWrongTokenType
	}

	user, err := s.verifyClaims(ctx, claims)
	if err != nil {
		return nil, err
	}

	return s.tokens.GenerateTokenPair(user)
}

// CurrentPrincipal resolves an access token into the acting principal.
// Refresh tokens are rejected here; they only buy new pairs.
func (s *AuthService) CurrentPrincipal(ctx context.Context, accessToken string) (*domain.Principal, error) {
	claims, err := s.tokens.ValidateToken(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != domain.TokenTypeAccess {
		return nil, domain.ErrWrongTokenType
	}

	user, err := s.verifyClaims(ctx, claims)
	if err != nil {
		return nil, err
	}

	return &domain.Principal{
		ID:       user.ID,
		UserName: user.UserName,
		Role: domain.RoleClaim{
			ID:   user.Role.ID,
			Name: user.Role.Name,
		},
	}, nil
}

// verifyClaims re-fetches the user and role referenced by the claims and
// checks them against the token snapshot.
func (s *AuthService) verifyClaims(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserDisabled
	}

	role, err := s.roles.GetByID(ctx, claims.Role.ID)
	if err != nil {
		return nil, domain.ErrInvalidRole
	}
	if role.Name != claims.Role.Name {
		return nil, domain.ErrInvalidRole
	}

	if user.UserName != claims.Subject {
		return nil, domain.ErrWrongUsername
	}

	return user, nil
}
