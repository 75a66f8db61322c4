package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/config"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/hash"
)

// Seeder creates the initial Admin role and account on first start.
type Seeder struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	categories repository.CategoryRepository
	items      repository.StockItemRepository
	admin      config.AdminConfig
	log        zerolog.Logger
}

func NewSeeder(
	users repository.UserRepository,
	roles repository.RoleRepository,
	categories repository.CategoryRepository,
	items repository.StockItemRepository,
	admin config.AdminConfig,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:      users,
		roles:      roles,
		categories: categories,
		items:      items,
		admin:      admin,
		log:        log,
	}
}

// Run seeds the Admin role and user, but only when every table is
// empty. A database that holds any data at all is left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	empty, err := s.databaseEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check database state: %w", err)
	}
	if !empty {
		s.log.Debug().Msg("database not empty, skipping seed")
		return nil
	}

	now := time.Now()
	role := &domain.Role{
		Name:                 "Admin",
		CreationDate:         now,
		LastModificationDate: now,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}

	hashed, err := hash.HashPassword(s.admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &domain.User{
		UserName:             s.admin.UserName,
		HashedPassword:       hashed,
		FirstName:            s.admin.FirstName,
		LastName:             s.admin.LastName,
		Email:                s.admin.Email,
		IsActive:             true,
		CreationDate:         now,
		LastModificationDate: now,
		RoleID:               role.ID,
		Role:                 *role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	s.log.Info().Str("user_name", user.UserName).Msg("seeded admin account")
	return nil
}

func (s *Seeder) databaseEmpty(ctx context.Context) (bool, error) {
	checks := []func(context.Context) (bool, error){
		s.users.IsEmpty,
		s.roles.IsEmpty,
		s.categories.IsEmpty,
		s.items.IsEmpty,
	}

	for _, check := range checks {
		empty, err := check(ctx)
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}

	return true, nil
}
