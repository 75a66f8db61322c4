package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/config"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/handler"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/handler/middleware"
	applog "github.com/Kamil-Tarka/StockManagerAPI/internal/log"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository/postgres"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/service"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/jwt"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := applog.New(cfg.Server.Environment)

	db, err := initDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("close database connection")
		}
	}()
	log.Info().Msg("database connection established")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("schema migrations applied")

	tokenService, err := jwt.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	validate := validator.NewValidator()

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	stockItemRepo := postgres.NewStockItemRepository(db)

	seeder := service.NewSeeder(userRepo, roleRepo, categoryRepo, stockItemRepo, cfg.Admin, log)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	authService := service.NewAuthService(userRepo, roleRepo, tokenService)
	userService := service.NewUserService(userRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	stockItemService := service.NewStockItemService(stockItemRepo, categoryRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	roleHandler := handler.NewRoleHandler(roleService, validate)
	categoryHandler := handler.NewCategoryHandler(categoryService, validate)
	stockItemHandler := handler.NewStockItemHandler(stockItemService, validate)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:      "Stock Manager API v1.0",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(middleware.Recovery(log))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(middleware.CORSMiddleware())

	authMiddleware := middleware.AuthMiddleware(authService)
	requireAdmin := middleware.RequireAdmin()

	handler.SetupRoutes(
		app,
		authHandler,
		userHandler,
		roleHandler,
		categoryHandler,
		stockItemHandler,
		healthHandler,
		authMiddleware,
		requireAdmin,
	)

	go func() {
		addr := ":" + cfg.Server.Port
		log.Info().
			Str("addr", addr).
			Str("environment", cfg.Server.Environment).
			Msg("server starting")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server failed to start")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// initDB connects to PostgreSQL with retries so the service survives a
// database that comes up slightly later than the process.
func initDB(cfg *config.Config, log zerolog.Logger) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", i+1).
			Int("max_attempts", maxRetries).
			Msg("failed to connect to database")
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("connect to database after %d attempts: %w", maxRetries, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
