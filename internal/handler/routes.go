package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	roleHandler *RoleHandler,
	categoryHandler *CategoryHandler,
	stockItemHandler *StockItemHandler,
	healthHandler *HealthHandler,
	authMiddleware fiber.Handler,
	requireAdmin fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// API v1
	api := app.Group("/api/v1")

	// Token endpoints (public)
	auth := api.Group("/auth")
	auth.Post("/token", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// User and role management (admin only)
	users := api.Group("/users", authMiddleware, requireAdmin)
	users.Get("/:id", userHandler.GetUser)
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	roles := api.Group("/roles", authMiddleware, requireAdmin)
	roles.Get("/:id", roleHandler.GetRole)
	roles.Get("/", roleHandler.ListRoles)
	roles.Post("/", roleHandler.CreateRole)
	roles.Put("/:id", roleHandler.UpdateRole)
	roles.Delete("/:id", roleHandler.DeleteRole)

	// Inventory (any authenticated user)
	categories := api.Group("/item-categories", authMiddleware)
	categories.Get("/:id", categoryHandler.GetCategory)
	categories.Get("/", categoryHandler.ListCategories)
	categories.Post("/", categoryHandler.CreateCategory)
	categories.Put("/:id", categoryHandler.UpdateCategory)
	categories.Delete("/:id", categoryHandler.DeleteCategory)

	stockItems := api.Group("/stock-items", authMiddleware)
	stockItems.Get("/:id", stockItemHandler.GetStockItem)
	stockItems.Get("/", stockItemHandler.ListStockItems)
	stockItems.Post("/", stockItemHandler.CreateStockItem)
	stockItems.Put("/:id", stockItemHandler.UpdateStockItem)
	stockItems.Delete("/:id", stockItemHandler.DeleteStockItem)
}
