package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/service"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/validator"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	validator       *validator.Validator
}

func NewCategoryHandler(categoryService *service.CategoryService, validator *validator.Validator) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

// GetCategory retrieves a single item category.
// GET /api/v1/item-categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	category, err := h.categoryService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(category)
}

// ListCategories returns a filtered, sorted page of item categories.
// GET /api/v1/item-categories
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	var filter repository.CategoryFilter
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := h.validator.Validate(filter); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.categoryService.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// CreateCategory creates a new item category.
// POST /api/v1/item-categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	category, err := h.categoryService.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory applies a partial update to an item category.
// PUT /api/v1/item-categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req service.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if _, err := h.categoryService.Update(c.Context(), id, req); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCategory removes an item category.
// DELETE /api/v1/item-categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.categoryService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
