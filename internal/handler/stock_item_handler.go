package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/service"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/validator"
)

type StockItemHandler struct {
	stockItemService *service.StockItemService
	validator        *validator.Validator
}

func NewStockItemHandler(stockItemService *service.StockItemService, validator *validator.Validator) *StockItemHandler {
	return &StockItemHandler{
		stockItemService: stockItemService,
		validator:        validator,
	}
}

// GetStockItem retrieves a single stock item with its category.
// GET /api/v1/stock-items/:id
func (h *StockItemHandler) GetStockItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	item, err := h.stockItemService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

// ListStockItems returns a filtered, sorted page of stock items.
// GET /api/v1/stock-items
func (h *StockItemHandler) ListStockItems(c *fiber.Ctx) error {
	var filter repository.StockItemFilter
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := h.validator.Validate(filter); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.stockItemService.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// CreateStockItem creates a stock item in an existing category.
// POST /api/v1/stock-items
func (h *StockItemHandler) CreateStockItem(c *fiber.Ctx) error {
	var req service.CreateStockItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	item, err := h.stockItemService.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateStockItem applies a partial update to a stock item.
// PUT /api/v1/stock-items/:id
func (h *StockItemHandler) UpdateStockItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req service.UpdateStockItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if _, err := h.stockItemService.Update(c.Context(), id, req); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteStockItem removes a stock item.
// DELETE /api/v1/stock-items/:id
func (h *StockItemHandler) DeleteStockItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.stockItemService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
