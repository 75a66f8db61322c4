// Package handler wires the HTTP surface: request parsing, validation
// and a uniform mapping from domain errors to status codes.
package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/domain"
)

// statusFromError maps the domain error taxonomy to HTTP status codes.
// Unrecognized errors are treated as internal failures.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrStockItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrRoleExists),
		errors.Is(err, domain.ErrCategoryExists),
		errors.Is(err, domain.ErrStockItemExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUserDisabled),
		errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrWrongTokenType),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrWrongUsername),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidArgument):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
