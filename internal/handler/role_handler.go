package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kamil-Tarka/StockManagerAPI/internal/repository"
	"github.com/Kamil-Tarka/StockManagerAPI/internal/service"
	"github.com/Kamil-Tarka/StockManagerAPI/pkg/validator"
)

type RoleHandler struct {
	roleService *service.RoleService
	validator   *validator.Validator
}

func NewRoleHandler(roleService *service.RoleService, validator *validator.Validator) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		validator:   validator,
	}
}

// GetRole retrieves a single role.
// GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	role, err := h.roleService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(role)
}

// ListRoles returns a filtered, sorted page of roles.
// GET /api/v1/roles
func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	var filter repository.RoleFilter
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if err := h.validator.Validate(filter); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.roleService.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// CreateRole creates a new role.
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req service.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	role, err := h.roleService.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(role)
}

// UpdateRole applies a partial update to a role.
// PUT /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req service.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if _, err := h.roleService.Update(c.Context(), id, req); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteRole removes a role.
// DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.roleService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
