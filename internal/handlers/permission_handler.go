package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/middleware"
	"github.com/shopcore/backend/internal/models"
	"github.com/shopcore/backend/internal/services"
)

type PermissionHandler struct {
	permissionService *services.PermissionService
}

func NewPermissionHandler(permissionService *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

func (h *PermissionHandler) UpdatePermissions(c *fiber.Ctx) error {
	var req dto.UpdatePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	perms := make([]models.Permission, len(req.Permissions))
	for i, p := range req.Permissions {
		perms[i] = models.Permission(p)
	}

	user, err := h.permissionService.UpdatePermissions(middleware.UserID(c), targetID, perms)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *PermissionHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.permissionService.Users(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}

	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.NewUserResponse(&users[i])
	}
	return c.JSON(resp)
}
