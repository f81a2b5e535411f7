package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/middleware"
	"github.com/shopcore/backend/internal/services"
)

type AuthHandler struct {
	authService  *services.AuthService
	resetService *services.PasswordResetService
}

func NewAuthHandler(authService *services.AuthService, resetService *services.PasswordResetService) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		return respondError(c, err)
	}

	applySessionCookie(c, resp.Cookie)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Signin(&req)
	if err != nil {
		return respondError(c, err)
	}

	applySessionCookie(c, resp.Cookie)
	return c.JSON(resp)
}

func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	resp := h.authService.Signout()
	applySessionCookie(c, resp.Cookie)
	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.Me(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *AuthHandler) RequestReset(c *fiber.Ctx) error {
	var req dto.ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.resetService.RequestReset(req.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.resetService.ResetPassword(&req)
	if err != nil {
		return respondError(c, err)
	}

	applySessionCookie(c, resp.Cookie)
	return c.JSON(resp)
}
