package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/services"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrAuthRequired),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrPayment):
		return fiber.StatusPaymentRequired
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a service failure to a status code. Store failures are
// not exposed to clients.
func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// applySessionCookie writes the cookie directive the core returned. A
// negative MaxAge clears the cookie.
func applySessionCookie(c *fiber.Ctx, ck dto.SessionCookie) {
	cookie := &fiber.Cookie{
		Name:     ck.Name,
		Value:    ck.Value,
		Path:     "/",
		HTTPOnly: ck.HTTPOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if ck.MaxAge < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Now().Add(-time.Hour)
	} else {
		cookie.MaxAge = int(ck.MaxAge.Seconds())
		cookie.Expires = time.Now().Add(ck.MaxAge)
	}
	c.Cookie(cookie)
}
