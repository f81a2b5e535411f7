package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/middleware"
	"github.com/shopcore/backend/internal/services"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Token == "" {
		return badRequest(c, "A payment token is required")
	}

	order, err := h.checkoutService.CreateOrder(middleware.UserID(c), req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *CheckoutHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	order, err := h.checkoutService.Order(orderID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *CheckoutHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.checkoutService.Orders(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}
