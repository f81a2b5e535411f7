package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/middleware"
	"github.com/shopcore/backend/internal/services"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return badRequest(c, "Invalid item id")
	}

	item, err := h.cartService.AddToCart(middleware.UserID(c), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	cartItemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid cart item id")
	}

	item, err := h.cartService.RemoveFromCart(cartItemID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": item.ID})
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	items, err := h.cartService.Cart(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
