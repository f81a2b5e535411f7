package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/internal/handlers"
	"github.com/shopcore/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	itemHandler *handlers.ItemHandler,
	permissionHandler *handlers.PermissionHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Post("/signout", authHandler.Signout)
	auth.Post("/request-reset", authHandler.RequestReset)
	auth.Post("/reset", authHandler.ResetPassword)

	// Everything below requires a verified session token
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/me", authHandler.Me)
	protected.Get("/users", permissionHandler.ListUsers)
	protected.Put("/users/permissions", permissionHandler.UpdatePermissions)

	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart", cartHandler.AddToCart)
	protected.Delete("/cart/:id", cartHandler.RemoveFromCart)

	protected.Post("/checkout", checkoutHandler.Checkout)
	protected.Get("/orders", checkoutHandler.ListOrders)
	protected.Get("/orders/:id", checkoutHandler.GetOrder)

	protected.Post("/items", itemHandler.CreateItem)
	protected.Put("/items/:id", itemHandler.UpdateItem)
	protected.Delete("/items/:id", itemHandler.DeleteItem)
}
