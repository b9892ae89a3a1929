package routes

import (
	"time"

	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/handlers"
	"github.com/Leestalion/quittance/internal/metrics"
	"github.com/Leestalion/quittance/internal/middleware"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	m *metrics.Metrics,
	plugins []modules.Plugin,
) {
	// Prometheus scrape endpoint, outside the rate-limited API
	app.Get("/metrics", m.Handler())

	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.JWTProtected(cfg), middleware.Identity(), authHandler.Me)

	// Resource modules share the /api prefix with the public routes above.
	// Fiber matches in registration order, so this group must stay last.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.Identity())
	for _, p := range plugins {
		p.RegisterRoutes(protected, db, cfg)
	}
}
