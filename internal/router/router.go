package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/smd67/youtube-scraper/internal/handler"
	"github.com/smd67/youtube-scraper/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Query  *handler.QueryHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (no rate limit, probed by orchestration)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus scrape endpoint
	app.Get("/metrics", handler.MetricsHandler())

	// The query endpoint; trailing slash kept for frontend compatibility
	queryLimiter := middleware.NewQueryRateLimiter()
	app.Post("/query/", h.Query.Run, queryLimiter.Handler())
}
