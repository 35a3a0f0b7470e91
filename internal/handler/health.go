package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	apiKeySet bool
	startAt   time.Time
}

func NewHealthHandler(apiKeySet bool) *HealthHandler {
	return &HealthHandler{
		apiKeySet: apiKeySet,
		startAt:   time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe. The upstream check is
// configuration-only: probing the Data API for real would spend quota on
// every poll.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	checks := make(fiber.Map)
	overallStatus := "healthy"

	if h.apiKeySet {
		checks["youtube_api"] = fiber.Map{"status": "configured"}
	} else {
		checks["youtube_api"] = fiber.Map{
			"status": "unconfigured",
			"error":  "DEVELOPER_KEY is not set",
		}
		overallStatus = "degraded"
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
		"version":        "1.0.0",
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}
