package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/smd67/youtube-scraper/internal/middleware"
	"github.com/smd67/youtube-scraper/internal/model"
	"github.com/smd67/youtube-scraper/internal/service"
	"github.com/smd67/youtube-scraper/internal/youtube"
)

type QueryHandler struct {
	svc     *service.RecommendService
	timeout time.Duration
}

// NewQueryHandler wraps the pipeline. timeout bounds one whole query run so
// a slow upstream cannot hold the request forever.
func NewQueryHandler(svc *service.RecommendService, timeout time.Duration) *QueryHandler {
	return &QueryHandler{svc: svc, timeout: timeout}
}

// Run handles POST /query/
func (h *QueryHandler) Run(c fiber.Ctx) error {
	var req model.QueryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	query, errMsg := middleware.ValidateQueryString(req.QueryString)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	results, err := h.svc.Query(ctx, query)
	if err != nil {
		Metrics.QueriesTotal.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, youtube.ErrUpstreamUnavailable):
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE",
				"The video platform API is unavailable or over quota")
		case errors.Is(err, context.DeadlineExceeded):
			return middleware.ErrorResponse(c, fiber.StatusGatewayTimeout, "TIMEOUT",
				"Query did not complete in time")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to run query")
		}
	}

	Metrics.QueriesTotal.WithLabelValues("ok").Inc()
	Metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	Metrics.ResultsReturned.Observe(float64(len(results)))

	return c.JSON(results)
}
