package handler

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the backend.
var Metrics = struct {
	QueriesTotal     *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	PipelineDuration prometheus.Histogram
	ResultsReturned  prometheus.Histogram
}{}

var metricsOnce sync.Once

// InitMetrics registers all Prometheus metrics. Safe to call more than once;
// registration happens on the first call.
func InitMetrics() {
	metricsOnce.Do(func() {
		Metrics.QueriesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytscraper_queries_total",
				Help: "Total recommendation queries, by outcome.",
			},
			[]string{"outcome"},
		)

		Metrics.RequestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ytscraper_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by endpoint and method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method", "status"},
		)

		Metrics.RequestsInFlight = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ytscraper_requests_in_flight",
				Help: "Number of HTTP requests currently being served.",
			},
		)

		Metrics.PipelineDuration = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ytscraper_pipeline_duration_seconds",
				Help:    "Duration of the search-and-score pipeline.",
				Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
			},
		)

		Metrics.ResultsReturned = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ytscraper_results_returned",
				Help:    "Number of recommendations returned per query.",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		)

		prometheus.MustRegister(
			Metrics.QueriesTotal,
			Metrics.RequestDuration,
			Metrics.RequestsInFlight,
			Metrics.PipelineDuration,
			Metrics.ResultsReturned,
		)
	})
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(path, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
