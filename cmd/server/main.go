package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/smd67/youtube-scraper/internal/config"
	"github.com/smd67/youtube-scraper/internal/handler"
	"github.com/smd67/youtube-scraper/internal/middleware"
	"github.com/smd67/youtube-scraper/internal/router"
	"github.com/smd67/youtube-scraper/internal/service"
	"github.com/smd67/youtube-scraper/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "youtube-scraper")
	handler.InitMetrics()

	ctx := context.Background()
	client, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, cfg.SearchMaxResults, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatalf("failed to create youtube client: %v", err)
	}

	recommendSvc := service.NewRecommendService(
		client,
		service.NewSentimentService(),
		service.NewSimilarityService(),
		cfg.MaxRecommendations,
	)

	app := fiber.New(fiber.Config{
		AppName:      "youtube-scraper API",
		ServerHeader: "youtube-scraper",
	})

	router.Setup(app, &router.Handlers{
		Query:  handler.NewQueryHandler(recommendSvc, cfg.QueryTimeout),
		Health: handler.NewHealthHandler(cfg.YouTubeAPIKey != ""),
	}, cfg.CORSOrigins)

	log.Printf("youtube-scraper backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
