package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/smd67/youtube-scraper/internal/model"
	"github.com/smd67/youtube-scraper/internal/service"
	"github.com/smd67/youtube-scraper/internal/youtube"
)

// stubAPI is a canned upstream for handler tests.
type stubAPI struct {
	videos    []model.VideoRecord
	stats     map[string]model.ChannelStats
	comments  map[string][]string
	searchErr error
}

func (s *stubAPI) SearchVideos(ctx context.Context, query string) ([]model.VideoRecord, error) {
	return s.videos, s.searchErr
}

func (s *stubAPI) ChannelStatsBatch(ctx context.Context, channelIDs []string) (map[string]model.ChannelStats, error) {
	return s.stats, nil
}

func (s *stubAPI) VideoComments(ctx context.Context, videoID string) ([]string, error) {
	return s.comments[videoID], nil
}

func newTestApp(api service.SearchAPI) *fiber.App {
	InitMetrics()
	svc := service.NewRecommendService(api, service.NewSentimentService(), service.NewSimilarityService(), 20)
	h := NewQueryHandler(svc, 5*time.Second)

	app := fiber.New()
	app.Post("/query/", h.Run)
	return app
}

func postQuery(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/query/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, payload
}

func TestQueryEndpoint(t *testing.T) {
	app := newTestApp(&stubAPI{
		videos: []model.VideoRecord{
			{VideoID: "v1", ChannelID: "UC1", Title: "Pasta from scratch", URL: "https://www.youtube.com/watch?v=v1"},
		},
		stats: map[string]model.ChannelStats{
			"UC1": {ChannelID: "UC1", Description: "cooking tutorials", Videos: 12, Subscribers: 3400},
		},
		comments: map[string][]string{
			"v1": {"Great recipe, thanks!"},
		},
	})

	status, payload := postQuery(t, app, `{"query_string": "cooking tutorials"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", status, payload)
	}

	var results []map[string]any
	if err := json.Unmarshal(payload, &results); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	entry := results[0]
	for _, field := range []string{"Title", "Url", "Videos", "Subscribers", "Score", "Similarity"} {
		if _, ok := entry[field]; !ok {
			t.Errorf("response entry missing field %q: %v", field, entry)
		}
	}
	if entry["Title"] != "Pasta from scratch" {
		t.Errorf("Title = %v", entry["Title"])
	}
	if entry["Videos"].(float64) != 12 || entry["Subscribers"].(float64) != 3400 {
		t.Errorf("stats = %v/%v, want 12/3400", entry["Videos"], entry["Subscribers"])
	}
}

func TestQueryEndpoint_EmptyResultIs200(t *testing.T) {
	app := newTestApp(&stubAPI{})

	status, payload := postQuery(t, app, `{"query_string": "never matches XYZ123"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got := strings.TrimSpace(string(payload)); got != "[]" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestQueryEndpoint_ValidationErrors(t *testing.T) {
	app := newTestApp(&stubAPI{})

	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"empty string", `{"query_string": ""}`},
		{"whitespace", `{"query_string": "   "}`},
		{"not json", `query_string=dodgers`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := postQuery(t, app, tt.body)
			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %s)", status, payload)
			}
		})
	}
}

func TestQueryEndpoint_UpstreamFailureIs502(t *testing.T) {
	app := newTestApp(&stubAPI{searchErr: youtube.ErrUpstreamUnavailable})

	status, payload := postQuery(t, app, `{"query_string": "anything"}`)
	if status != fiber.StatusBadGateway {
		t.Fatalf("status = %d, want 502", status)
	}
	if !strings.Contains(string(payload), "UPSTREAM_UNAVAILABLE") {
		t.Errorf("body = %s, want UPSTREAM_UNAVAILABLE error code", payload)
	}
}
