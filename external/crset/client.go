package crset

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-analyst/internal/domain/standing"
	"github.com/riskibarqy/match-analyst/internal/platform/httpclient"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/riskibarqy/match-analyst/internal/platform/resilience"
)

const DefaultBaseURL = "https://crset.vercel.app/api/standings"

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads league tables from the CRSET standings API.
type Client struct {
	http   *httpclient.Client
	logger *logging.Logger
}

var _ standing.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "crset",
			BaseURL:        baseURL,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryBackoff:   cfg.RetryBackoff,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		logger: logger,
	}
}

type standingsEnvelope struct {
	Standings []map[string]any `json:"standings"`
}

// Standings fetches GET {base}/{league}/{season}. Blank arguments fall back
// to PL 2023. Any failure yields an empty slice.
func (c *Client) Standings(ctx context.Context, league, season string) []standing.Row {
	league = strings.ToUpper(strings.TrimSpace(league))
	if league == "" {
		league = standing.DefaultLeague
	}
	season = strings.TrimSpace(season)
	if season == "" {
		season = standing.DefaultSeason
	}

	var envelope standingsEnvelope
	if err := c.http.GetJSON(ctx, []string{league, season}, nil, &envelope); err != nil {
		c.logger.WarnContext(ctx, "standings lookup failed", "league", league, "season", season, "error", err)
		return []standing.Row{}
	}

	out := make([]standing.Row, 0, len(envelope.Standings))
	for _, item := range envelope.Standings {
		if item == nil {
			continue
		}
		out = append(out, standing.Row{
			Position: intField(item, "position", "rank"),
			Team:     teamName(item["team"]),
			Points:   intField(item, "points", "pts"),
		})
	}
	return out
}

func teamName(raw any) string {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed)
	case map[string]any:
		if name, ok := typed["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

func intField(src map[string]any, keys ...string) int {
	for _, key := range keys {
		switch typed := src[key].(type) {
		case float64:
			return int(typed)
		case int:
			return typed
		case int64:
			return int(typed)
		case string:
			if v, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
				return v
			}
		}
	}
	return 0
}
