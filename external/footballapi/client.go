package footballapi

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-analyst/internal/domain/fixture"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/platform/httpclient"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/riskibarqy/match-analyst/internal/platform/resilience"
)

const DefaultBaseURL = "https://football-api-production.up.railway.app/api/v1/matches"

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client lists league matches from the football API.
type Client struct {
	http   *httpclient.Client
	logger *logging.Logger
}

var _ fixture.Provider = (*Client)(nil)

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
			Name:           "footballapi",
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

type matchesEnvelope struct {
	Matches []any `json:"matches"`
}

// Matches fetches ?league=&season=&limit= and normalizes each entry like a
// locally loaded record. The league ID becomes the record's league label.
func (c *Client) Matches(ctx context.Context, leagueID, season, limit int) []match.Record {
	if leagueID <= 0 {
		leagueID = fixture.DefaultLeagueID
	}
	if season <= 0 {
		season = fixture.DefaultSeason
	}
	if limit <= 0 {
		limit = fixture.DefaultLimit
	}

	params := []httpclient.Param{
		{Key: "league", Value: strconv.Itoa(leagueID)},
		{Key: "season", Value: strconv.Itoa(season)},
		{Key: "limit", Value: strconv.Itoa(limit)},
	}

	var envelope matchesEnvelope
	if err := c.http.GetJSON(ctx, nil, params, &envelope); err != nil {
		c.logger.WarnContext(ctx, "fixtures lookup failed", "league", leagueID, "season", season, "error", err)
		return []match.Record{}
	}

	seasonLabel := strconv.Itoa(season)
	leagueLabel := strconv.Itoa(leagueID)
	out := make([]match.Record, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, match.Normalize(seasonLabel, leagueLabel, raw))
	}
	return out
}
