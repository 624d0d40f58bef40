package newsapi

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/match-analyst/internal/domain/news"
	"github.com/riskibarqy/match-analyst/internal/platform/httpclient"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/riskibarqy/match-analyst/internal/platform/resilience"
)

const DefaultBaseURL = "https://football-news-api.onrender.com/news"

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client searches football headlines.
type Client struct {
	http   *httpclient.Client
	logger *logging.Logger
}

var _ news.Searcher = (*Client)(nil)

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
			Name:           "newsapi",
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

type articlesEnvelope struct {
	Articles []map[string]any `json:"articles"`
}

// Search returns the first limit articles for query. A blank query lists the
// latest headlines. Any failure yields an empty slice.
func (c *Client) Search(ctx context.Context, query string, limit int) []news.Article {
	if limit <= 0 {
		return []news.Article{}
	}

	var params []httpclient.Param
	if q := strings.TrimSpace(query); q != "" {
		params = append(params, httpclient.Param{Key: "q", Value: q})
	}

	var envelope articlesEnvelope
	if err := c.http.GetJSON(ctx, nil, params, &envelope); err != nil {
		c.logger.WarnContext(ctx, "news search failed", "query", query, "error", err)
		return []news.Article{}
	}

	items := envelope.Articles
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]news.Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, news.Article{
			Title:       firstString(item, "title", "headline"),
			Source:      sourceName(item),
			PublishedAt: firstString(item, "publishedAt", "published"),
			URL:         firstString(item, "url"),
		})
	}
	return out
}

func firstString(src map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := src[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// sourceName accepts "source":"ESPN", "source":{"name":"ESPN"} or "sourceName".
func sourceName(src map[string]any) string {
	if obj, ok := src["source"].(map[string]any); ok {
		if name := firstString(obj, "name"); name != "" {
			return name
		}
	}
	return firstString(src, "source", "sourceName")
}
