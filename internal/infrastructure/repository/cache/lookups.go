package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/match-analyst/internal/domain/news"
	"github.com/riskibarqy/match-analyst/internal/domain/standing"
	basecache "github.com/riskibarqy/match-analyst/internal/platform/cache"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

// StandingProvider caches non-empty tables of the next provider.
type StandingProvider struct {
	next    standing.Provider
	backend basecache.Backend
	ttl     time.Duration
	logger  *logging.Logger
}

var _ standing.Provider = (*StandingProvider)(nil)

func NewStandingProvider(next standing.Provider, backend basecache.Backend, ttl time.Duration, logger *logging.Logger) *StandingProvider {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingProvider{next: next, backend: backend, ttl: ttl, logger: logger}
}

func (p *StandingProvider) Standings(ctx context.Context, league, season string) []standing.Row {
	key := "standings:" + strings.ToUpper(strings.TrimSpace(league)) + ":" + strings.TrimSpace(season)

	var cached []standing.Row
	if readCached(ctx, p.backend, p.logger, key, &cached) {
		return cached
	}

	rows := p.next.Standings(ctx, league, season)
	writeCached(ctx, p.backend, p.logger, key, rows, len(rows), p.ttl)
	return rows
}

// NewsSearcher caches non-empty search results of the next searcher.
type NewsSearcher struct {
	next    news.Searcher
	backend basecache.Backend
	ttl     time.Duration
	logger  *logging.Logger
}

var _ news.Searcher = (*NewsSearcher)(nil)

func NewNewsSearcher(next news.Searcher, backend basecache.Backend, ttl time.Duration, logger *logging.Logger) *NewsSearcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &NewsSearcher{next: next, backend: backend, ttl: ttl, logger: logger}
}

func (s *NewsSearcher) Search(ctx context.Context, query string, limit int) []news.Article {
	key := "news:" + strings.ToLower(strings.TrimSpace(query)) + ":" + strconv.Itoa(limit)

	var cached []news.Article
	if readCached(ctx, s.backend, s.logger, key, &cached) {
		return cached
	}

	articles := s.next.Search(ctx, query, limit)
	writeCached(ctx, s.backend, s.logger, key, articles, len(articles), s.ttl)
	return articles
}

func readCached(ctx context.Context, backend basecache.Backend, logger *logging.Logger, key string, target any) bool {
	raw, ok, err := backend.GetBytes(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "lookup cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		logger.WarnContext(ctx, "lookup cache entry undecodable", "key", key, "error", err)
		_ = backend.Remove(ctx, key)
		return false
	}
	return true
}

// writeCached skips empty results so a failed lookup is retried next time.
func writeCached(ctx context.Context, backend basecache.Backend, logger *logging.Logger, key string, value any, size int, ttl time.Duration) {
	if size == 0 {
		return
	}
	raw, err := sonic.Marshal(value)
	if err != nil {
		logger.WarnContext(ctx, "lookup cache encode failed", "key", key, "error", err)
		return
	}
	if err := backend.SetBytes(ctx, key, raw, ttl); err != nil {
		logger.WarnContext(ctx, "lookup cache write failed", "key", key, "error", err)
	}
}
