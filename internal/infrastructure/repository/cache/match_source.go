package cache

import (
	"context"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
	basecache "github.com/riskibarqy/match-analyst/internal/platform/cache"
)

const matchesKey = "matches:all"

// MatchSource memoizes the full match collection of the next source.
// Concurrent misses share a single load.
type MatchSource struct {
	next  match.Source
	cache *basecache.Store
}

var _ match.Source = (*MatchSource)(nil)

func NewMatchSource(next match.Source, cache *basecache.Store) *MatchSource {
	return &MatchSource{next: next, cache: cache}
}

func (s *MatchSource) ListMatches(ctx context.Context) ([]match.Record, error) {
	v, err := s.cache.GetOrLoad(ctx, matchesKey, func(ctx context.Context) (any, error) {
		items, err := s.next.ListMatches(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Record)
	return append([]match.Record(nil), items...), nil
}

// Invalidate drops the memoized collection so the next call reloads it.
func (s *MatchSource) Invalidate(ctx context.Context) {
	s.cache.Delete(ctx, matchesKey)
}
