package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

// Invalidator drops a memoized match collection.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// ReloadService forces the served match collection to be read again.
type ReloadService struct {
	cache  Invalidator
	source match.Source
	logger *logging.Logger
}

func NewReloadService(cache Invalidator, source match.Source, logger *logging.Logger) *ReloadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReloadService{cache: cache, source: source, logger: logger}
}

// Reload invalidates the cache and warms it again, returning the number of
// records now served.
func (s *ReloadService) Reload(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReloadService.Reload")
	defer span.End()

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	records, err := s.source.ListMatches(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: reload matches: %v", ErrDependencyUnavailable, err)
	}
	s.logger.InfoContext(ctx, "match collection reloaded", "records", len(records))
	return len(records), nil
}
