package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
)

// MatchRepository serves a fixed in-memory collection.
type MatchRepository struct {
	mu      sync.RWMutex
	records []match.Record
}

var _ match.Source = (*MatchRepository)(nil)

func NewMatchRepository(records []match.Record) *MatchRepository {
	return &MatchRepository{records: append([]match.Record(nil), records...)}
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

func (r *MatchRepository) Replace(records []match.Record) {
	r.mu.Lock()
	r.records = append([]match.Record(nil), records...)
	r.mu.Unlock()
}
