package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/match-analyst/internal/domain/archive"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
)

type groupKey struct {
	season     string
	leagueFile string
}

// ArchiveRepository keeps archived groups in memory. Listing orders groups
// by season then league file, matching the Postgres archive.
type ArchiveRepository struct {
	mu     sync.RWMutex
	groups map[groupKey][]match.Record
	runs   []archive.Run
}

var (
	_ match.Source       = (*ArchiveRepository)(nil)
	_ archive.Repository = (*ArchiveRepository)(nil)
)

func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{groups: make(map[groupKey][]match.Record)}
}

func (r *ArchiveRepository) ReplaceGroup(_ context.Context, _ string, group archive.Group) error {
	r.mu.Lock()
	r.groups[groupKey{season: group.Season, leagueFile: group.FileKey()}] = append([]match.Record(nil), group.Records...)
	r.mu.Unlock()
	return nil
}

func (r *ArchiveRepository) SaveRun(_ context.Context, run archive.Run) error {
	r.mu.Lock()
	r.runs = append(r.runs, run)
	r.mu.Unlock()
	return nil
}

func (r *ArchiveRepository) LatestRun(_ context.Context) (archive.Run, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest archive.Run
		found  bool
	)
	for _, run := range r.runs {
		if !found || run.StartedAt.After(latest.StartedAt) {
			latest, found = run, true
		}
	}
	return latest, found, nil
}

func (r *ArchiveRepository) Runs() []archive.Run {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]archive.Run(nil), r.runs...)
}

func (r *ArchiveRepository) ListMatches(_ context.Context) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]groupKey, 0, len(r.groups))
	total := 0
	for key, records := range r.groups {
		keys = append(keys, key)
		total += len(records)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].season != keys[j].season {
			return keys[i].season < keys[j].season
		}
		return keys[i].leagueFile < keys[j].leagueFile
	})

	out := make([]match.Record, 0, total)
	for _, key := range keys {
		out = append(out, r.groups[key]...)
	}
	return out, nil
}
