package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/match-analyst/internal/domain/archive"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/platform/id"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

const defaultArchiveWorkers = 4

// CorpusLoader walks a match corpus on disk.
type CorpusLoader interface {
	LoadDetailed(ctx context.Context, basePath string) match.Corpus
}

// ArchiveService copies the raw corpus into the archive repository, one
// (season, league) group per worker task.
type ArchiveService struct {
	loader  CorpusLoader
	repo    archive.Repository
	ids     id.Generator
	workers int
	logger  *logging.Logger
	now     func() time.Time

	running atomic.Bool
}

func NewArchiveService(loader CorpusLoader, repo archive.Repository, ids id.Generator, workers int, logger *logging.Logger) *ArchiveService {
	if workers < 1 {
		workers = defaultArchiveWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &ArchiveService{
		loader:  loader,
		repo:    repo,
		ids:     ids,
		workers: workers,
		logger:  logger,
		now:     time.Now,
	}
}

// Import loads basePath and replaces the archived rows of every group found.
// Failed groups are counted and logged; the run itself only fails when no
// group could be written or the run summary cannot be saved.
func (s *ArchiveService) Import(ctx context.Context, basePath string) (archive.Run, error) {
	if !s.running.CompareAndSwap(false, true) {
		return archive.Run{}, fmt.Errorf("%w: an archive import is already running", ErrInvalidInput)
	}
	defer s.running.Store(false)

	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.Import")
	defer span.End()

	runID, err := s.ids.NewID()
	if err != nil {
		return archive.Run{}, fmt.Errorf("generate import run id: %w", err)
	}

	run := archive.Run{
		ID:        runID,
		BasePath:  strings.TrimSpace(basePath),
		StartedAt: s.now().UTC(),
	}
	logger := s.logger.With("import_run_id", runID)

	corpus := s.loader.LoadDetailed(ctx, basePath)
	run.Seasons = corpus.Seasons
	run.FilesLoaded = corpus.FilesLoaded
	run.FilesSkipped = corpus.FilesSkipped

	groups := archive.GroupRecords(corpus.Records)
	run.Groups = len(groups)

	var failed atomic.Int32
	var written atomic.Int32
	if len(groups) > 0 {
		pool, err := ants.NewPool(min(s.workers, len(groups)))
		if err != nil {
			return archive.Run{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		var workers sync.WaitGroup
		for _, group := range groups {
			group := group
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				if err := s.repo.ReplaceGroup(ctx, runID, group); err != nil {
					failed.Add(1)
					logger.ErrorContext(ctx, "archive group failed",
						"season", group.Season,
						"league", group.League,
						"league_file", group.FileKey(),
						"error", err,
					)
					return
				}
				written.Add(int32(len(group.Records)))
			}); err != nil {
				workers.Done()
				failed.Add(1)
				logger.ErrorContext(ctx, "submit archive group failed", "season", group.Season, "league_file", group.FileKey(), "error", err)
			}
		}
		workers.Wait()
	}

	run.GroupsFailed = int(failed.Load())
	run.Records = int(written.Load())
	run.FinishedAt = s.now().UTC()

	if run.Groups > 0 && run.GroupsFailed == run.Groups {
		return run, fmt.Errorf("%w: every archive group failed", ErrDependencyUnavailable)
	}
	if err := s.repo.SaveRun(ctx, run); err != nil {
		return run, fmt.Errorf("%w: save import run: %v", ErrDependencyUnavailable, err)
	}

	logger.InfoContext(ctx, "archive import finished",
		"groups", run.Groups,
		"groups_failed", run.GroupsFailed,
		"records", run.Records,
		"files_skipped", run.FilesSkipped,
		"duration_ms", run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	)
	return run, nil
}

// LatestRun returns the most recent import summary.
func (s *ArchiveService) LatestRun(ctx context.Context) (archive.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.LatestRun")
	defer span.End()

	run, ok, err := s.repo.LatestRun(ctx)
	if err != nil {
		return archive.Run{}, fmt.Errorf("%w: latest import run: %v", ErrDependencyUnavailable, err)
	}
	if !ok {
		return archive.Run{}, fmt.Errorf("%w: no archive import has run yet", ErrNotFound)
	}
	return run, nil
}
