package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/match-analyst/internal/domain/archive"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/infrastructure/loader"
	"github.com/riskibarqy/match-analyst/internal/infrastructure/repository/memory"
	archivemock "github.com/riskibarqy/match-analyst/internal/mocks/domain/archive"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type corpusLoaderStub struct {
	corpus match.Corpus
	block  chan struct{}
	paths  []string
	mu     sync.Mutex
}

func (s *corpusLoaderStub) LoadDetailed(_ context.Context, basePath string) match.Corpus {
	s.mu.Lock()
	s.paths = append(s.paths, basePath)
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	return s.corpus
}

type fixedIDs struct{ id string }

func (g fixedIDs) NewID() (string, error) { return g.id, nil }

func archiveRecord(season, league, home, away string) match.Record {
	return match.Record{Season: season, League: league, HomeTeam: home, AwayTeam: away, Score: &match.Score{Home: 1}}
}

func sampleCorpus() match.Corpus {
	return match.Corpus{
		Records: []match.Record{
			archiveRecord("2022", "Brasileirao", "Flamengo", "Santos"),
			archiveRecord("2022", "Brasileirao", "Bahia", "Vasco"),
			archiveRecord("2022", "Premier League", "Arsenal", "Chelsea"),
			archiveRecord("2023", "Brasileirao", "Santos", "Flamengo"),
		},
		Seasons:      2,
		FilesLoaded:  3,
		FilesSkipped: 1,
	}
}

func newArchiveServiceForTest(loader CorpusLoader, repo archive.Repository) *ArchiveService {
	service := NewArchiveService(loader, repo, fixedIDs{id: "run-1"}, 2, logging.NewNop())
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	service.now = func() time.Time { return start }
	return service
}

func TestArchiveService_ImportReplacesGroups(t *testing.T) {
	t.Parallel()

	loader := &corpusLoaderStub{corpus: sampleCorpus()}
	repo := memory.NewArchiveRepository()
	service := newArchiveServiceForTest(loader, repo)

	run, err := service.Import(context.Background(), " data ")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if run.ID != "run-1" || run.BasePath != "data" {
		t.Fatalf("unexpected run identity: %+v", run)
	}
	if run.Groups != 3 || run.GroupsFailed != 0 || run.Records != 4 {
		t.Fatalf("unexpected run counts: %+v", run)
	}
	if run.Seasons != 2 || run.FilesLoaded != 3 || run.FilesSkipped != 1 {
		t.Fatalf("unexpected corpus counts: %+v", run)
	}

	records, err := repo.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list archived matches: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 archived records, got %d", len(records))
	}
	if runs := repo.Runs(); len(runs) != 1 || runs[0].ID != "run-1" {
		t.Fatalf("expected saved run, got %+v", runs)
	}
}

func TestArchiveService_ImportIsIdempotent(t *testing.T) {
	t.Parallel()

	loader := &corpusLoaderStub{corpus: sampleCorpus()}
	repo := memory.NewArchiveRepository()
	service := newArchiveServiceForTest(loader, repo)

	for i := 0; i < 2; i++ {
		if _, err := service.Import(context.Background(), "data"); err != nil {
			t.Fatalf("import %d: %v", i, err)
		}
	}

	records, err := repo.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list archived matches: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("re-import must replace groups, got %d records", len(records))
	}
}

func TestArchiveService_ArchiveKeepsLoaderOrder(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	files := map[string]string{
		"a.json": `{"name":"Zeta League","matches":[{"team1":"Z1","team2":"Z2"}]}`,
		"b.json": `{"name":"Alpha League","matches":[{"team1":"A1","team2":"A2"}]}`,
		"c.json": `{"name":"Alpha League","matches":[{"team1":"C1","team2":"C2"}]}`,
	}
	if err := os.MkdirAll(filepath.Join(base, "2024"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(base, "2024", name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	corpusLoader := loader.New(base, logging.NewNop())
	repo := memory.NewArchiveRepository()
	service := newArchiveServiceForTest(corpusLoader, repo)

	run, err := service.Import(context.Background(), base)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if run.Groups != 3 {
		t.Fatalf("expected one group per file, got %+v", run)
	}

	archived, err := repo.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list archived matches: %v", err)
	}
	homeTeams := func(records []match.Record) []string {
		out := make([]string, 0, len(records))
		for _, record := range records {
			out = append(out, record.HomeTeam)
		}
		return out
	}
	want := homeTeams(corpusLoader.Load(context.Background(), base))
	if got := homeTeams(archived); !reflect.DeepEqual(got, want) {
		t.Fatalf("archive order %v differs from loader order %v", got, want)
	}
}

func TestArchiveService_ImportEmptyCorpus(t *testing.T) {
	t.Parallel()

	repo := memory.NewArchiveRepository()
	service := newArchiveServiceForTest(&corpusLoaderStub{}, repo)

	run, err := service.Import(context.Background(), "missing")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if run.Groups != 0 || run.Records != 0 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if len(repo.Runs()) != 1 {
		t.Fatalf("expected the empty run to be recorded")
	}
}

func TestArchiveService_PartialFailureUsingMockery(t *testing.T) {
	t.Parallel()

	repo := archivemock.NewRepository(t)
	repo.
		On("ReplaceGroup", mock.Anything, "run-1", mock.MatchedBy(func(g archive.Group) bool { return g.Season == "2023" })).
		Return(errors.New("constraint violation")).
		Once()
	repo.
		On("ReplaceGroup", mock.Anything, "run-1", mock.MatchedBy(func(g archive.Group) bool { return g.Season == "2022" })).
		Return(nil).
		Twice()
	repo.
		On("SaveRun", mock.Anything, mock.MatchedBy(func(run archive.Run) bool {
			return run.GroupsFailed == 1 && run.Records == 3
		})).
		Return(nil).
		Once()

	service := newArchiveServiceForTest(&corpusLoaderStub{corpus: sampleCorpus()}, repo)

	run, err := service.Import(context.Background(), "data")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if run.GroupsFailed != 1 || run.Records != 3 {
		t.Fatalf("unexpected run: %+v", run)
	}
}

func TestArchiveService_AllGroupsFailedUsingMockery(t *testing.T) {
	t.Parallel()

	repo := archivemock.NewRepository(t)
	repo.
		On("ReplaceGroup", mock.Anything, "run-1", mock.Anything).
		Return(errors.New("connection refused")).
		Times(3)

	service := newArchiveServiceForTest(&corpusLoaderStub{corpus: sampleCorpus()}, repo)

	run, err := service.Import(context.Background(), "data")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if run.GroupsFailed != 3 {
		t.Fatalf("expected 3 failed groups, got %+v", run)
	}
	repo.AssertNotCalled(t, "SaveRun", mock.Anything, mock.Anything)
}

func TestArchiveService_RejectsConcurrentImport(t *testing.T) {
	t.Parallel()

	loader := &corpusLoaderStub{block: make(chan struct{})}
	service := newArchiveServiceForTest(loader, memory.NewArchiveRepository())

	done := make(chan error, 1)
	go func() {
		_, err := service.Import(context.Background(), "data")
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !service.running.Load() {
		if time.Now().After(deadline) {
			t.Fatalf("first import never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := service.Import(context.Background(), "data"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for concurrent import, got %v", err)
	}

	close(loader.block)
	if err := <-done; err != nil {
		t.Fatalf("first import: %v", err)
	}
}

func TestArchiveService_LatestRun(t *testing.T) {
	t.Parallel()

	repo := memory.NewArchiveRepository()
	service := newArchiveServiceForTest(&corpusLoaderStub{corpus: sampleCorpus()}, repo)

	if _, err := service.LatestRun(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any import, got %v", err)
	}

	imported, err := service.Import(context.Background(), "data")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	latest, err := service.LatestRun(context.Background())
	if err != nil {
		t.Fatalf("latest run: %v", err)
	}
	if latest.ID != imported.ID || latest.Records != imported.Records {
		t.Fatalf("expected %+v, got %+v", imported, latest)
	}
}

func TestArchiveService_LatestRunRepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	repo := archivemock.NewRepository(t)
	repo.On("LatestRun", mock.Anything).Return(archive.Run{}, false, errors.New("connection reset")).Once()

	service := newArchiveServiceForTest(&corpusLoaderStub{}, repo)
	if _, err := service.LatestRun(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
