package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/match-analyst/internal/domain/fixture"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/domain/news"
	"github.com/riskibarqy/match-analyst/internal/domain/standing"
	fixturemock "github.com/riskibarqy/match-analyst/internal/mocks/domain/fixture"
	newsmock "github.com/riskibarqy/match-analyst/internal/mocks/domain/news"
	standingmock "github.com/riskibarqy/match-analyst/internal/mocks/domain/standing"
	"github.com/stretchr/testify/mock"
)

func TestLookupService_NewsDefaultsLimitUsingMockery(t *testing.T) {
	t.Parallel()

	searcher := newsmock.NewSearcher(t)
	searcher.
		On("Search", mock.Anything, "Santos", DefaultNewsLimit).
		Return([]news.Article{{Title: "Santos return"}}).
		Once()

	service := NewLookupService(searcher, standingmock.NewProvider(t), fixturemock.NewProvider(t))

	got, err := service.News(context.Background(), " Santos ", 0)
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one article, got %d", len(got))
	}
}

func TestLookupService_NewsRejectsLimit(t *testing.T) {
	t.Parallel()

	service := NewLookupService(newsmock.NewSearcher(t), standingmock.NewProvider(t), fixturemock.NewProvider(t))

	for _, limit := range []int{-1, MaxNewsLimit + 1} {
		if _, err := service.News(context.Background(), "x", limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("limit %d: expected ErrInvalidInput, got %v", limit, err)
		}
	}
}

func TestLookupService_NewsFailureIsEmptyUsingMockery(t *testing.T) {
	t.Parallel()

	searcher := newsmock.NewSearcher(t)
	searcher.On("Search", mock.Anything, "", 3).Return(nil).Once()

	service := NewLookupService(searcher, standingmock.NewProvider(t), fixturemock.NewProvider(t))

	got, err := service.News(context.Background(), "", 3)
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", got)
	}
}

func TestLookupService_StandingsDefaultsAndCapUsingMockery(t *testing.T) {
	t.Parallel()

	rows := make([]standing.Row, 0, 24)
	for i := 1; i <= 24; i++ {
		rows = append(rows, standing.Row{Position: i, Team: fmt.Sprintf("Team %d", i), Points: 100 - i})
	}

	provider := standingmock.NewProvider(t)
	provider.
		On("Standings", mock.Anything, standing.DefaultLeague, standing.DefaultSeason).
		Return(rows).
		Once()

	service := NewLookupService(newsmock.NewSearcher(t), provider, fixturemock.NewProvider(t))

	got, err := service.Standings(context.Background(), "", "")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if got.League != "PL" || got.Season != "2023" {
		t.Fatalf("unexpected defaults: %s %s", got.League, got.Season)
	}
	if len(got.Rows) != standing.DisplayLimit {
		t.Fatalf("expected %d rows, got %d", standing.DisplayLimit, len(got.Rows))
	}
	if got.Rows[19].Position != 20 {
		t.Fatalf("expected the first rows to be kept, got %+v", got.Rows[19])
	}
}

func TestLookupService_StandingsUpperCasesLeagueUsingMockery(t *testing.T) {
	t.Parallel()

	provider := standingmock.NewProvider(t)
	provider.On("Standings", mock.Anything, "BSA", "2022").Return(nil).Once()

	service := NewLookupService(newsmock.NewSearcher(t), provider, fixturemock.NewProvider(t))

	got, err := service.Standings(context.Background(), "bsa", "2022")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if got.Rows == nil || len(got.Rows) != 0 {
		t.Fatalf("expected empty rows, got %+v", got.Rows)
	}
}

func TestLookupService_StandingsRejectsPathCharacters(t *testing.T) {
	t.Parallel()

	service := NewLookupService(newsmock.NewSearcher(t), standingmock.NewProvider(t), fixturemock.NewProvider(t))

	if _, err := service.Standings(context.Background(), "PL/../x", "2023"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLookupService_FixturesUsingMockery(t *testing.T) {
	t.Parallel()

	provider := fixturemock.NewProvider(t)
	provider.
		On("Matches", mock.Anything, fixture.DefaultLeagueID, fixture.DefaultSeason, fixture.DefaultLimit).
		Return([]match.Record{scoredRecord("Arsenal", "Chelsea", 2, 2)}).
		Once()
	provider.
		On("Matches", mock.Anything, 71, 2022, 5).
		Return(nil).
		Once()

	service := NewLookupService(newsmock.NewSearcher(t), standingmock.NewProvider(t), provider)

	got, err := service.Fixtures(context.Background(), 0, 0, 0)
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	if got.LeagueID != 39 || got.Season != 2023 || len(got.Matches) != 1 {
		t.Fatalf("unexpected fixtures: %+v", got)
	}

	got, err = service.Fixtures(context.Background(), 71, 2022, 5)
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	if got.Matches == nil || len(got.Matches) != 0 {
		t.Fatalf("expected empty matches, got %+v", got.Matches)
	}
}

func TestLookupService_FixturesRejectsInput(t *testing.T) {
	t.Parallel()

	service := NewLookupService(newsmock.NewSearcher(t), standingmock.NewProvider(t), fixturemock.NewProvider(t))

	tests := []struct {
		name                    string
		leagueID, season, limit int
	}{
		{name: "negative league", leagueID: -1},
		{name: "negative season", season: -2023},
		{name: "limit too large", limit: MaxFixtureLimit + 1},
	}
	for _, tc := range tests {
		if _, err := service.Fixtures(context.Background(), tc.leagueID, tc.season, tc.limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}
