package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/match-analyst/internal/domain/fixture"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/domain/news"
	"github.com/riskibarqy/match-analyst/internal/domain/standing"
)

const (
	DefaultNewsLimit = 6
	MaxNewsLimit     = 50
	MaxFixtureLimit  = 100
)

type StandingsTable struct {
	League string
	Season string
	Rows   []standing.Row
}

type FixtureList struct {
	LeagueID int
	Season   int
	Matches  []match.Record
}

// LookupService fronts the remote collaborators. Upstream failures surface
// as empty results, never as errors; only bad input is rejected.
type LookupService struct {
	news      news.Searcher
	standings standing.Provider
	fixtures  fixture.Provider
}

func NewLookupService(searcher news.Searcher, standings standing.Provider, fixtures fixture.Provider) *LookupService {
	return &LookupService{
		news:      searcher,
		standings: standings,
		fixtures:  fixtures,
	}
}

func (s *LookupService) News(ctx context.Context, query string, limit int) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.News", attribute.String("query", query))
	defer span.End()

	switch {
	case limit == 0:
		limit = DefaultNewsLimit
	case limit < 0 || limit > MaxNewsLimit:
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxNewsLimit)
	}

	items := s.news.Search(ctx, strings.TrimSpace(query), limit)
	if items == nil {
		items = []news.Article{}
	}
	return items, nil
}

// Standings returns at most standing.DisplayLimit rows. Blank league and
// season fall back to PL 2023.
func (s *LookupService) Standings(ctx context.Context, league, season string) (StandingsTable, error) {
	league = strings.ToUpper(strings.TrimSpace(league))
	if league == "" {
		league = standing.DefaultLeague
	}
	season = strings.TrimSpace(season)
	if season == "" {
		season = standing.DefaultSeason
	}
	if strings.ContainsAny(league+season, "/?#") {
		return StandingsTable{}, fmt.Errorf("%w: league and season must not contain path characters", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.Standings",
		attribute.String("league", league),
		attribute.String("season", season),
	)
	defer span.End()

	rows := s.standings.Standings(ctx, league, season)
	if len(rows) > standing.DisplayLimit {
		rows = rows[:standing.DisplayLimit]
	}
	if rows == nil {
		rows = []standing.Row{}
	}
	return StandingsTable{League: league, Season: season, Rows: rows}, nil
}

// Fixtures replaces zero arguments with the fixture package defaults.
func (s *LookupService) Fixtures(ctx context.Context, leagueID, season, limit int) (FixtureList, error) {
	if leagueID < 0 || season < 0 || limit < 0 {
		return FixtureList{}, fmt.Errorf("%w: league, season and limit must not be negative", ErrInvalidInput)
	}
	if limit > MaxFixtureLimit {
		return FixtureList{}, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, MaxFixtureLimit)
	}
	if leagueID == 0 {
		leagueID = fixture.DefaultLeagueID
	}
	if season == 0 {
		season = fixture.DefaultSeason
	}
	if limit == 0 {
		limit = fixture.DefaultLimit
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.Fixtures",
		attribute.Int("league_id", leagueID),
		attribute.Int("season", season),
	)
	defer span.End()

	matches := s.fixtures.Matches(ctx, leagueID, season, limit)
	if matches == nil {
		matches = []match.Record{}
	}
	return FixtureList{LeagueID: leagueID, Season: season, Matches: matches}, nil
}
