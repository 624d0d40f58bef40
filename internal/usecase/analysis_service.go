package usecase

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/match-analyst/internal/domain/analysis"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

// AnalysisService runs team statistics and head-to-head analyses over the
// configured match source.
type AnalysisService struct {
	source   match.Source
	analyzer *analysis.Analyzer
	logger   *logging.Logger
}

func NewAnalysisService(source match.Source, analyzer *analysis.Analyzer, logger *logging.Logger) *AnalysisService {
	if analyzer == nil {
		analyzer = analysis.NewAnalyzer(analysis.SubstringMatcher{})
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalysisService{
		source:   source,
		analyzer: analyzer,
		logger:   logger,
	}
}

// TeamStats returns false when the team has no scored match in the corpus.
func (s *AnalysisService) TeamStats(ctx context.Context, team string) (analysis.TeamStats, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.TeamStats", attribute.String("team", team))
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return analysis.TeamStats{}, false, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	matches, err := s.listMatches(ctx)
	if err != nil {
		return analysis.TeamStats{}, false, err
	}

	stats, found, err := s.analyzer.StatsFor(matches, team)
	if err != nil {
		return analysis.TeamStats{}, false, mapAnalysisErr(err)
	}
	s.logger.DebugContext(ctx, "team stats computed", "team", team, "found", found, "matches_played", stats.MatchesPlayed)
	return stats, found, nil
}

func (s *AnalysisService) HeadToHead(ctx context.Context, team1, team2 string) (analysis.HeadToHeadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.HeadToHead",
		attribute.String("team1", team1),
		attribute.String("team2", team2),
	)
	defer span.End()

	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return analysis.HeadToHeadResult{}, fmt.Errorf("%w: team1 and team2 are required", ErrInvalidInput)
	}

	matches, err := s.listMatches(ctx)
	if err != nil {
		return analysis.HeadToHeadResult{}, err
	}

	result, err := s.analyzer.HeadToHead(matches, team1, team2)
	if err != nil {
		return analysis.HeadToHeadResult{}, mapAnalysisErr(err)
	}
	s.logger.DebugContext(ctx, "head to head computed", "team1", team1, "team2", team2, "matches", result.Played())
	return result, nil
}

// HeadToHeadMatchup accepts free text such as "Flamengo vs Santos".
func (s *AnalysisService) HeadToHeadMatchup(ctx context.Context, matchup string) (analysis.HeadToHeadResult, error) {
	team1, team2, err := ParseMatchup(matchup)
	if err != nil {
		return analysis.HeadToHeadResult{}, err
	}
	return s.HeadToHead(ctx, team1, team2)
}

func (s *AnalysisService) listMatches(ctx context.Context) ([]match.Record, error) {
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list matches failed", "error", err)
		return nil, fmt.Errorf("%w: list matches: %v", ErrDependencyUnavailable, err)
	}
	return matches, nil
}

func mapAnalysisErr(err error) error {
	if crerr.Is(err, analysis.ErrEmptyTeamName) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return err
}
