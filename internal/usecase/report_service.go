package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/match-analyst/internal/domain/analysis"
	"github.com/riskibarqy/match-analyst/internal/domain/news"
)

const (
	teamReportNewsLimit = 2
	h2hReportNewsLimit  = 1
)

type TeamReport struct {
	Team  string
	Stats analysis.TeamStats
	Found bool
	News  []news.Article
}

type HeadToHeadReport struct {
	HeadToHead analysis.HeadToHeadResult
	// Headline per requested team, nil when no article was found.
	HeadlineTeam1 *news.Article
	HeadlineTeam2 *news.Article
}

// ReportService composes local analyses with news headlines. The local part
// and the remote lookups run concurrently.
type ReportService struct {
	analysis *AnalysisService
	news     news.Searcher
}

func NewReportService(analysis *AnalysisService, searcher news.Searcher) *ReportService {
	return &ReportService{analysis: analysis, news: searcher}
}

func (s *ReportService) TeamReport(ctx context.Context, team string) (TeamReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.TeamReport", attribute.String("team", team))
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return TeamReport{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	report := TeamReport{Team: team}
	var statsErr error

	var wg conc.WaitGroup
	wg.Go(func() {
		report.Stats, report.Found, statsErr = s.analysis.TeamStats(ctx, team)
	})
	wg.Go(func() {
		report.News = s.news.Search(ctx, team, teamReportNewsLimit)
	})
	wg.Wait()

	if statsErr != nil {
		return TeamReport{}, statsErr
	}
	if report.News == nil {
		report.News = []news.Article{}
	}
	return report, nil
}

func (s *ReportService) HeadToHeadReport(ctx context.Context, team1, team2 string) (HeadToHeadReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.HeadToHeadReport",
		attribute.String("team1", team1),
		attribute.String("team2", team2),
	)
	defer span.End()

	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	if team1 == "" || team2 == "" {
		return HeadToHeadReport{}, fmt.Errorf("%w: team1 and team2 are required", ErrInvalidInput)
	}

	var (
		report HeadToHeadReport
		h2hErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		report.HeadToHead, h2hErr = s.analysis.HeadToHead(ctx, team1, team2)
	})
	wg.Go(func() {
		report.HeadlineTeam1 = firstArticle(s.news.Search(ctx, team1, h2hReportNewsLimit))
	})
	wg.Go(func() {
		report.HeadlineTeam2 = firstArticle(s.news.Search(ctx, team2, h2hReportNewsLimit))
	})
	wg.Wait()

	if h2hErr != nil {
		return HeadToHeadReport{}, h2hErr
	}
	return report, nil
}

func firstArticle(items []news.Article) *news.Article {
	if len(items) == 0 {
		return nil
	}
	item := items[0]
	return &item
}
