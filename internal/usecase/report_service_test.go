package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/match-analyst/internal/domain/news"
	newsmock "github.com/riskibarqy/match-analyst/internal/mocks/domain/news"
	"github.com/stretchr/testify/mock"
)

func TestReportService_TeamReportUsingMockery(t *testing.T) {
	t.Parallel()

	searcher := newsmock.NewSearcher(t)
	searcher.
		On("Search", mock.Anything, "Flamengo", teamReportNewsLimit).
		Return([]news.Article{
			{Title: "Flamengo sign striker", Source: "ge"},
			{Title: "Flamengo win derby", Source: "lance"},
		}).
		Once()

	service := NewReportService(newAnalysisServiceForTest(scoredRecord("Flamengo", "Santos", 2, 1)), searcher)

	got, err := service.TeamReport(context.Background(), "Flamengo")
	if err != nil {
		t.Fatalf("team report: %v", err)
	}
	if !got.Found || got.Stats.Wins != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if len(got.News) != 2 || got.News[0].Title != "Flamengo sign striker" {
		t.Fatalf("unexpected news: %+v", got.News)
	}
}

func TestReportService_TeamReportWithoutNewsUsingMockery(t *testing.T) {
	t.Parallel()

	searcher := newsmock.NewSearcher(t)
	searcher.On("Search", mock.Anything, "Bahia", teamReportNewsLimit).Return(nil).Once()

	service := NewReportService(newAnalysisServiceForTest(scoredRecord("Flamengo", "Santos", 2, 1)), searcher)

	got, err := service.TeamReport(context.Background(), "Bahia")
	if err != nil {
		t.Fatalf("team report: %v", err)
	}
	if got.Found {
		t.Fatalf("expected no stats for Bahia")
	}
	if got.News == nil || len(got.News) != 0 {
		t.Fatalf("expected empty non-nil news, got %+v", got.News)
	}
}

func TestReportService_HeadToHeadReportUsingMockery(t *testing.T) {
	t.Parallel()

	searcher := newsmock.NewSearcher(t)
	searcher.
		On("Search", mock.Anything, "Flamengo", h2hReportNewsLimit).
		Return([]news.Article{{Title: "Flamengo preview"}}).
		Once()
	searcher.
		On("Search", mock.Anything, "Santos", h2hReportNewsLimit).
		Return([]news.Article{}).
		Once()

	service := NewReportService(newAnalysisServiceForTest(
		scoredRecord("Flamengo", "Santos", 1, 1),
		scoredRecord("Santos", "Flamengo", 0, 2),
	), searcher)

	got, err := service.HeadToHeadReport(context.Background(), "Flamengo", "Santos")
	if err != nil {
		t.Fatalf("head to head report: %v", err)
	}
	if got.HeadToHead.Played() != 2 || got.HeadToHead.WinsTeam1 != 1 {
		t.Fatalf("unexpected head to head: %+v", got.HeadToHead)
	}
	if got.HeadlineTeam1 == nil || got.HeadlineTeam1.Title != "Flamengo preview" {
		t.Fatalf("unexpected headline for team1: %+v", got.HeadlineTeam1)
	}
	if got.HeadlineTeam2 != nil {
		t.Fatalf("expected no headline for team2, got %+v", got.HeadlineTeam2)
	}
}

func TestReportService_RejectsBlankTeams(t *testing.T) {
	t.Parallel()

	service := NewReportService(newAnalysisServiceForTest(), newsmock.NewSearcher(t))

	if _, err := service.TeamReport(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.HeadToHeadReport(context.Background(), "Santos", " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
