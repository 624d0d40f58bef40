package httpapi

import (
	"time"

	"github.com/riskibarqy/match-analyst/internal/domain/analysis"
	"github.com/riskibarqy/match-analyst/internal/domain/archive"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/domain/news"
)

type teamStatsDTO struct {
	MatchesPlayed  int     `json:"matchesPlayed"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	WinRatePercent float64 `json:"winRatePercent"`
	AvgGoalsFor    float64 `json:"avgGoalsFor"`
}

type teamStatsResponseDTO struct {
	Team  string        `json:"team"`
	Found bool          `json:"found"`
	Stats *teamStatsDTO `json:"stats"`
}

type matchDTO struct {
	Season    string `json:"season"`
	League    string `json:"league"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeGoals *int   `json:"homeGoals"`
	AwayGoals *int   `json:"awayGoals"`
}

type headToHeadDTO struct {
	Team1      string     `json:"team1"`
	Team2      string     `json:"team2"`
	Played     int        `json:"played"`
	WinsTeam1  int        `json:"winsTeam1"`
	WinsTeam2  int        `json:"winsTeam2"`
	Draws      int        `json:"draws"`
	GoalsTeam1 int        `json:"goalsTeam1"`
	GoalsTeam2 int        `json:"goalsTeam2"`
	Matches    []matchDTO `json:"matches"`
}

type articleDTO struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}

type teamReportDTO struct {
	Team  string        `json:"team"`
	Found bool          `json:"found"`
	Stats *teamStatsDTO `json:"stats"`
	News  []articleDTO  `json:"news"`
}

type headToHeadReportDTO struct {
	HeadToHead    headToHeadDTO `json:"headToHead"`
	HeadlineTeam1 *articleDTO   `json:"headlineTeam1"`
	HeadlineTeam2 *articleDTO   `json:"headlineTeam2"`
}

type standingRowDTO struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
}

type standingsDTO struct {
	League string           `json:"league"`
	Season string           `json:"season"`
	Rows   []standingRowDTO `json:"rows"`
}

type fixturesDTO struct {
	LeagueID int        `json:"leagueId"`
	Season   int        `json:"season"`
	Matches  []matchDTO `json:"matches"`
}

type reloadDTO struct {
	Records int `json:"records"`
}

type archiveRunDTO struct {
	RunID        string `json:"runId"`
	BasePath     string `json:"basePath"`
	Seasons      int    `json:"seasons"`
	FilesLoaded  int    `json:"filesLoaded"`
	FilesSkipped int    `json:"filesSkipped"`
	Groups       int    `json:"groups"`
	GroupsFailed int    `json:"groupsFailed"`
	Records      int    `json:"records"`
	StartedAt    string `json:"startedAt"`
	FinishedAt   string `json:"finishedAt"`
}

func archiveRunToDTO(run archive.Run) archiveRunDTO {
	return archiveRunDTO{
		RunID:        run.ID,
		BasePath:     run.BasePath,
		Seasons:      run.Seasons,
		FilesLoaded:  run.FilesLoaded,
		FilesSkipped: run.FilesSkipped,
		Groups:       run.Groups,
		GroupsFailed: run.GroupsFailed,
		Records:      run.Records,
		StartedAt:    run.StartedAt.Format(time.RFC3339),
		FinishedAt:   run.FinishedAt.Format(time.RFC3339),
	}
}

func teamStatsToDTO(v analysis.TeamStats, found bool) *teamStatsDTO {
	if !found {
		return nil
	}
	return &teamStatsDTO{
		MatchesPlayed:  v.MatchesPlayed,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		WinRatePercent: v.WinRatePercent,
		AvgGoalsFor:    v.AvgGoalsFor,
	}
}

func matchToDTO(v match.Record) matchDTO {
	out := matchDTO{
		Season:   v.Season,
		League:   v.League,
		Date:     v.Date,
		Time:     v.Time,
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
	}
	if v.Score != nil {
		home, away := v.Score.Home, v.Score.Away
		out.HomeGoals = &home
		out.AwayGoals = &away
	}
	return out
}

func matchesToDTO(items []match.Record) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func headToHeadToDTO(v analysis.HeadToHeadResult) headToHeadDTO {
	return headToHeadDTO{
		Team1:      v.Team1,
		Team2:      v.Team2,
		Played:     v.Played(),
		WinsTeam1:  v.WinsTeam1,
		WinsTeam2:  v.WinsTeam2,
		Draws:      v.Draws,
		GoalsTeam1: v.GoalsTeam1,
		GoalsTeam2: v.GoalsTeam2,
		Matches:    matchesToDTO(v.Matches),
	}
}

func articleToDTO(v news.Article) articleDTO {
	return articleDTO{Title: v.Title, Source: v.Source, PublishedAt: v.PublishedAt, URL: v.URL}
}

func articleToDTOPtr(v *news.Article) *articleDTO {
	if v == nil {
		return nil
	}
	out := articleToDTO(*v)
	return &out
}

func articlesToDTO(items []news.Article) []articleDTO {
	out := make([]articleDTO, 0, len(items))
	for _, item := range items {
		out = append(out, articleToDTO(item))
	}
	return out
}
