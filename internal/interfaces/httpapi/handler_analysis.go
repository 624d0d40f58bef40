package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/match-analyst/internal/usecase"
)

type headToHeadQuery struct {
	Team1   string `validate:"required_without=Matchup,max=100"`
	Team2   string `validate:"required_without=Matchup,max=100"`
	Matchup string `validate:"omitempty,max=200"`
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	stats, found, err := h.analysisService.TeamStats(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "team stats failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatsResponseDTO{
		Team:  team,
		Found: found,
		Stats: teamStatsToDTO(stats, found),
	})
}

func (h *Handler) GetTeamReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamReport")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	report, err := h.reportService.TeamReport(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "team report failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamReportDTO{
		Team:  report.Team,
		Found: report.Found,
		Stats: teamStatsToDTO(report.Stats, report.Found),
		News:  articlesToDTO(report.News),
	})
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	query := r.URL.Query()
	req := headToHeadQuery{
		Team1:   strings.TrimSpace(query.Get("team1")),
		Team2:   strings.TrimSpace(query.Get("team2")),
		Matchup: strings.TrimSpace(query.Get("matchup")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team1, team2 := req.Team1, req.Team2
	if team1 == "" || team2 == "" {
		parsed1, parsed2, err := usecase.ParseMatchup(req.Matchup)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		team1, team2 = parsed1, parsed2
	}

	result, err := h.analysisService.HeadToHead(ctx, team1, team2)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "team1", team1, "team2", team2, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(result))
}

func (h *Handler) GetHeadToHeadReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHeadReport")
	defer span.End()

	query := r.URL.Query()
	team1 := strings.TrimSpace(query.Get("team1"))
	team2 := strings.TrimSpace(query.Get("team2"))
	if matchup := strings.TrimSpace(query.Get("matchup")); matchup != "" && (team1 == "" || team2 == "") {
		parsed1, parsed2, err := usecase.ParseMatchup(matchup)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		team1, team2 = parsed1, parsed2
	}

	report, err := h.reportService.HeadToHeadReport(ctx, team1, team2)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head report failed", "team1", team1, "team2", team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadReportDTO{
		HeadToHead:    headToHeadToDTO(report.HeadToHead),
		HeadlineTeam1: articleToDTOPtr(report.HeadlineTeam1),
		HeadlineTeam2: articleToDTOPtr(report.HeadlineTeam2),
	})
}
