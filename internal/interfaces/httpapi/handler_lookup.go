package httpapi

import (
	"net/http"
	"strings"
)

type newsQuery struct {
	Query string `validate:"max=200"`
	Limit int    `validate:"gte=0,lte=50"`
}

type fixturesQuery struct {
	LeagueID int `validate:"gte=0"`
	Season   int `validate:"gte=0"`
	Limit    int `validate:"gte=0,lte=100"`
}

func (h *Handler) SearchNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchNews")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := newsQuery{Query: strings.TrimSpace(r.URL.Query().Get("q")), Limit: limit}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.lookupService.News(ctx, req.Query, req.Limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, articlesToDTO(items))
}

// GetStandings serves both /v1/standings and /v1/standings/{league}/{season};
// query parameters are honored when the path carries none.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	league := r.PathValue("league")
	season := r.PathValue("season")
	if league == "" {
		league = r.URL.Query().Get("league")
	}
	if season == "" {
		season = r.URL.Query().Get("season")
	}

	table, err := h.lookupService.Standings(ctx, league, season)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "league", league, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]standingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, standingRowDTO{Position: row.Position, Team: row.Team, Points: row.Points})
	}
	writeSuccess(ctx, w, http.StatusOK, standingsDTO{
		League: table.League,
		Season: table.Season,
		Rows:   rows,
	})
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	var req fixturesQuery
	var err error
	if req.LeagueID, err = queryInt(r, "league"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Season, err = queryInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	list, err := h.lookupService.Fixtures(ctx, req.LeagueID, req.Season, req.Limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, fixturesDTO{
		LeagueID: list.LeagueID,
		Season:   list.Season,
		Matches:  matchesToDTO(list.Matches),
	})
}
