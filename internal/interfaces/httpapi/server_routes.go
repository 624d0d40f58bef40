package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAnalysisRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{team}/stats", handler.GetTeamStats)
	mux.HandleFunc("GET /v1/teams/{team}/report", handler.GetTeamReport)
	mux.HandleFunc("GET /v1/h2h", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/h2h/report", handler.GetHeadToHeadReport)
}

func registerLookupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/news", handler.SearchNews)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/standings/{league}/{season}", handler.GetStandings)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/matches/reload", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ReloadMatches)))
	mux.Handle("POST /v1/internal/archive/import", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ImportArchive)))
	mux.Handle("GET /v1/internal/archive/runs/latest", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.GetLatestArchiveRun)))
}
