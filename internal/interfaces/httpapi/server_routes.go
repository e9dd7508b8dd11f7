package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.ListPlayerStats)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster-history", handler.ListTeamRosterHistory)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster-history/{matchDayID}", handler.GetTeamRosterHistory)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster-history/{matchDayID}/exists", handler.HasTeamRosterHistory)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster-history/{matchDayID}/effective", handler.GetEffectiveRoster)
	mux.HandleFunc("GET /v1/teams/{teamID}/matchdays/{matchDayID}/points", handler.GetTeamMatchDayPoints)

	mux.HandleFunc("GET /v1/matchdays", handler.ListMatchDays)
	mux.HandleFunc("GET /v1/matchdays/{matchDayID}", handler.GetMatchDay)
	mux.HandleFunc("GET /v1/matchdays/{matchDayID}/roster-history", handler.ListMatchDayRosterHistory)
	mux.HandleFunc("GET /v1/matchdays/{matchDayID}/points", handler.ListMatchDayPoints)

	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("PUT /v1/players/{playerID}/stats/{matchDayID}", admin(handler.UpsertPlayerStats))

	mux.Handle("POST /v1/teams/{teamID}/players", admin(handler.AddTeamPlayer))
	mux.Handle("DELETE /v1/teams/{teamID}/players/{playerID}", admin(handler.RemoveTeamPlayer))
	mux.Handle("PUT /v1/teams/{teamID}/captain", admin(handler.SetTeamCaptain))
	mux.Handle("PUT /v1/teams/{teamID}/roster-history/{matchDayID}", admin(handler.ReplaceTeamRosterHistory))
	mux.Handle("DELETE /v1/teams/{teamID}/roster-history/{matchDayID}", admin(handler.DeleteTeamRosterHistory))

	mux.Handle("POST /v1/matchdays", admin(handler.CreateMatchDay))
	mux.Handle("POST /v1/matchdays/{matchDayID}/start", admin(handler.StartMatchDay))
	mux.Handle("POST /v1/matchdays/{matchDayID}/roster-history/snapshot", admin(handler.SnapshotMatchDayRosters))

	mux.Handle("POST /v1/internal/jobs/start-matchdays", admin(handler.RunStartDueMatchDays))
}
