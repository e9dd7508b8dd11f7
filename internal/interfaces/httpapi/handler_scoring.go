package httpapi

import (
	"net/http"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items, err := h.scoringService.GetTeamsWithScores(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(ctx, items))
}

func (h *Handler) GetTeamMatchDayPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamMatchDayPoints")
	defer span.End()

	teamID, matchDayID := r.PathValue("teamID"), r.PathValue("matchDayID")
	breakdown, err := h.scoringService.GetTeamMatchDayBreakdown(ctx, teamID, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team matchday points failed", "team_id", teamID, "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdownToDTO(breakdown))
}
