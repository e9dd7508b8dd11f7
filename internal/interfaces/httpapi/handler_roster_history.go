package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
)

func (h *Handler) ListTeamRosterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamRosterHistory")
	defer span.End()

	teamID := r.PathValue("teamID")
	grouped, err := h.rosterHistoryService.GetTeamRosterHistory(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team roster history failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterSetsToDTO(grouped, false, teamID))
}

func (h *Handler) GetTeamRosterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRosterHistory")
	defer span.End()

	teamID, matchDayID := r.PathValue("teamID"), r.PathValue("matchDayID")
	if err := h.validateRequest(ctx, pathIDsRequest{TeamID: teamID, MatchDayID: matchDayID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.rosterHistoryService.GetRosterHistory(ctx, teamID, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster history failed", "team_id", teamID, "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterSetToDTO(teamID, matchDayID, entries))
}

// ReplaceTeamRosterHistory overwrites the frozen set; an empty players list
// clears it.
func (h *Handler) ReplaceTeamRosterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceTeamRosterHistory")
	defer span.End()

	var req replaceRosterHistoryRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID, matchDayID := r.PathValue("teamID"), r.PathValue("matchDayID")
	inputs := make([]rosterhistory.EntryInput, 0, len(req.Players))
	for _, p := range req.Players {
		inputs = append(inputs, rosterhistory.EntryInput{PlayerID: p.PlayerID, IsCaptain: p.IsCaptain})
	}

	entries, err := h.rosterHistoryService.CreateRosterHistory(ctx, teamID, matchDayID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "replace roster history failed", "team_id", teamID, "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterSetToDTO(teamID, matchDayID, entries))
}

func (h *Handler) DeleteTeamRosterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeamRosterHistory")
	defer span.End()

	teamID, matchDayID := r.PathValue("teamID"), r.PathValue("matchDayID")
	if err := h.rosterHistoryService.RemoveRosterHistory(ctx, teamID, matchDayID); err != nil {
		h.logger.WarnContext(ctx, "delete roster history failed", "team_id", teamID, "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) HasTeamRosterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HasTeamRosterHistory")
	defer span.End()

	teamID, matchDayID := r.PathValue("teamID"), r.PathValue("matchDayID")
	exists, err := h.rosterHistoryService.HasRosterHistory(ctx, teamID, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "check roster history failed", "team_id", teamID, "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *Handler) GetEffectiveRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEffectiveRoster")
	defer span.End()

	teamID, matchDayID := r.PathValue("teamID"), r.PathValue("matchDayID")
	resolved, err := h.rosterResolver.Resolve(ctx, teamID, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve roster failed", "team_id", teamID, "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resolvedRosterToDTO(resolved))
}
