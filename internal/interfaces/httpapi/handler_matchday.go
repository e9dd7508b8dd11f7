package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-waterpolo/internal/usecase"
)

func (h *Handler) ListMatchDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchDays")
	defer span.End()

	items, err := h.matchDayService.ListMatchDays(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matchdays failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDayDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchDayViewToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatchDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDay")
	defer span.End()

	matchDayID := r.PathValue("matchDayID")
	item, err := h.matchDayService.GetMatchDay(ctx, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchday failed", "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDayViewToDTO(item))
}

func (h *Handler) CreateMatchDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchDay")
	defer span.End()

	var req createMatchDayRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchDayService.CreateMatchDay(ctx, usecase.CreateMatchDayInput{
		ID:        req.ID,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create matchday failed", "matchday_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchDayDTO{
		ID:        item.ID,
		Title:     item.Title,
		StartTime: formatTime(item.StartTime),
		EndTime:   formatTime(item.EndTime),
	})
}

func (h *Handler) StartMatchDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartMatchDay")
	defer span.End()

	matchDayID := r.PathValue("matchDayID")
	started, err := h.matchDayService.StartMatchDay(ctx, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "start matchday failed", "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, startMatchDayDTO{MatchDayID: matchDayID, Started: started})
}

func (h *Handler) ListMatchDayRosterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchDayRosterHistory")
	defer span.End()

	matchDayID := r.PathValue("matchDayID")
	grouped, err := h.rosterHistoryService.GetMatchDayRosterHistory(ctx, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchday roster history failed", "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterSetsToDTO(grouped, true, matchDayID))
}

// SnapshotMatchDayRosters freezes every team for the matchday. Existing
// snapshots are kept unless skip_existing is explicitly false.
func (h *Handler) SnapshotMatchDayRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SnapshotMatchDayRosters")
	defer span.End()

	var req snapshotRosterRequest
	if r.ContentLength != 0 {
		if err := h.decodeAndValidate(ctx, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	skipExisting := true
	if req.SkipExisting != nil {
		skipExisting = *req.SkipExisting
	}

	matchDayID := r.PathValue("matchDayID")
	frozen, err := h.rosterHistoryService.SnapshotAllTeamRosters(ctx, matchDayID, usecase.SnapshotOptions{
		SkipExisting: skipExisting,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "snapshot matchday rosters failed", "matchday_id", matchDayID, "frozen", len(frozen), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotResultDTO{
		MatchDayID: matchDayID,
		Frozen:     rosterSetsToDTO(frozen, true, matchDayID),
	})
}

func (h *Handler) ListMatchDayPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchDayPoints")
	defer span.End()

	matchDayID := r.PathValue("matchDayID")
	items, err := h.scoringService.CalculatePoints(ctx, matchDayID)
	if err != nil {
		h.logger.WarnContext(ctx, "calculate matchday points failed", "matchday_id", matchDayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamPointsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamPointsDTO{TeamID: item.TeamID, Points: item.Points})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
