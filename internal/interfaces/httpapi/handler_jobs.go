package httpapi

import (
	"net/http"
)

// RunStartDueMatchDays lets an external scheduler trigger the same sweep the
// in-process ticker runs.
func (h *Handler) RunStartDueMatchDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunStartDueMatchDays")
	defer span.End()

	result, err := h.matchDayService.StartDueMatchDays(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "start due matchdays failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "start due matchdays finished",
		"started", len(result.Started),
		"skipped", len(result.Skipped),
		"failed", len(result.Failed),
	)
	writeSuccess(ctx, w, http.StatusOK, startDueDTO{
		Started: result.Started,
		Skipped: result.Skipped,
		Failed:  result.Failed,
	})
}
