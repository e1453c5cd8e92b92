package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-sync/internal/core/port"
)

// handleJobState returns the current state of a job, 404 if unknown.
func (h *Handler) handleJobState(w http.ResponseWriter, r *http.Request) {
	st, err := h.jobs.State(chi.URLParam(r, "jobID"))
	if err != nil {
		if errors.Is(err, port.ErrJobNotFound) {
			h.writeError(w, http.StatusNotFound, "job not found")
			return
		}
		h.logger.Error("job state error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}
