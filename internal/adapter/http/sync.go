package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// syncRequest is the body of a sync request. Platform support is checked by
// the job itself so that an unsupported platform ends in an error event.
type syncRequest struct {
	UserID              string `json:"userId" validate:"required,uuid"`
	AdAccountID         string `json:"adAccountId" validate:"required,uuid"`
	FundingInstrumentID string `json:"fundingInstrumentId" validate:"max=128"`
	Platform            string `json:"platform" validate:"required,max=32"`
}

type syncResponse struct {
	JobID string `json:"jobId"`
}

// handleSync enqueues a sync job for the campaign set in the path and
// responds 202 with the job id. Malformed input yields 400 and a full queue
// 503.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	setID, err := uuid.Parse(chi.URLParam(r, "setID"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign set id")
		return
	}

	var req syncRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err = h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := domain.SyncJobPayload{
		CampaignSetID:       setID,
		UserID:              uuid.MustParse(req.UserID),
		AdAccountID:         uuid.MustParse(req.AdAccountID),
		FundingInstrumentID: req.FundingInstrumentID,
		Platform:            domain.Platform(req.Platform),
	}
	jobID, err := h.jobs.Enqueue(r.Context(), payload)
	if err != nil {
		if errors.Is(err, port.ErrQueueFull) {
			h.writeError(w, http.StatusServiceUnavailable, "sync queue is full, retry later")
			return
		}
		h.logger.Error("enqueue sync job error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Location", "/api/v1/jobs/"+jobID)
	h.writeJSON(w, http.StatusAccepted, syncResponse{JobID: jobID})
}
