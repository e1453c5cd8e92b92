package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// handleJobStream relays the progress events of a job over a websocket
// until its terminal event. A job that already finished gets a single
// terminal event built from its stored state.
func (h *Handler) handleJobStream(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	log := h.logger.With(slog.String("job_id", jobID))

	// Subscribe before reading the state so no event falls in between.
	events, err := h.events.Subscribe(r.Context(), jobID)
	if err != nil {
		log.Error("subscribe error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	st, err := h.jobs.State(jobID)
	if err != nil {
		if errors.Is(err, port.ErrJobNotFound) {
			h.writeError(w, http.StatusNotFound, "job not found")
			return
		}
		log.Error("job state error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	if final, ok := terminalFromState(st); ok {
		_ = writeEvent(conn, final)
		closeStream(conn)
		return
	}

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return
		case <-ticker.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				closeStream(conn)
				return
			}
			if err = writeEvent(conn, ev); err != nil {
				log.Debug("websocket write failed", slog.Any("error", err))
				return
			}
			if ev.Type.Terminal() {
				closeStream(conn)
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, ev domain.ProgressEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func closeStream(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

// readUntilClosed consumes client frames so control messages are handled
// and closes done when the client goes away.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func terminalFromState(st domain.JobState) (domain.ProgressEvent, bool) {
	ev := domain.ProgressEvent{
		JobID:         st.ID,
		CampaignSetID: st.Payload.CampaignSetID.String(),
		Timestamp:     time.Now(),
	}
	if st.FinishedAt != nil {
		ev.Timestamp = *st.FinishedAt
	}
	switch st.Status {
	case domain.JobSucceeded:
		ev.Type = domain.EventCompleted
		if st.Result != nil {
			ev.Data.SyncCounts = &domain.SyncCounts{
				Synced:  st.Result.Synced,
				Failed:  st.Result.Failed,
				Skipped: st.Result.Skipped,
				Total:   st.Result.Synced + st.Result.Failed + st.Result.Skipped,
			}
		}
		return ev, true
	case domain.JobFailed:
		ev.Type = domain.EventError
		ev.Data.Error = st.Error
		return ev, true
	default:
		return domain.ProgressEvent{}, false
	}
}
