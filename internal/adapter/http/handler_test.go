package httpadapter

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-sync/internal/adapter/events"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockJobRunner, *mocks.MockEventSubscriber) {
	t.Helper()
	runner := mocks.NewMockJobRunner(t)
	events := mocks.NewMockEventSubscriber(t)
	h := NewHandler(runner, events, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, runner, events
}

func TestHandleSync(t *testing.T) {
	h, runner, _ := newTestHandler(t)
	setID, userID, acctID := uuid.New(), uuid.New(), uuid.New()

	runner.EXPECT().Enqueue(mock.Anything, domain.SyncJobPayload{
		CampaignSetID:       setID,
		UserID:              userID,
		AdAccountID:         acctID,
		FundingInstrumentID: "fi_1",
		Platform:            domain.PlatformReddit,
	}).Return("job-1", nil)

	body := `{"userId":"` + userID.String() + `","adAccountId":"` + acctID.String() + `","fundingInstrumentId":"fi_1","platform":"reddit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaign-sets/"+setID.String()+"/sync", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "/api/v1/jobs/job-1", rec.Header().Get("Location"))
	var resp syncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "job-1", resp.JobID)
}

func TestHandleSync_BadInput(t *testing.T) {
	valid := uuid.NewString()
	tests := []struct {
		name  string
		setID string
		body  string
	}{
		{"bad set id", "nope", `{"userId":"` + valid + `","adAccountId":"` + valid + `","platform":"reddit"}`},
		{"bad json", valid, `{`},
		{"missing user", valid, `{"adAccountId":"` + valid + `","platform":"reddit"}`},
		{"bad account id", valid, `{"userId":"` + valid + `","adAccountId":"x","platform":"reddit"}`},
		{"missing platform", valid, `{"userId":"` + valid + `","adAccountId":"` + valid + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/campaign-sets/"+tt.setID+"/sync", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleSync_QueueFull(t *testing.T) {
	h, runner, _ := newTestHandler(t)
	runner.EXPECT().Enqueue(mock.Anything, mock.Anything).Return("", port.ErrQueueFull)

	id := uuid.NewString()
	body := `{"userId":"` + id + `","adAccountId":"` + id + `","platform":"reddit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaign-sets/"+id+"/sync", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleJobState(t *testing.T) {
	h, runner, _ := newTestHandler(t)
	runner.EXPECT().State("job-1").Return(domain.JobState{
		ID:     "job-1",
		Status: domain.JobSucceeded,
		Result: &domain.SyncJobResult{Success: true, Synced: 2},
	}, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/job-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var st domain.JobState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, domain.JobSucceeded, st.Status)
	require.NotNil(t, st.Result)
	assert.Equal(t, 2, st.Result.Synced)
}

func TestHandleJobState_NotFound(t *testing.T) {
	h, runner, _ := newTestHandler(t)
	runner.EXPECT().State("missing").Return(domain.JobState{}, port.ErrJobNotFound)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsAndHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func dialStream(t *testing.T, h *Handler, jobID string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/jobs/" + jobID + "/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		resp.Body.Close()
		conn.Close()
	})
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) domain.ProgressEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev domain.ProgressEvent
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHandleJobStream_RelaysUntilTerminal(t *testing.T) {
	h, runner, events := newTestHandler(t)
	ch := make(chan domain.ProgressEvent, 3)
	events.EXPECT().Subscribe(mock.Anything, "job-1").Return((<-chan domain.ProgressEvent)(ch), nil)
	runner.EXPECT().State("job-1").Return(domain.JobState{ID: "job-1", Status: domain.JobRunning}, nil)

	ch <- domain.ProgressEvent{Type: domain.EventProgress, JobID: "job-1", Data: domain.ProgressData{SyncCounts: &domain.SyncCounts{Synced: 1, Total: 2}}}
	ch <- domain.ProgressEvent{Type: domain.EventCompleted, JobID: "job-1", Data: domain.ProgressData{SyncCounts: &domain.SyncCounts{Synced: 2, Total: 2}}}

	conn := dialStream(t, h, "job-1")

	first := readEvent(t, conn)
	assert.Equal(t, domain.EventProgress, first.Type)
	require.NotNil(t, first.Data.SyncCounts)
	assert.Equal(t, 1, first.Data.Synced)

	last := readEvent(t, conn)
	assert.Equal(t, domain.EventCompleted, last.Type)

	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestHandleJobStream_FinishedJob(t *testing.T) {
	h, runner, events := newTestHandler(t)
	ch := make(chan domain.ProgressEvent)
	events.EXPECT().Subscribe(mock.Anything, "job-2").Return((<-chan domain.ProgressEvent)(ch), nil)
	runner.EXPECT().State("job-2").Return(domain.JobState{
		ID:     "job-2",
		Status: domain.JobFailed,
		Error:  "credential unavailable",
	}, nil)

	conn := dialStream(t, h, "job-2")

	ev := readEvent(t, conn)
	assert.Equal(t, domain.EventError, ev.Type)
	assert.Equal(t, "credential unavailable", ev.Data.Error)
}

func TestHandleJobStream_UnknownJob(t *testing.T) {
	h, runner, events := newTestHandler(t)
	events.EXPECT().Subscribe(mock.Anything, "missing").Return((<-chan domain.ProgressEvent)(make(chan domain.ProgressEvent)), nil)
	runner.EXPECT().State("missing").Return(domain.JobState{}, port.ErrJobNotFound)

	srv := httptest.NewServer(h.Router())
	defer srv.Close()
	resp, err := http.Get(srv.URL + "/api/v1/jobs/missing/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.Contains(body, []byte("job not found")))
}

func TestHandleJobStream_JobFinishingBeforeStateUpdate(t *testing.T) {
	runner := mocks.NewMockJobRunner(t)
	bus := events.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)), 0, 0)
	t.Cleanup(func() { _ = bus.Close() })
	h := NewHandler(runner, bus, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// The job already published its terminal event but the runner has not
	// recorded the outcome yet.
	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, domain.ProgressEvent{
		Type:  domain.EventCompleted,
		JobID: "job-3",
		Data:  domain.ProgressData{SyncCounts: &domain.SyncCounts{Synced: 4, Total: 4}},
	}))
	require.NoError(t, bus.Done(ctx, "job-3"))
	runner.EXPECT().State("job-3").Return(domain.JobState{ID: "job-3", Status: domain.JobRunning}, nil)

	conn := dialStream(t, h, "job-3")

	ev := readEvent(t, conn)
	assert.Equal(t, domain.EventCompleted, ev.Type)
	assert.Equal(t, 4, ev.Data.Synced)

	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
