package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ShutsDownOnCancel(t *testing.T) {
	s := NewServer(&http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}, time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := NewServer(&http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}, time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	err = s.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server failed")
	assert.Equal(t, "http-server", s.String())
}
