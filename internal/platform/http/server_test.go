package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"mnestswap/internal/config"

	"github.com/stretchr/testify/require"
)

func TestServe_ServesUntilContextCanceled(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, listener, config.HTTPServer{}, handler) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + listener.Addr().String())
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSecondsOr(t *testing.T) {
	require.Equal(t, 3*time.Second, secondsOr(3, time.Second))
	require.Equal(t, time.Second, secondsOr(0, time.Second))
	require.Equal(t, time.Second, secondsOr(-1, time.Second))
}
