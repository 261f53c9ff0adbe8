package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/handler"
	httphandler "github.com/MKhiriev/go-bus-schedule/internal/handler/http"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	srv, err := NewServer(nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPServer)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{}, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPServer)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{HTTP: httphandler.NewHandler(nil, logger.Nop())}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPServer)
	assert.Nil(t, srv)
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			<-release
		}
		_, _ = io.WriteString(w, "ok")
	})

	srv := newHTTPServer(handler, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	baseURL := "http://" + listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, listener) }()

	resp, err := http.Get(baseURL + "/fast")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	// an in-flight request is allowed to finish after shutdown starts
	slow := make(chan int, 1)
	go func() {
		resp, err := http.Get(baseURL + "/slow")
		if err != nil {
			slow <- 0
			return
		}
		resp.Body.Close()
		slow <- resp.StatusCode
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.Equal(t, http.StatusOK, <-slow)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: busy.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
	assert.Error(t, srv.Run(context.Background()))
}
