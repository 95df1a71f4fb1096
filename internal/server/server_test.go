package server

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/handler"
	handlerHTTP "github.com/MKhiriev/image-filter/internal/handler/http"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/service"
	"github.com/MKhiriev/image-filter/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: handlerHTTP.NewHandler(&service.Services{}, nil, logger.Nop()),
	}
}

func runInBackground(s *server, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()
	return done
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
	}{
		{name: "nil handlers", handlers: nil},
		{name: "no http handler", handlers: &handler.Handlers{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, nil, config.Server{Port: 8082}, logger.Nop())

			assert.Nil(t, s)
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

func TestNewServer_UsesConfiguredAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(), nil, config.Server{Host: "127.0.0.1", Port: 9090}, logger.Nop())

	require.NoError(t, err)
	srv := s.(*server)
	assert.Equal(t, "127.0.0.1:9090", srv.httpServer.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
}

// countingWorker records whether it was started and stopped.
type countingWorker struct {
	started, stopped atomic.Bool
}

func (c *countingWorker) Run(ctx context.Context) {
	c.started.Store(true)
	<-ctx.Done()
	c.stopped.Store(true)
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(), nil, config.Server{Host: "127.0.0.1", Port: 0}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := runInBackground(s.(*server), ctx)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_ListenFailureIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	s, err := NewServer(newTestHandlers(), nil, config.Server{Host: "127.0.0.1", Port: port}, logger.Nop())
	require.NoError(t, err)

	select {
	case err := <-runInBackground(s.(*server), context.Background()):
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listen failure was not reported")
	}
}

func TestServer_Run_WorkersFollowServerLifecycle(t *testing.T) {
	w := &countingWorker{}
	s := &server{
		httpServer: newHTTPServer(newTestHandlers().HTTP.Init(), config.Server{Host: "127.0.0.1"}, logger.Nop()),
		workers:    workers.New(w),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := runInBackground(s, ctx)

	require.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, w.stopped.Load())
}
