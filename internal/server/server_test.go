package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/novera/internal/config"
	"github.com/MKhiriev/novera/internal/handler"
	myGRPC "github.com/MKhiriev/novera/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/novera/internal/handler/http"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCListenerBound(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(&service.Services{}, logger.Nop())}

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	s, ok := srv.(*server)
	require.True(t, ok)
	require.NotNil(t, s.gRPCServer)
	assert.Nil(t, s.httpServer)

	done := make(chan struct{})
	go func() {
		s.gRPCServer.RunServer()
		close(done)
	}()

	s.Shutdown()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}

func TestNewServer_GRPCAddressInUse(t *testing.T) {
	first, err := newGRPCServer(myGRPC.NewHandler(&service.Services{}, logger.Nop()), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.gRPCNetListener.Close() })

	cfg := config.Server{GRPCAddress: first.gRPCNetListener.Addr().String()}
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(&service.Services{}, logger.Nop())}

	_, err = NewServer(handlers, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPServer_ShutdownStopsServing(t *testing.T) {
	h := myHTTP.NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	srv := newHTTPServer(h.Init(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	// routes answer before the listener is started
	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.server.Shutdown(ctx) == nil
	}, 5*time.Second, 50*time.Millisecond)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("HTTP server did not stop")
	}
}
