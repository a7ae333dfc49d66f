package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/saransh1220/gallery-backend/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig(port string) config.ServerConfig {
	return config.ServerConfig{
		Port:            port,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    90 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}
}

func TestNewServer(t *testing.T) {
	mux := http.NewServeMux()
	server := NewServer(testServerConfig("3001"), mux)

	assert.NotNil(t, server)
	assert.Equal(t, "3001", server.port)
	assert.Equal(t, ":3001", server.httpServer.Addr)
	assert.NotNil(t, server.httpServer.Handler)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 90*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 2*time.Second, server.shutdownTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	server := NewServer(testServerConfig("0"), http.NewServeMux())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	server := NewServer(testServerConfig("not-a-port"), http.NewServeMux())

	err := server.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}
