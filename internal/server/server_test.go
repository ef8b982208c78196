// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-service/internal/config"
	"github.com/MKhiriev/go-users-service/internal/logger"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(http.NotFoundHandler(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServerAddress)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	srv, err := NewServer(handler, testServerConfig(), logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testServerConfig()
	cfg.HTTPAddress = ln.Addr().String()

	srv, err := NewServer(http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
