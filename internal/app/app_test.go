package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/logger"
)

type fakeProbe struct {
	err    error
	called bool
}

func (f *fakeProbe) VerifyConnection(ctx context.Context) error {
	f.called = true
	return f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRun_StorageFailureAbortsBeforeListen(t *testing.T) {
	probe := &fakeProbe{err: errors.New("connection refused")}
	warmupCalled := false
	a := New(testConfig(), logger.New("error", "json"), probe, func(ctx context.Context) error {
		warmupCalled = true
		return nil
	}, okHandler())

	listened := false
	a.OnReady = func(addr string) { listened = true }

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unreachable")
	assert.True(t, probe.called)
	assert.False(t, listened, "server must not bind after a failed storage check")
	assert.False(t, warmupCalled, "warm-up must not start after a failed storage check")
}

func TestRun_WarmupFailureDoesNotAbortStartup(t *testing.T) {
	var mu sync.Mutex
	warmupDone := false

	a := New(testConfig(), logger.New("error", "json"), &fakeProbe{}, func(ctx context.Context) error {
		mu.Lock()
		warmupDone = true
		mu.Unlock()
		return errors.New("payment settings table empty")
	}, okHandler())

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	a.OnReady = func(addr string) { ready <- addr }

	runErr := make(chan error, 1)
	go func() { runErr <- a.Run(ctx) }()

	var addr string
	select {
	case addr = <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	// The server answers requests even though the warm-up failed
	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return warmupDone
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_GracefulShutdownOnContextCancel(t *testing.T) {
	a := New(testConfig(), logger.New("error", "json"), &fakeProbe{}, nil, okHandler())

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	a.OnReady = func(addr string) { ready <- addr }

	runErr := make(chan error, 1)
	go func() { runErr <- a.Run(ctx) }()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	cancel()
	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
