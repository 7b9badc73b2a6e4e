package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gamecatalog/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:            "0",
		GinMode:         gin.TestMode,
		LogLevel:        "info",
		DatabaseDriver:  config.DriverSQLite,
		DatabaseURL:     ":memory:",
		PreferencesFile: filepath.Join(t.TempDir(), "preferences.json"),
	}
}

func TestNewAppServesCatalog(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(t), zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.close() })

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/studios", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNewAppFailsWhenDatabaseCannotOpen(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "missing", "catalog.db")

	_, err := newApp(context.Background(), cfg, zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestRunReturnsStartupError(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "missing", "catalog.db")

	assert.Error(t, run(context.Background(), cfg, zerolog.New(io.Discard)))
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, testConfig(t), zerolog.New(io.Discard)))
}
