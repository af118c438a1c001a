package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/config"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/handler"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/middleware"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/routes"
	v1 "github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/routes/v1"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/jwt"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func testConfig() config.Config {
	return config.Config{App: config.AppConfig{
		AppName:     "swipeforjobs",
		Environment: "test",
		HTTPPort:    "8000",
		CORSOrigins: []string{"http://localhost:3000"},
	}}
}

func newTestApp(db handler.Pinger) *App {
	tokens := jwt.NewHMACService("access", "refresh", time.Hour, time.Hour)
	registry := routes.NewRegistry(
		handler.NewHealthHandler("swipeforjobs", Version, db),
		v1.Handlers{AuthMiddleware: middleware.NewAuthMiddleware(tokens)},
	)
	return New(testConfig(), zerolog.Nop(), registry)
}

func decode(t *testing.T, resp *http.Response) response.Envelope {
	t.Helper()
	defer resp.Body.Close()
	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHealth_OK(t *testing.T) {
	a := newTestApp(pinger{})

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	env := decode(t, resp)
	assert.True(t, env.Success)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, Version, data["version"])
	assert.Equal(t, "ok", data["database"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	a := newTestApp(pinger{err: errors.New("connection refused")})

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	env := decode(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, response.ReasonPersistence, env.Error)
	assert.NotContains(t, env.Message, "connection refused")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	a := newTestApp(nil)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/applications/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env := decode(t, resp)
	assert.Equal(t, response.ReasonUnauthorized, env.Error)
}

func TestSecurityHeaders(t *testing.T) {
	a := newTestApp(nil)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8000")
	require.NoError(t, err)
	assert.Equal(t, ":8000", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNew_WildcardOriginDropsCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.App.CORSOrigins = []string{"*"}

	var a *App
	require.NotPanics(t, func() { a = New(cfg, zerolog.Nop(), nil) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.org")
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}
