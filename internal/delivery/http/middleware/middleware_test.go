package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/jwt"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(zerolog.Nop()).Middleware())
	app.Use(NewErrorMiddleware(zerolog.Nop()).Middleware())
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, header map[string]string) (int, response.Envelope, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env, resp.Header.Get(HeaderRequestID)
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newTestApp()
	app.Get("/dup", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "already applied", nil, nil).WithReason(response.ReasonDuplicateApplication)
	})

	code, env, rid := do(t, app, fiber.MethodGet, "/dup", nil)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, env.Success)
	assert.Equal(t, response.ReasonDuplicateApplication, env.Error)
	assert.NotEmpty(t, rid)
}

func TestErrorMiddleware_HidesInternalCause(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pq: relation missing", nil, errors.New("secret detail"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("raw")
	})

	for _, path := range []string{"/boom", "/plain"} {
		code, env, _ := do(t, app, fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.Equal(t, response.ReasonPersistence, env.Error)
		assert.Equal(t, response.MessageInternalServerError, env.Message)
		assert.Nil(t, env.Data)
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newTestApp()
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("bad")
	})

	code, env, _ := do(t, app, fiber.MethodGet, "/panic", nil)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.False(t, env.Success)
}

func TestErrorMiddleware_FiberError(t *testing.T) {
	app := newTestApp()
	code, env, _ := do(t, app, fiber.MethodGet, "/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, response.ReasonNotFound, env.Error)
}

func TestAccessLog_KeepsIncomingRequestID(t *testing.T) {
	app := newTestApp()
	app.Get("/ok", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", RequestID(c))
	})

	_, env, rid := do(t, app, fiber.MethodGet, "/ok", map[string]string{HeaderRequestID: "req-123"})
	assert.Equal(t, "req-123", rid)
	assert.Equal(t, "req-123", env.Data)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := jwt.NewHMACService("access", "refresh", time.Hour, time.Hour)
	uid := uuid.New()
	access, err := tokens.GenerateAccessToken(jwt.Identity{UserID: uid, Email: "a@example.ie"})
	require.NoError(t, err)
	refresh, err := tokens.GenerateRefreshToken(uid)
	require.NoError(t, err)

	auth := NewAuthMiddleware(tokens)
	app := newTestApp()
	handler := func(c fiber.Ctx) error {
		id, ok := UserIDFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "", nil, nil)
		}
		return response.Success(c, fiber.StatusOK, "", id.String())
	}
	app.Get("/me", auth.Middleware(), handler)
	app.Get("/ws", auth.QueryMiddleware(), handler)

	code, env, _ := do(t, app, fiber.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + access})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, uid.String(), env.Data)

	code, env, _ = do(t, app, fiber.MethodGet, "/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, response.ReasonUnauthorized, env.Error)

	code, _, _ = do(t, app, fiber.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + refresh})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _, _ = do(t, app, fiber.MethodGet, "/me?token="+access, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, env, _ = do(t, app, fiber.MethodGet, "/ws?token="+access, nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, uid.String(), env.Data)
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := bearerTokenFromHeader("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerTokenFromHeader("Basic abc")
	assert.False(t, ok)
	_, ok = bearerTokenFromHeader("Bearer ")
	assert.False(t, ok)
	_, ok = bearerTokenFromHeader("")
	assert.False(t, ok)
}
