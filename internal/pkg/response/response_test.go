package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, app *fiber.App, path string) (int, Envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env
}

func TestSuccessEnvelope(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return Success(c, fiber.StatusCreated, "", map[string]int{"total": 1})
	})

	code, env := decode(t, app, "/ok")
	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, MessageCreated, env.Message)
	assert.Empty(t, env.Error)
	assert.Equal(t, "2026-01-02T03:04:05Z", env.Timestamp)
}

func TestErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/dup", func(c fiber.Ctx) error {
		return Error(c, fiber.StatusConflict, ReasonDuplicateApplication, "already applied", nil)
	})
	app.Get("/bad", func(c fiber.Ctx) error {
		return Error(c, 42, "", "", nil)
	})

	code, env := decode(t, app, "/dup")
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, env.Success)
	assert.Equal(t, ReasonDuplicateApplication, env.Error)
	assert.Equal(t, "already applied", env.Message)

	code, env = decode(t, app, "/bad")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, ReasonPersistence, env.Error)
	assert.Equal(t, MessageInternalServerError, env.Message)
}

func TestReasonForStatus(t *testing.T) {
	assert.Equal(t, ReasonValidation, ReasonForStatus(fiber.StatusBadRequest))
	assert.Equal(t, ReasonUnauthorized, ReasonForStatus(fiber.StatusUnauthorized))
	assert.Equal(t, ReasonNotFound, ReasonForStatus(fiber.StatusNotFound))
	assert.Equal(t, ReasonConflict, ReasonForStatus(fiber.StatusConflict))
	assert.Equal(t, ReasonPersistence, ReasonForStatus(fiber.StatusServiceUnavailable))
	assert.Equal(t, ReasonError, ReasonForStatus(fiber.StatusTeapot))
}
