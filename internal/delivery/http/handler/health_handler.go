package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/middleware"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	service string
	version string
	db      Pinger
}

func NewHealthHandler(service, version string, db Pinger) *HealthHandler {
	return &HealthHandler{service: service, version: version, db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := fiber.Map{
		"status":  "ok",
		"service": h.service,
		"version": h.version,
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "database unavailable", nil, err)
		}
		data["database"] = "ok"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
