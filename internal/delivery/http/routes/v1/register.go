package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/handler"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/middleware"
)

type Handlers struct {
	AuthMiddleware *middleware.AuthMiddleware
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	Applications   *handler.ApplicationHandler
	Jobs           *handler.JobsHandler
	// WS upgrades /ws; nil disables realtime.
	WS fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.AuthMiddleware == nil {
		return
	}

	authGroup := r.Group("/auth")
	if h.Auth != nil {
		h.Auth.RegisterRoutes(authGroup)
	}
	if h.User != nil {
		h.User.RegisterRoutes(authGroup.Group("", h.AuthMiddleware.Middleware()))
	}

	// Registered ahead of the header-only group, which would otherwise
	// reject query-token upgrades.
	if h.WS != nil {
		r.Get("/ws", h.AuthMiddleware.QueryMiddleware(), h.WS)
	}

	protected := r.Group("", h.AuthMiddleware.Middleware())
	RegisterApplications(protected.Group("/applications"), h.Applications)
	RegisterJobs(protected.Group("/jobs"), h.Jobs)
}
