package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/rs/zerolog"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/config"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/handler"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/middleware"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/routes"
	v1 "github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/routes/v1"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/ws"
)

const Version = "1.0.0"

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP app. The registry is injected so tests can mount
// handlers backed by fakes.
func New(cfg config.Config, logger zerolog.Logger, registry *routes.Registry) *App {
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	registerGlobalMiddleware(f, cfg, logger)
	if registry != nil {
		registry.Register(f)
	}

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	wsHandler := ws.NewHandler(c.Hub, cfg.App.CORSOrigins, logger)
	registry := routes.NewRegistry(
		handler.NewHealthHandler(cfg.App.AppName, Version, c.DB),
		v1.Handlers{
			AuthMiddleware: middleware.NewAuthMiddleware(c.JWT),
			Auth:           handler.NewAuthHandler(c.AuthUsecase),
			User:           handler.NewUserHandler(c.UserUsecase),
			Applications:   handler.NewApplicationHandler(c.ApplicationUsecase),
			Jobs:           handler.NewJobsHandler(c.JobListUsecase),
			WS:             wsHandler.HandleUserWS,
		},
	)

	return New(cfg, logger, registry), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger zerolog.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowCredentials: !slices.Contains(cfg.App.CORSOrigins, "*"),
	}))
	app.Use(compress.New())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
