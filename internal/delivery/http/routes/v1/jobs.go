package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/handler"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler) {
	if r == nil {
		return
	}
	if jobsHandler == nil {
		return
	}

	jobsHandler.RegisterRoutes(r)
}

func RegisterApplications(r fiber.Router, applicationHandler *handler.ApplicationHandler) {
	if r == nil {
		return
	}
	if applicationHandler == nil {
		return
	}

	applicationHandler.RegisterRoutes(r)
}
