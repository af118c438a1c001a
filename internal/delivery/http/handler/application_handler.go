package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/dto"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.RecordDecision)
	r.Get("/", h.ListApplications)
	r.Get("/stats", h.GetStats)
}

func (h *ApplicationHandler) RecordDecision(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.DecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.uc.RecordDecision(c.Context(), usecase.RecordDecisionInput{
		UserID: userID,
		JobID:  req.JobID,
		Action: req.Action,
		Job:    req.JobData.Metadata(),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	if res.Decision == application.DecisionReject || res.Application == nil {
		return response.Success(c, fiber.StatusOK, res.Message, nil)
	}
	return response.Success(c, fiber.StatusCreated, res.Message, dto.NewApplicationResponse(*res.Application))
}

func (h *ApplicationHandler) ListApplications(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListApplications(c.Context(), userID, c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(items))
}

func (h *ApplicationHandler) GetStats(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.GetStats(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}
