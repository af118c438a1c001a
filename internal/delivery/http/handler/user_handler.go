package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/dto"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/middleware"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase"
	ucuser "github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase/user"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	prof, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prof, err := h.uc.UpdateProfile(c.Context(), userID, ucuser.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Location:    req.Location,
		LinkedInURL: req.LinkedInURL,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewProfileResponse(prof))
}

func mapProfileError(err error) error {
	if errors.Is(err, usecase.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	}
	return mapUsecaseError(err)
}
