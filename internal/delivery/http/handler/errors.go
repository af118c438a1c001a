package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/dto"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/delivery/http/middleware"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return badRequest(verr.Error(), err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest("Bad request", err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied to this job", nil, err).
			WithReason(response.ReasonDuplicateApplication)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resource not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequest(message string, cause error) *middleware.AppError {
	return middleware.NewAppError(fiber.StatusBadRequest, message, nil, cause).WithReason(response.ReasonValidation)
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return badRequest("Malformed request body", err)
	}
	if err := dto.Validate(req); err != nil {
		return badRequest(err.Error(), err)
	}
	return nil
}

func currentUser(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}
