package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/response"
)

type AppError struct {
	StatusCode int
	Reason     string
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// WithReason overrides the reason derived from the status code.
func (e *AppError) WithReason(reason string) *AppError {
	e.Reason = reason
	return e
}

type ErrorMiddleware struct {
	logger zerolog.Logger
}

func NewErrorMiddleware(logger zerolog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error().
					Str("request_id", RequestID(c)).
					Str("path", c.Path()).
					Err(fmt.Errorf("panic: %v", r)).
					Msg("panic recovered")
				err = response.Error(c, fiber.StatusInternalServerError, response.ReasonPersistence, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, reason, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Error().
				Str("request_id", RequestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Err(err).
				Msg("request failed")
		}
		return response.Error(c, status, reason, msg, data)
	}
}

// normalizeError never lets a 5xx cause or message reach the client; only
// the status code survives.
func normalizeError(err error) (int, string, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return status, response.ReasonPersistence, response.MessageInternalServerError, nil
		}
		reason := appErr.Reason
		if reason == "" {
			reason = response.ReasonForStatus(status)
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, reason, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return status, response.ReasonPersistence, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, response.ReasonForStatus(status), msg, nil
	}

	return fiber.StatusInternalServerError, response.ReasonPersistence, response.MessageInternalServerError, nil
}
