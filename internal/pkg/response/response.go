package response

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// Envelope is the shape of every response body, success or failure, so
// clients can branch on Success alone.
type Envelope struct {
	Success   bool   `json:"success"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

const (
	MessageOK                  = "ok"
	MessageCreated             = "created"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

// Reasons are the machine-checkable failure codes carried in Envelope.Error.
const (
	ReasonValidation           = "ValidationError"
	ReasonUnauthorized         = "Unauthorized"
	ReasonForbidden            = "Forbidden"
	ReasonNotFound             = "NotFound"
	ReasonDuplicateApplication = "DuplicateApplication"
	ReasonConflict             = "Conflict"
	ReasonPersistence          = "PersistenceError"
	ReasonError                = "Error"
)

var now = time.Now

func Success(c fiber.Ctx, status int, message string, data any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{
		Success:   true,
		Status:    st,
		Message:   normalizeMessage(message, st),
		Data:      data,
		Timestamp: now().UTC().Format(time.RFC3339),
	})
}

func Error(c fiber.Ctx, status int, reason, message string, data any) error {
	st := normalizeStatus(status)
	if reason == "" {
		reason = ReasonForStatus(st)
	}
	return c.Status(st).JSON(Envelope{
		Success:   false,
		Status:    st,
		Message:   normalizeMessage(message, st),
		Error:     reason,
		Data:      data,
		Timestamp: now().UTC().Format(time.RFC3339),
	})
}

func ReasonForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return ReasonValidation
	case fiber.StatusUnauthorized:
		return ReasonUnauthorized
	case fiber.StatusForbidden:
		return ReasonForbidden
	case fiber.StatusNotFound:
		return ReasonNotFound
	case fiber.StatusConflict:
		return ReasonConflict
	default:
		if status >= 500 {
			return ReasonPersistence
		}
		return ReasonError
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusCreated:
		return MessageCreated
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
