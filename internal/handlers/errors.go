package handlers

import (
	"errors"
	"time"

	"inventario/internal/apperrors"
	"inventario/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request on both tiers.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindProductNotFound:   fiber.StatusNotFound,
	apperrors.KindCategoryNotFound:  fiber.StatusNotFound,
	apperrors.KindInventoryNotFound: fiber.StatusNotFound,
	apperrors.KindAlreadyExists:     fiber.StatusConflict,
	apperrors.KindValidation:        fiber.StatusBadRequest,
	apperrors.KindCommunication:     fiber.StatusInternalServerError,
	apperrors.KindInternal:          fiber.StatusInternalServerError,
}

// StatusFor returns the HTTP status of an error kind.
func StatusFor(kind apperrors.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

func describe(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperrors.KindInternal {
		return fiber.StatusInternalServerError, "unexpected error: " + err.Error()
	}
	if appErr.Kind == apperrors.KindCommunication {
		// The upstream cause stays in the logs.
		return StatusFor(appErr.Kind), appErr.Message
	}
	return StatusFor(appErr.Kind), appErr.Error()
}

// ErrorHandler renders errors returned by handlers as ErrorResponse. Server
// errors are logged with their cause.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := describe(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("request_id", observability.RequestIDFrom(c.UserContext())),
				zap.Int("status", status),
				zap.Error(err))
		}
		return c.Status(status).JSON(ErrorResponse{
			Status:    status,
			Message:   message,
			Timestamp: time.Now().UTC(),
		})
	}
}
