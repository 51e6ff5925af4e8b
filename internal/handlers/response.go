package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"crackbench/internal/core/domain"
	"crackbench/internal/platform/errors"
)

// Messages returned to API clients.
const (
	msgMissingInput   = "URL and Hash are required for analysis."
	msgNoKeywords     = "Could not extract keywords from URL."
	msgSourceFailed   = "Could not fetch keywords from URL."
	msgPredictor      = "Password model is unavailable."
	msgNotFound       = "Report not found."
	msgTimeout        = "Analysis timed out."
	msgInternal       = "Internal server error."
	msgInvalidRequest = "Invalid request body."
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// statusFor maps an analysis error to its HTTP status and client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, msgMissingInput
	case errors.Is(err, domain.ErrNoKeywords):
		return fiber.StatusUnprocessableEntity, msgNoKeywords
	case errors.Is(err, domain.ErrPredictorFailed):
		return fiber.StatusBadGateway, msgPredictor
	case errors.Is(err, domain.ErrKeywordSourceFailed):
		return fiber.StatusBadGateway, msgSourceFailed
	case errors.Is(err, domain.ErrReportNotFound):
		return fiber.StatusNotFound, msgNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.IsTimeout(err):
		return fiber.StatusGatewayTimeout, msgTimeout
	case errors.Is(err, context.Canceled):
		// el cliente cerró la conexión; nadie lee este status
		return 499, "Request canceled."
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}
