package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"petparrk/internal/auth"
	"petparrk/internal/http/middleware"
	"petparrk/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

const uploadFailedMessage = "Upload failed: the photo could not be stored. Please try again."

// writeServiceError maps service and provider errors to the response body.
// Validation and provider messages are user-facing and returned verbatim.
func writeServiceError(c *fiber.Ctx, err error) error {
	var (
		verr  *service.ValidationError
		nferr *service.NotFoundError
		perr  *auth.ProviderError
	)
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
	case errors.As(err, &nferr):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", nferr.Message)
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, service.ErrUploadFailed):
		return writeError(c, fiber.StatusBadGateway, "UPLOAD_FAILED", uploadFailedMessage)
	case errors.As(err, &perr):
		status := perr.StatusCode
		if status < fiber.StatusBadRequest || status >= fiber.StatusInternalServerError {
			status = fiber.StatusBadGateway
		}
		return writeError(c, status, "AUTH_PROVIDER_ERROR", perr.Message)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			if message == "" || message == http.StatusText(status) {
				message = "authentication required"
			}
			return writeError(c, status, "UNAUTHORIZED", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "Photo must be under 10MB")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
