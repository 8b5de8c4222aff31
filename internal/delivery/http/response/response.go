// Package response defines the wire shapes returned by the HTTP surface.
package response

import (
	"net/http"
	"time"

	domainerrors "loginapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the fixed failure shape for every endpoint.
type ErrorResponse struct {
	Message   string    `json:"message"`   // User-friendly message
	Error     string    `json:"error"`     // Stable business error code, e.g. "USER_NOT_FOUND"
	Status    int       `json:"status"`    // HTTP status code, mirrored in the body
	Timestamp time.Time `json:"timestamp"` // Time the failure was mapped, UTC
}

// JSON writes a success payload.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes the failure shape.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Error:     errorCode,
		Status:    statusCode,
		Timestamp: time.Now().UTC(),
	})
}

// AppError writes the failure shape for a typed domain error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}

// BindingError is the 400 response for malformed or invalid request bodies.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), message)
}
