package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nour-Ali/NodeBB-nour/pkg/apperrors"
)

// Envelope represents the standard API response shape. Error carries the
// machine-readable code (a translation key such as
// "[[error:group-already-exists]]"); Message is the human-readable text.
type Envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Pagination interface{}       `json:"pagination,omitempty"`
}

// Success writes a success response with optional message and data.
func Success(c *gin.Context, status int, data interface{}, message string, pagination interface{}) {
	c.JSON(status, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// Created is a convenience helper for POST 201 responses.
func Created(c *gin.Context, data interface{}, message string) {
	Success(c, http.StatusCreated, data, message, nil)
}

// Error writes an error response with a message and machine code.
func Error(c *gin.Context, status int, message string, code apperrors.ErrorCode) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   string(code),
	})
}

// FromError writes err as an envelope. AppErrors keep their status, code and
// fields; anything else becomes a 500 whose cause is logged but not exposed.
func FromError(logger *slog.Logger, c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.New("Internal server error", http.StatusInternalServerError, apperrors.ErrInternal, err)
	}

	status := appErr.StatusCode()
	if logger != nil {
		attrs := []any{
			slog.Int("status", status),
			slog.String("code", string(appErr.Code())),
			slog.String("error", err.Error()),
		}
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), appErr.Message(), attrs...)
		} else {
			logger.WarnContext(c.Request.Context(), appErr.Message(), attrs...)
		}
	}

	c.JSON(status, Envelope{
		Success: false,
		Message: appErr.Message(),
		Error:   string(appErr.Code()),
		Fields:  appErr.Fields(),
	})
}
