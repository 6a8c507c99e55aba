// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Job service specific errors
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrValidationFailed  = errors.New("validation failed")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeJobNotFound      = "JOB_NOT_FOUND"
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDatabaseError    = "DATABASE_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCompanyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCompanyNotFound,
			Message: "Company not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidRequest,
			Message: "Invalid request",
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseError,
			Message: "Database operation failed",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
		})
	}
}

// HandleValidationError answers 400 with every message carried by err.
func HandleValidationError(c *fiber.Ctx, err error) error {
	var detailed interface{ Details() []string }
	var details interface{} = err.Error()
	if errors.As(err, &detailed) {
		details = detailed.Details()
	}
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: details,
	})
}
