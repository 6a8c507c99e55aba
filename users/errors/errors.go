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

// User service specific errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrAlreadyApplied     = errors.New("already applied")
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrWeakPassword       = errors.New("password is not strong enough")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrValidationFailed   = errors.New("validation failed")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

// Error codes
const (
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeJobNotFound        = "JOB_NOT_FOUND"
	CodeDuplicateUsername  = "DUPLICATE_USERNAME"
	CodeAlreadyApplied     = "ALREADY_APPLIED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDatabaseError      = "DATABASE_ERROR"
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
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDuplicateUsername):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeDuplicateUsername,
			Message: "Duplicate username",
			Details: err.Error(),
		})
	case errors.Is(err, ErrAlreadyApplied):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeAlreadyApplied,
			Message: "Already applied to this job",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCredentials):
		// Never reveal which of the two was wrong.
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username/password",
		})
	case errors.Is(err, ErrWeakPassword):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeWeakPassword,
			Message: "Password is not strong enough",
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
