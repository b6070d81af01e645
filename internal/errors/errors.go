// Package errors provides custom error types for the Aurum API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
)

// Purchase errors.
var (
	ErrInvalidAmount = &AppError{Code: "INVALID_AMOUNT", Message: "Minimum investment amount is 10", StatusCode: http.StatusBadRequest}
	ErrValidation    = &AppError{Code: "VALIDATION_ERROR", Message: "Purchase record failed validation", StatusCode: http.StatusInternalServerError}
)

// Assistant errors. Completion calls can fail on network, timeout, or
// provider errors; neither failure is retried by the core.
var (
	ErrClassificationFailed = &AppError{Code: "CLASSIFICATION_FAILED", Message: "Failed to analyze message", StatusCode: http.StatusInternalServerError}
	ErrGenerationFailed     = &AppError{Code: "GENERATION_FAILED", Message: "Failed to generate response", StatusCode: http.StatusInternalServerError}
)

// Storage errors.
var (
	ErrStorageUnavailable = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "Storage is temporarily unavailable", StatusCode: http.StatusInternalServerError}
)
