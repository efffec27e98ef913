package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyExists        = errors.New("resource already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidKey           = errors.New("invalid or expired api key")
	ErrRateLimited          = errors.New("rate limit exceeded")
	ErrQuotaExceeded        = errors.New("monthly quota exceeded")
	ErrGeneratorUnavailable = errors.New("generator unavailable")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// RateLimited is surfaced when the per-minute request limit is exhausted.
func RateLimited(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message, ErrRateLimited)
}

// QuotaExceeded is surfaced when the monthly chunk quota is exhausted.
func QuotaExceeded(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message, ErrQuotaExceeded)
}

// GeneratorUnavailable is surfaced when the generation dependency is not loaded.
func GeneratorUnavailable() *AppError {
	return NewAppError(http.StatusInternalServerError, "GoldenSeed generator not available", ErrGeneratorUnavailable)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
