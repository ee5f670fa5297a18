package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Business error codes, one per taxonomy kind
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeAuth            = "AUTH_ERROR"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMITED"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeGeneration      = "GENERATION_ERROR"
	CodeUnexpected      = "UNEXPECTED_ERROR"
	CodeDatabaseExecute = "DATABASE_EXECUTE_FAILED"
)

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors of the same business code, so derived errors created with
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode && e.httpCode == other.httpCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a more specific user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		CodeValidation,
		"Invalid request",
		"",
	)

	ErrAuth = NewBaseError(
		http.StatusUnauthorized,
		CodeAuth,
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"You do not have access to this resource",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Resource not found",
		"",
	)

	ErrItineraryNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Itinerary not found",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		CodeRateLimited,
		"Too many requests, please slow down",
		"",
	)

	ErrUnexpected = NewBaseError(
		http.StatusInternalServerError,
		CodeUnexpected,
		"Internal server error, please try again later",
		"",
	)
)

// NewValidationError builds a ValidationError whose message enumerates the offending fields.
func NewValidationError(reason string, fields ...string) *BaseError {
	message := reason
	if len(fields) > 0 {
		message = fmt.Sprintf("%s: %s", reason, strings.Join(fields, ", "))
	}

	return ErrValidation.WithMessage(message)
}

// UpstreamError represents a failed or timed-out call to a third-party provider.
// Message is generic; Details carries the provider's own message and is only
// exposed outside production.
type UpstreamError struct {
	provider string
	code     string
	message  string
	cause    error
}

// NewUpstreamError wraps a provider failure
func NewUpstreamError(provider string, cause error) *UpstreamError {
	return &UpstreamError{
		provider: provider,
		code:     CodeUpstream,
		message:  "The " + provider + " service is currently unavailable",
		cause:    cause,
	}
}

// NewGenerationError wraps a failure of the itinerary generation step
func NewGenerationError(provider string, cause error) *UpstreamError {
	return &UpstreamError{
		provider: provider,
		code:     CodeGeneration,
		message:  "Failed to generate a response, please try again later",
		cause:    cause,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.cause == nil {
		return e.provider + ": upstream failure"
	}

	return e.provider + ": " + e.cause.Error()
}

// Unwrap exposes the provider error
func (e *UpstreamError) Unwrap() error {
	return e.cause
}

// Provider returns the failing provider name
func (e *UpstreamError) Provider() string {
	return e.provider
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return e.code
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.message
}

// Details returns the provider's own failure message
func (e *UpstreamError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecute
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error, please try again later"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
