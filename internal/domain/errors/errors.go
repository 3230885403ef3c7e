// Package errors defines the application error taxonomy shared by the
// delivery and usecase layers.
package errors

import (
	"net/http"

	"jobmatch/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

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
	return e.message
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

// Predefined error types
var (
	// Input validation errors. These fail fast before any repository call.
	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude must be between -90 and 90 and longitude between -180 and 180",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Search radius must be a positive number of kilometers",
		"",
	)

	ErrInvalidPagination = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGINATION",
		"Page must be at least 1 and page size a positive number",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Record errors. A malformed source record indicates upstream data
	// corruption; it is logged and skipped, never fatal for the batch.
	ErrInvalidRecord = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_RECORD",
		"Source record is missing required identifiers",
		"",
	)

	// Lookup errors.
	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"Job posting not found",
		"",
	)

	ErrCandidateNotFound = NewBaseError(
		http.StatusNotFound,
		"CANDIDATE_NOT_FOUND",
		"Candidate not found",
		"",
	)

	ErrJobNotMatchable = NewBaseError(
		http.StatusConflict,
		"JOB_NOT_MATCHABLE",
		"Only active job postings can be matched",
		"",
	)

	// Auth errors. This service only consumes access tokens, it never issues them.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Infrastructure errors. Surfaced as retryable server errors, never masked.
	ErrRepositoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REPOSITORY_UNAVAILABLE",
		"Backing data store is unavailable, please retry",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "REPOSITORY_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Backing data store is unavailable, please retry"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
