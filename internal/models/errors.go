package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode is the closed set of failure variants the API can surface.
// Every failure raised anywhere in the request pipeline is one of these;
// the server's error handler is the only place that maps a code to an
// HTTP status and client-facing envelope.
type ErrorCode string

const (
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeDuplicateField   ErrorCode = "DUPLICATE_FIELD"
	CodeMalformedID      ErrorCode = "MALFORMED_ID"
	CodeUnauthenticated  ErrorCode = "UNAUTHENTICATED"
	CodeInvalidToken     ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired     ErrorCode = "TOKEN_EXPIRED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeRouteNotFound    ErrorCode = "ROUTE_NOT_FOUND"
	CodeInternal         ErrorCode = "INTERNAL"
)

// AppError is the application error type carried through handlers, services
// and repositories. Message is safe to show to clients; Err holds the
// underlying cause for logging.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error variant.
func (e *AppError) Status() int {
	switch e.Code {
	case CodeValidationFailed, CodeDuplicateField, CodeMalformedID:
		return fiber.StatusBadRequest
	case CodeUnauthenticated, CodeInvalidToken, CodeTokenExpired:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound, CodeRouteNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Predefined error constructors

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: message}
}

func NewDuplicateFieldError(field string) *AppError {
	return &AppError{Code: CodeDuplicateField, Message: field + " already exists"}
}

func NewMalformedIDError() *AppError {
	return &AppError{Code: CodeMalformedID, Message: "Invalid ID format"}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func NewInvalidTokenError() *AppError {
	return &AppError{Code: CodeInvalidToken, Message: "Invalid token"}
}

func NewTokenExpiredError() *AppError {
	return &AppError{Code: CodeTokenExpired, Message: "Token expired"}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

func NewRouteNotFoundError(path string) *AppError {
	return &AppError{Code: CodeRouteNotFound, Message: fmt.Sprintf("Route %s not found", path)}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal Server Error", Err: err}
}
