package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body every failed request receives. The shape is
// part of the client contract and must not change.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// AppError is a typed application error carrying the HTTP status it maps to.
// Handlers return AppErrors upward; the fiber ErrorHandler is the single
// place they are serialized.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
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

// NewValidationError signals missing or malformed input (400).
func NewValidationError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusBadRequest, Message: message}
}

// NewUnauthorizedError signals a missing or invalid session token (401).
func NewUnauthorizedError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusUnauthorized, Message: message}
}

// NewForbiddenError signals an authenticated but not permitted request (403).
func NewForbiddenError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusForbidden, Message: message}
}

// NewNotFoundError signals an absent resource (404).
func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusNotFound, Message: message}
}

// IsNotFound reports whether err is an AppError carrying a 404.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.StatusCode == fiber.StatusNotFound
}

// NewConflictError signals a uniqueness violation (409).
func NewConflictError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusConflict, Message: message}
}

// NewInternalError wraps an unclassified failure (500). The underlying error
// is logged, never serialized.
func NewInternalError(err error) *AppError {
	return &AppError{StatusCode: fiber.StatusInternalServerError, Message: "Something went wrong", Err: err}
}

// RespondWithError writes the standardized error body for err. Unclassified
// errors are reported as 500 without leaking detail.
func RespondWithError(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusInternalServerError
	message := "Something went wrong"

	var appErr *AppError
	if errors.As(err, &appErr) {
		statusCode = appErr.StatusCode
		message = appErr.Message
	}

	return c.Status(statusCode).JSON(ErrorResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
	})
}
