package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType defines the categories the HTTP layer maps to status codes
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// AppError is the error type returned by services and repositories
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidation(message string) error {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func NewNotFound(message string) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

func NewUnauthorized(message string) error {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message}
}

func NewInternal(message string, err error) error {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// Wrap adds context to err. AppErrors keep their type, anything else
// becomes an internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}

	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// TypeOf returns the AppError type of err, or ErrorTypeInternal for
// anything that is not an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// MessageOf returns the client-safe message carried by err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}

func IsValidation(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsUnauthorized(err error) bool {
	return TypeOf(err) == ErrorTypeUnauthorized
}

func IsInternal(err error) bool {
	return TypeOf(err) == ErrorTypeInternal
}
