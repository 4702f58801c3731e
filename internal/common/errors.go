package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error kinds, one per pipeline failure mode. Handlers translate these to
// status codes at the HTTP boundary; nothing below the boundary knows about
// status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoText       = errors.New("no readable text")
	ErrExtraction   = errors.New("extraction failed")
	ErrCompletion   = errors.New("completion failed")
	ErrModelOutput  = errors.New("model output invalid")
	ErrInternal     = errors.New("internal error")
)

// NewAppError builds an AppError whose Cause carries the error kind.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus maps an error kind to the status code reported to the caller.
// Client-input problems are 400, everything else is 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoText):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the user-visible message for the error response body.
func Detail(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
