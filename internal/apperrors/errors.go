package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, expired or rejected session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the capability for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnbalanced indicates a journal entry whose debits and credits do not agree.
var ErrUnbalanced = errors.New("journal entry must be balanced (Total Debits = Total Credits)")

// ErrInvalidDateRange indicates a report filter whose dates are unparsable or inverted.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrNoCompany indicates the session user is not attached to a company.
var ErrNoCompany = errors.New("no company context")

// APIError is a non-2xx response from the accounting API. Message carries the
// server's error text verbatim, or the operation's fallback text when the
// response body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is maps upstream status codes onto the package sentinels so callers can
// branch with errors.Is without caring where the error came from.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case ErrDuplicate:
		return e.Status == http.StatusConflict
	}
	return false
}

// NewAPIError builds an APIError, falling back to the given text when the
// server supplied no message.
func NewAPIError(status int, message, fallback string) *APIError {
	if message == "" {
		message = fallback
	}
	return &APIError{Status: status, Message: message}
}

// ValidationError is a local validation failure carrying the message shown
// next to the offending form. It unwraps to the sentinel it was built from.
type ValidationError struct {
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

// NewValidationError wraps kind (ErrValidation, ErrUnbalanced, ErrInvalidDateRange)
// with a user-facing message.
func NewValidationError(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...), kind: kind}
}

// StatusFor returns the HTTP status a handler should answer with for err.
func StatusFor(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUnbalanced), errors.Is(err, ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNoCompany):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
