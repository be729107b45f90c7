package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrValidation            = errors.New("invalid request body")
	ErrAuthentication        = errors.New("authentication failed")
	ErrSessionNotFound       = errors.New("session not found")
	ErrNotFound              = errors.New("resource not found")
	ErrAlreadyExists         = errors.New("resource already exists")
	ErrKeyNotFound           = errors.New("signing key not found")
	ErrOnboardingUnavailable = errors.New("onboarding unavailable")
	ErrOnboardingFailed      = errors.New("onboarding failed")
	ErrSubmission            = errors.New("transaction submission failed")
	ErrStatusLookup          = errors.New("transaction status lookup failed")
)

// AppError represents an application error carrying an HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
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
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", message, ErrValidation)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message, ErrAuthentication)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message, ErrNotFound)
}

func InternalError(err error) *AppError {
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	return NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", msg, err)
}

// FromError maps any error onto an AppError. Known sentinels keep their
// status and code; the original message survives so workflow failures
// surface verbatim to the caller.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	switch {
	case errors.Is(err, ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, ErrAuthentication):
		status, code = http.StatusUnauthorized, "AUTHENTICATION_ERROR"
	case errors.Is(err, ErrSessionNotFound):
		status, code = http.StatusUnauthorized, "SESSION_NOT_FOUND"
	case errors.Is(err, ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrKeyNotFound):
		code = "KEY_NOT_FOUND"
	case errors.Is(err, ErrOnboardingUnavailable):
		code = "ONBOARDING_UNAVAILABLE"
	case errors.Is(err, ErrOnboardingFailed):
		code = "ONBOARDING_FAILED"
	case errors.Is(err, ErrSubmission):
		code = "SUBMISSION_ERROR"
	case errors.Is(err, ErrStatusLookup):
		code = "STATUS_LOOKUP_ERROR"
	}
	return NewAppError(status, code, err.Error(), err)
}
