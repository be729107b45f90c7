package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromError_SentinelMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"authentication", ErrAuthentication, http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{"session", ErrSessionNotFound, http.StatusUnauthorized, "SESSION_NOT_FOUND"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"key", ErrKeyNotFound, http.StatusInternalServerError, "KEY_NOT_FOUND"},
		{"onboarding unavailable", ErrOnboardingUnavailable, http.StatusInternalServerError, "ONBOARDING_UNAVAILABLE"},
		{"onboarding failed", ErrOnboardingFailed, http.StatusInternalServerError, "ONBOARDING_FAILED"},
		{"submission", ErrSubmission, http.StatusInternalServerError, "SUBMISSION_ERROR"},
		{"status lookup", ErrStatusLookup, http.StatusInternalServerError, "STATUS_LOOKUP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(tt.err)
			require.Equal(t, tt.status, appErr.Status)
			require.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestFromError_WrappedSentinelKeepsMessage(t *testing.T) {
	err := fmt.Errorf("%w: quote produced no calls", ErrSubmission)
	appErr := FromError(err)
	require.Equal(t, http.StatusInternalServerError, appErr.Status)
	require.Equal(t, "SUBMISSION_ERROR", appErr.Code)
	require.Contains(t, appErr.Message, "quote produced no calls")
}

func TestFromError_AppErrorPassthrough(t *testing.T) {
	original := BadRequest("Missing identity assertion")
	appErr := FromError(original)
	require.Same(t, original, appErr)
}

func TestFromError_UnknownError(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, appErr.Status)
	require.Equal(t, "INTERNAL_ERROR", appErr.Code)
	require.Equal(t, "boom", appErr.Message)
}

func TestAppError_Unwrap(t *testing.T) {
	appErr := Unauthorized("nope")
	require.ErrorIs(t, appErr, ErrAuthentication)
}

func TestConstructors(t *testing.T) {
	require.Equal(t, http.StatusNotFound, NotFound("gone").Status)
	require.Equal(t, http.StatusInternalServerError, InternalError(errors.New("x")).Status)
	require.Equal(t, "internal server error", InternalError(nil).Message)
}
