package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabogames/collabo-go/apperror"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  *apperror.AppError
		want int
	}{
		{"auth", apperror.NewAuthError("bad credentials", nil), http.StatusUnauthorized},
		{"validation", apperror.NewValidationError("bad input", nil), http.StatusBadRequest},
		{"bad request", apperror.NewBadRequestError("bad request", nil), http.StatusBadRequest},
		{"database", apperror.NewDatabaseError("db down", nil), http.StatusInternalServerError},
		{"internal", apperror.NewInternalError("boom", nil), http.StatusInternalServerError},
		{"unknown", apperror.NewAppError(apperror.UnknownError, "???", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.StatusCode())
		})
	}
}

func TestToResponse_HidesUnderlyingError(t *testing.T) {
	appErr := apperror.NewDatabaseError("failed to load user", errors.New("dial tcp: connection refused"))

	resp := appErr.ToResponse()
	assert.Equal(t, "failed to load user", resp.Error)
	assert.NotContains(t, resp.Error, "connection refused")
}

func TestErrorAndUnwrap(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	appErr := apperror.NewDatabaseError("failed to load user", underlying)

	assert.Equal(t, "failed to load user: dial tcp: connection refused", appErr.Error())
	assert.Equal(t, underlying, errors.Unwrap(appErr))

	bare := apperror.NewAuthError("bad credentials", nil)
	assert.Equal(t, "bad credentials", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

func TestFromError(t *testing.T) {
	t.Run("direct AppError", func(t *testing.T) {
		appErr, ok := apperror.FromError(apperror.NewAuthError("bad credentials", nil))
		require.True(t, ok)
		assert.Equal(t, apperror.AuthError, appErr.Type)
	})

	t.Run("wrapped AppError is found through the chain", func(t *testing.T) {
		wrapped := fmt.Errorf("login: %w", apperror.NewAuthError("bad credentials", nil))

		appErr, ok := apperror.FromError(wrapped)
		require.True(t, ok)
		assert.Equal(t, apperror.AuthError, appErr.Type)
	})

	t.Run("plain error is not converted", func(t *testing.T) {
		_, ok := apperror.FromError(errors.New("plain"))
		assert.False(t, ok)
	})

	t.Run("nil error", func(t *testing.T) {
		_, ok := apperror.FromError(nil)
		assert.False(t, ok)
	})
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, apperror.IsAuthError(apperror.NewAuthError("bad credentials", nil)))
	assert.False(t, apperror.IsAuthError(apperror.NewValidationError("bad input", nil)))
	assert.False(t, apperror.IsAuthError(errors.New("plain")))
}
