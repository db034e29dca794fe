package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  HTTPError
		want int
	}{
		{"not found", &NotFoundError{Message: "gone"}, http.StatusNotFound},
		{"validation", &ValidationError{Message: "bad input"}, http.StatusBadRequest},
		{"unauthorized", &UnauthorizedError{Message: "no token"}, http.StatusUnauthorized},
		{"forbidden", &ForbiddenError{Message: "not yours"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", &NotFoundError{Message: "course missing"}, ErrNotFound},
		{"validation", &ValidationError{Message: "title too long"}, ErrValidation},
		{"unauthorized", &UnauthorizedError{Message: "authentication required"}, ErrUnauthorized},
		{"forbidden", &ForbiddenError{Message: "owner mismatch"}, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)

			// Wrapped typed errors keep matching through the chain.
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			var httpErr HTTPError
			assert.True(t, errors.As(wrapped, &httpErr))
		})
	}
}

func TestTypedErrorsDoNotCrossMatch(t *testing.T) {
	assert.NotErrorIs(t, &NotFoundError{Message: "x"}, ErrForbidden)
	assert.NotErrorIs(t, &ForbiddenError{Message: "x"}, ErrNotFound)
	assert.NotErrorIs(t, &UnauthorizedError{Message: "x"}, ErrValidation)
}
