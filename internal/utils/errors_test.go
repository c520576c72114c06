package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", E(CodeNotFound, "op", "missing", nil), http.StatusNotFound},
		{"validation", Invalid("op", "bad body", nil), http.StatusUnprocessableEntity},
		{"rate limited", E(CodeTooManyRequests, "op", "slow down", nil), http.StatusTooManyRequests},
		{"unavailable", E(CodeUnavailable, "op", "down", nil), http.StatusServiceUnavailable},
		{"internal", E(CodeInternal, "op", "boom", errors.New("x")), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", E(CodeNotFound, "op", "missing", nil)), http.StatusNotFound},
		{"bare sentinel", fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := E(CodeInternal, "SkillService.List", "failed to list skills", cause)

	assert.Equal(t, "SkillService.List: failed to list skills: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(cause, CodeInternal))
}

func TestInvalid_KeepsDetails(t *testing.T) {
	err := Invalid("SkillHandler.Create", "invalid request body", nil, FieldError{Field: "level", Rule: "max"})

	var ae *AppError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, CodeValidation, ae.Code)
	assert.Equal(t, []FieldError{{Field: "level", Rule: "max"}}, ae.Details)
}
