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
		err  error
		want int
	}{
		{E(CodeInvalidArgument, "op", "user_id is required", nil), http.StatusBadRequest},
		{E(CodeNotFound, "op", "user not found", ErrNotFound), http.StatusNotFound},
		{E(CodeConflict, "op", "connection already exists", nil), http.StatusConflict},
		{E(CodeUnavailable, "op", "speech is not configured", nil), http.StatusServiceUnavailable},
		{E(CodeInternal, "op", "failed", errors.New("boom")), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestAppErrorUnwrapAndCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", E(CodeNotFound, "UserService.Get", "user not found", ErrNotFound))

	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeConflict))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "outer: UserService.Get: user not found: not found", err.Error())
}

func TestEMCarriesMeta(t *testing.T) {
	err := EM(CodeConflict, "MentorService.Connect", "connection already exists", nil, map[string]any{"status": "pending"})

	var ae *AppError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, "pending", ae.Meta["status"])
}
