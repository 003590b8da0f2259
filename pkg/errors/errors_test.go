package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"app error status wins", New(ErrInvalidInput, http.StatusConflict, "dup"), http.StatusConflict},
		{"wrapped not found", fmt.Errorf("loading: %w", ErrIndexNotFound), http.StatusNotFound},
		{"missing parameter", ErrMissingParameter, http.StatusBadRequest},
		{"timeout", fmt.Errorf("search: %w", ErrTimeout), http.StatusServiceUnavailable},
		{"closed factory", ErrFactoryClosed, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusCode(tc.err))
		})
	}
}

func TestResponseStatusKeepsOnlyServerFailures(t *testing.T) {
	assert.Equal(t, http.StatusOK, ResponseStatus(ErrTemplateNotFound))
	assert.Equal(t, http.StatusOK, ResponseStatus(New(ErrInvalidInput, http.StatusBadRequest, "bad")))
	assert.Equal(t, http.StatusServiceUnavailable, ResponseStatus(ErrServiceUnavailable))
	assert.Equal(t, http.StatusInternalServerError, ResponseStatus(errors.New("boom")))
}

func TestWrapKeepsSentinelAndCause(t *testing.T) {
	err := Wrap(ErrServiceUnavailable, http.StatusServiceUnavailable, context.DeadlineExceeded, "kafka down")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "kafka down", Message(fmt.Errorf("publish: %w", err)))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
