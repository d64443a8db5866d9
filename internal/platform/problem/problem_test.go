package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.NewValidation("name", "this field is required"), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("get animal: %w", apperr.ErrNotFound), http.StatusNotFound},
		{"protected", apperr.ErrProtected, http.StatusConflict},
		{"raw conflict", &apperr.ConflictError{Fields: []string{"name"}}, http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
		{"already a problem", Unauthorized(), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, FromError(tc.err).Status)
		})
	}
}

func TestWrite_ValidationBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/breeds/nested_field", nil)

	v := apperr.NewValidation("species.name", "modifying species data is not supported")
	Write(rec, req, v)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body Details
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/breeds/nested_field", body.Instance)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "species.name", body.Errors[0].Field)
}
