package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return s.claims, s.err
}

func captureClaims(t *testing.T, h func(http.Handler) http.Handler, req *http.Request) (auth.Claims, bool) {
	t.Helper()
	var (
		got auth.Claims
		ok  bool
	)
	h(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestAuthContext_DevHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDebugUserID, "u1")
	req.Header.Set(HeaderDebugPermissions, " animals:view_appointments, ,other ")

	c, ok := captureClaims(t, AuthContext(nil), req)
	require.True(t, ok)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, []string{"animals:view_appointments", "other"}, c.Permissions)
}

func TestAuthContext_DevWithoutHeader(t *testing.T) {
	_, ok := captureClaims(t, AuthContext(nil), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestAuthContext_Bearer(t *testing.T) {
	v := stubVerifier{claims: auth.Claims{UserID: "u2"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good")
	c, ok := captureClaims(t, AuthContext(v), req)
	require.True(t, ok)
	assert.Equal(t, "u2", c.UserID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	_, ok = captureClaims(t, AuthContext(v), req)
	assert.False(t, ok)

	// con verifier, los headers de debug no cuentan
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDebugUserID, "u1")
	_, ok = captureClaims(t, AuthContext(v), req)
	assert.False(t, ok)
}

func TestRequireClaims(t *testing.T) {
	h := RequireClaims(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animals", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/animals", nil)
	h.ServeHTTP(rr, req.WithContext(WithClaims(req.Context(), auth.Claims{UserID: "u"})))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})

	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(logger.WithContext(req.Context(), l))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.EqualValues(t, 500, body["status"])
	assert.Contains(t, buf.String(), `"panic":"boom"`)
}

func TestRequestLogger_UsesRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger(l))
	r.Get("/animals/{animalID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animals/123", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "/animals/{animalID}", entry["route"])
	assert.EqualValues(t, 204, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
