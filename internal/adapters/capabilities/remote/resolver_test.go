package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/ports/capabilities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstream(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v1/capabilities", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		assert.NotEmpty(t, r.URL.Query().Get("user_id"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestHasCapability_Upstream(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, `{"capabilities":{"animals:view_appointments":true}}`)
	r, err := NewResolver(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	ok, err := r.HasCapability(context.Background(), auth.Claims{UserID: "u1"}, capabilities.ViewAnimalAppointments)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.HasCapability(context.Background(), auth.Claims{UserID: "u1"}, "other")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.EqualValues(t, 2, atomic.LoadInt32(calls))
}

func TestHasCapability_ClaimsShortCircuit(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, `{}`)
	r, err := NewResolver(Config{BaseURL: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	c := auth.Claims{UserID: "u1", Permissions: []string{capabilities.ViewAnimalAppointments}}
	ok, err := r.HasCapability(context.Background(), c, capabilities.ViewAnimalAppointments)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestHasCapability_UpstreamErrors(t *testing.T) {
	srv, _ := upstream(t, http.StatusForbidden, ``)
	r, _ := NewResolver(Config{BaseURL: srv.URL, APIKey: "key"})
	_, err := r.HasCapability(context.Background(), auth.Claims{UserID: "u"}, "x")
	assert.ErrorIs(t, err, ErrUnauthorized)

	srv, _ = upstream(t, http.StatusBadGateway, `oops`)
	r, _ = NewResolver(Config{BaseURL: srv.URL, APIKey: "key"})
	_, err = r.HasCapability(context.Background(), auth.Claims{UserID: "u"}, "x")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestHasCapability_NotConfigured(t *testing.T) {
	r, err := NewResolver(Config{})
	require.NoError(t, err)
	_, err = r.HasCapability(context.Background(), auth.Claims{UserID: "u"}, "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	r, _ = NewResolver(Config{AllowAll: true})
	ok, err := r.HasCapability(context.Background(), auth.Claims{}, "x")
	require.NoError(t, err)
	assert.True(t, ok)
}
