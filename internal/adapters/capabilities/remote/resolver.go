// Package remote resuelve capabilities contra un servicio de planes/features.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vet-clinic/internal/platform/httpclient"
	"vet-clinic/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("capabilities client not configured")
	ErrUnauthorized  = errors.New("capabilities upstream unauthorized")
	ErrUpstream      = errors.New("capabilities upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// APIKeyHeader por defecto es "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration

	// AllowAll concede todo sin llamar al upstream (ALLOW_ALL_CAPABILITIES).
	AllowAll bool
}

// CapabilitiesResponse: {"capabilities": {"animals:view_appointments": true}}.
type CapabilitiesResponse struct {
	Capabilities map[string]bool `json:"capabilities"`
}

type Resolver struct {
	http     *httpclient.Client
	allowAll bool
}

func NewResolver(cfg Config) (*Resolver, error) {
	r := &Resolver{allowAll: cfg.AllowAll}
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return r, nil
	}

	c, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	c.Headers = map[string]string{h: strings.TrimSpace(cfg.APIKey)}
	r.http = c
	return r, nil
}

func (r *Resolver) IsConfigured() bool {
	return r != nil && r.http != nil
}

// HasCapability mira primero los permisos del token; solo si no alcanza pregunta al upstream.
func (r *Resolver) HasCapability(ctx context.Context, c auth.Claims, capability string) (bool, error) {
	capability = strings.TrimSpace(capability)
	if capability == "" {
		return false, errors.New("capability required")
	}
	if r.allowAll || c.HasPermission(capability) {
		return true, nil
	}
	if !r.IsConfigured() {
		return false, ErrNotConfigured
	}

	caps, err := r.Resolve(ctx, c.UserID)
	if err != nil {
		return false, err
	}
	return caps[capability], nil
}

// Resolve devuelve el mapa completo de capabilities para userID.
func (r *Resolver) Resolve(ctx context.Context, userID string) (map[string]bool, error) {
	if r.allowAll {
		return map[string]bool{"*": true}, nil
	}
	if !r.IsConfigured() {
		return nil, ErrNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("userID required")
	}

	var out CapabilitiesResponse
	err := r.http.GetJSON(ctx, "/v1/capabilities", url.Values{"user_id": {userID}}, &out)
	switch status := httpclient.StatusOf(err); {
	case err == nil:
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if out.Capabilities == nil {
		out.Capabilities = map[string]bool{}
	}
	return out.Capabilities, nil
}
