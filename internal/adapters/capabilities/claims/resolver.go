// Package claims resuelve capabilities solo a partir de los permisos del token.
package claims

import (
	"context"

	"vet-clinic/internal/ports/auth"
)

type Resolver struct {
	// AllowAll concede todo (ALLOW_ALL_CAPABILITIES, modo dev).
	AllowAll bool
}

func (r Resolver) HasCapability(_ context.Context, c auth.Claims, capability string) (bool, error) {
	if r.AllowAll {
		return true, nil
	}
	return c.HasPermission(capability), nil
}
