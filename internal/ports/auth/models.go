package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID   string
	Email    string
	TenantID string

	// Permissions son los nombres de capabilities concedidas al usuario (p.ej. "animals:view_appointments").
	Permissions []string
}

// HasPermission es el predicado puro sobre los permisos del token.
func (c Claims) HasPermission(name string) bool {
	for _, p := range c.Permissions {
		if p == name {
			return true
		}
	}
	return false
}
