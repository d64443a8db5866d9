package veterinarians

// Veterinarian es un marcador de rol: la identidad del usuario vive en el sistema de auth.
type Veterinarian struct {
	ID     string
	UserID string
}
