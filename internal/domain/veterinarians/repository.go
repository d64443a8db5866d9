package veterinarians

import "context"

type Repository interface {
	// Create devuelve *apperr.ConflictError{Fields: [user_id]} si el usuario ya es veterinario.
	Create(ctx context.Context, v Veterinarian) error
	// Delete falla con apperr.ErrProtected si el veterinario tiene turnos.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	List(ctx context.Context, limit, offset int) ([]Veterinarian, error)
}
