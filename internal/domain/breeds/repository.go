package breeds

import "context"

type Repository interface {
	// Create/Update devuelven *apperr.ConflictError{Fields: [name species]} si el par ya existe.
	Create(ctx context.Context, b Breed) error
	Update(ctx context.Context, b Breed) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Breed, error)
	List(ctx context.Context, filter ListFilter) ([]Breed, error)
}

type ListFilter struct {
	Name      string
	SpeciesID string
	Limit     int
	Offset    int
}
