package animals

import "context"

type Repository interface {
	// Create/Update devuelven apperr.ErrReference si alguna FK no resuelve.
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	// Delete borra en cascada los turnos del animal.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Animal, error)
	// List hace el join con clients y species, nunca con breeds.
	List(ctx context.Context, filter ListFilter) ([]Listed, error)
}

type ListFilter struct {
	Name      string
	ClientID  string
	SpeciesID string
	BreedID   string
	Limit     int
	Offset    int
}
