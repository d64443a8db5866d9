package species

import "context"

type Repository interface {
	// Create devuelve *apperr.ConflictError si el id o el nombre ya existen.
	Create(ctx context.Context, s Species) error
	// Update reemplaza nombre y técnicos.
	Update(ctx context.Context, s Species) error
	// Delete borra en cascada las razas; falla con apperr.ErrProtected si hay animales.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Species, error)
	GetByName(ctx context.Context, name string) (Species, error)
	List(ctx context.Context, filter ListFilter) ([]Species, error)
}

type ListFilter struct {
	Name   string
	Limit  int
	Offset int
}
