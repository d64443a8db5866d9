package memory

import (
	"context"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/species"
)

type speciesRepo struct{ s *Store }

func (r speciesRepo) Create(ctx context.Context, sp species.Species) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.species[sp.ID]; exists {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		if speciesNameTaken(st, sp.Name, sp.ID) {
			return &apperr.ConflictError{Fields: []string{"name"}}
		}
		st.species[sp.ID] = copySpecies(sp)
		return nil
	})
}

func (r speciesRepo) Update(ctx context.Context, sp species.Species) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.species[sp.ID]; !exists {
			return apperr.ErrNotFound
		}
		if speciesNameTaken(st, sp.Name, sp.ID) {
			return &apperr.ConflictError{Fields: []string{"name"}}
		}
		st.species[sp.ID] = copySpecies(sp)
		return nil
	})
}

// Delete borra las razas de la especie; si algún animal la referencia (directo o por raza) falla.
func (r speciesRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.species[id]; !exists {
			return apperr.ErrNotFound
		}
		for _, a := range st.animals {
			if a.SpeciesID == id {
				return apperr.ErrProtected
			}
			if a.BreedID != nil {
				if b, ok := st.breeds[*a.BreedID]; ok && b.SpeciesID == id {
					return apperr.ErrProtected
				}
			}
		}
		for bid, b := range st.breeds {
			if b.SpeciesID == id {
				delete(st.breeds, bid)
			}
		}
		delete(st.species, id)
		return nil
	})
}

func (r speciesRepo) GetByID(ctx context.Context, id string) (species.Species, error) {
	var out species.Species
	err := r.s.read(func(st *state) error {
		sp, ok := st.species[id]
		if !ok {
			return apperr.ErrNotFound
		}
		out = copySpecies(sp)
		return nil
	})
	return out, err
}

func (r speciesRepo) GetByName(ctx context.Context, name string) (species.Species, error) {
	var out species.Species
	err := r.s.read(func(st *state) error {
		for _, sp := range st.species {
			if sp.Name == name {
				out = copySpecies(sp)
				return nil
			}
		}
		return apperr.ErrNotFound
	})
	return out, err
}

func (r speciesRepo) List(ctx context.Context, filter species.ListFilter) ([]species.Species, error) {
	var out []species.Species
	_ = r.s.read(func(st *state) error {
		out = make([]species.Species, 0, len(st.species))
		for _, sp := range st.species {
			if containsFold(sp.Name, filter.Name) {
				out = append(out, copySpecies(sp))
			}
		}
		return nil
	})
	sortByName(out, func(sp species.Species) string { return sp.Name }, func(sp species.Species) string { return sp.ID })
	return page(out, filter.Limit, filter.Offset), nil
}

func speciesNameTaken(st *state, name, exceptID string) bool {
	for id, sp := range st.species {
		if id != exceptID && sp.Name == name {
			return true
		}
	}
	return false
}
