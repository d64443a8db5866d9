package memory

import (
	"context"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/breeds"
)

type breedsRepo struct{ s *Store }

func (r breedsRepo) Create(ctx context.Context, b breeds.Breed) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.breeds[b.ID]; exists {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		return putBreed(st, b)
	})
}

func (r breedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.breeds[b.ID]; !exists {
			return apperr.ErrNotFound
		}
		return putBreed(st, b)
	})
}

func putBreed(st *state, b breeds.Breed) error {
	if _, ok := st.species[b.SpeciesID]; !ok {
		return apperr.ErrReference
	}
	for id, other := range st.breeds {
		if id != b.ID && other.Name == b.Name && other.SpeciesID == b.SpeciesID {
			return &apperr.ConflictError{Fields: []string{"name", "species"}}
		}
	}
	st.breeds[b.ID] = b
	return nil
}

func (r breedsRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.breeds[id]; !exists {
			return apperr.ErrNotFound
		}
		for _, a := range st.animals {
			if a.BreedID != nil && *a.BreedID == id {
				return apperr.ErrProtected
			}
		}
		delete(st.breeds, id)
		return nil
	})
}

func (r breedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	var out breeds.Breed
	err := r.s.read(func(st *state) error {
		b, ok := st.breeds[id]
		if !ok {
			return apperr.ErrNotFound
		}
		out = b
		return nil
	})
	return out, err
}

func (r breedsRepo) List(ctx context.Context, filter breeds.ListFilter) ([]breeds.Breed, error) {
	var out []breeds.Breed
	_ = r.s.read(func(st *state) error {
		out = make([]breeds.Breed, 0, len(st.breeds))
		for _, b := range st.breeds {
			if filter.SpeciesID != "" && b.SpeciesID != filter.SpeciesID {
				continue
			}
			if containsFold(b.Name, filter.Name) {
				out = append(out, b)
			}
		}
		return nil
	})
	sortByName(out, func(b breeds.Breed) string { return b.Name }, func(b breeds.Breed) string { return b.ID })
	return page(out, filter.Limit, filter.Offset), nil
}
