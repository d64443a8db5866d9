package memory

import (
	"context"

	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/apperr"
)

type animalsRepo struct{ s *Store }

func (r animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.animals[a.ID]; exists {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		return putAnimal(st, a)
	})
}

func (r animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.animals[a.ID]; !exists {
			return apperr.ErrNotFound
		}
		return putAnimal(st, a)
	})
}

func putAnimal(st *state, a animals.Animal) error {
	if _, ok := st.clients[a.ClientID]; !ok {
		return apperr.ErrReference
	}
	if _, ok := st.species[a.SpeciesID]; !ok {
		return apperr.ErrReference
	}
	if a.BreedID != nil {
		if _, ok := st.breeds[*a.BreedID]; !ok {
			return apperr.ErrReference
		}
	}
	st.animals[a.ID] = copyAnimal(a)
	return nil
}

func (r animalsRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.animals[id]; !exists {
			return apperr.ErrNotFound
		}
		deleteAnimal(st, id)
		return nil
	})
}

// deleteAnimal borra el animal y sus turnos (ON DELETE CASCADE).
func deleteAnimal(st *state, id string) {
	for aid, appt := range st.appts {
		if appt.AnimalID == id {
			delete(st.appts, aid)
		}
	}
	delete(st.animals, id)
}

func (r animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	var out animals.Animal
	err := r.s.read(func(st *state) error {
		a, ok := st.animals[id]
		if !ok {
			return apperr.ErrNotFound
		}
		out = copyAnimal(a)
		return nil
	})
	return out, err
}

func (r animalsRepo) List(ctx context.Context, f animals.ListFilter) ([]animals.Listed, error) {
	var out []animals.Listed
	_ = r.s.read(func(st *state) error {
		out = make([]animals.Listed, 0, len(st.animals))
		for _, a := range st.animals {
			if f.ClientID != "" && a.ClientID != f.ClientID {
				continue
			}
			if f.SpeciesID != "" && a.SpeciesID != f.SpeciesID {
				continue
			}
			if f.BreedID != "" && (a.BreedID == nil || *a.BreedID != f.BreedID) {
				continue
			}
			if !containsFold(a.Name, f.Name) {
				continue
			}
			out = append(out, animals.Listed{
				Animal:      copyAnimal(a),
				ClientName:  st.clients[a.ClientID].Name,
				SpeciesName: st.species[a.SpeciesID].Name,
			})
		}
		return nil
	})
	sortByName(out, func(l animals.Listed) string { return l.Name }, func(l animals.Listed) string { return l.ID })
	return page(out, f.Limit, f.Offset), nil
}
