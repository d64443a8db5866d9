package memory

import (
	"context"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/veterinarians"
)

type vetsRepo struct{ s *Store }

func (r vetsRepo) Create(ctx context.Context, v veterinarians.Veterinarian) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.vets[v.ID]; exists {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		for _, other := range st.vets {
			if other.UserID == v.UserID {
				return &apperr.ConflictError{Fields: []string{"user_id"}}
			}
		}
		st.vets[v.ID] = v
		return nil
	})
}

func (r vetsRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.vets[id]; !exists {
			return apperr.ErrNotFound
		}
		for _, a := range st.appts {
			if a.VeterinarianID == id {
				return apperr.ErrProtected
			}
		}
		delete(st.vets, id)
		return nil
	})
}

func (r vetsRepo) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	var out veterinarians.Veterinarian
	err := r.s.read(func(st *state) error {
		v, ok := st.vets[id]
		if !ok {
			return apperr.ErrNotFound
		}
		out = v
		return nil
	})
	return out, err
}

func (r vetsRepo) List(ctx context.Context, limit, offset int) ([]veterinarians.Veterinarian, error) {
	var out []veterinarians.Veterinarian
	_ = r.s.read(func(st *state) error {
		out = make([]veterinarians.Veterinarian, 0, len(st.vets))
		for _, v := range st.vets {
			out = append(out, v)
		}
		return nil
	})
	sortByName(out,
		func(v veterinarians.Veterinarian) string { return v.UserID },
		func(v veterinarians.Veterinarian) string { return v.ID },
	)
	return page(out, limit, offset), nil
}
