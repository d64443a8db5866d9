package memory

import (
	"context"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/clients"
)

type clientsRepo struct{ s *Store }

func (r clientsRepo) Create(ctx context.Context, c clients.Client) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.clients[c.ID]; exists {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		st.clients[c.ID] = c
		return nil
	})
}

func (r clientsRepo) Update(ctx context.Context, c clients.Client) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.clients[c.ID]; !exists {
			return apperr.ErrNotFound
		}
		st.clients[c.ID] = c
		return nil
	})
}

// Delete arrastra los animales del cliente y sus turnos.
func (r clientsRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.clients[id]; !exists {
			return apperr.ErrNotFound
		}
		for aid, a := range st.animals {
			if a.ClientID == id {
				deleteAnimal(st, aid)
			}
		}
		delete(st.clients, id)
		return nil
	})
}

func (r clientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	var out clients.Client
	err := r.s.read(func(st *state) error {
		c, ok := st.clients[id]
		if !ok {
			return apperr.ErrNotFound
		}
		out = c
		return nil
	})
	return out, err
}

func (r clientsRepo) List(ctx context.Context, filter clients.ListFilter) ([]clients.Client, error) {
	var out []clients.Client
	_ = r.s.read(func(st *state) error {
		out = make([]clients.Client, 0, len(st.clients))
		for _, c := range st.clients {
			if containsFold(c.Name, filter.Name) {
				out = append(out, c)
			}
		}
		return nil
	})
	sortByName(out, func(c clients.Client) string { return c.Name }, func(c clients.Client) string { return c.ID })
	return page(out, filter.Limit, filter.Offset), nil
}
