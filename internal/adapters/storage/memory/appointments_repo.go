package memory

import (
	"context"
	"sort"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/appointments"
)

type appointmentsRepo struct{ s *Store }

func (r appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	return r.s.write(ctx, func(st *state) error {
		if _, exists := st.appts[a.ID]; exists {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		if _, ok := st.animals[a.AnimalID]; !ok {
			return apperr.ErrReference
		}
		if _, ok := st.vets[a.VeterinarianID]; !ok {
			return apperr.ErrReference
		}
		for _, other := range st.appts {
			if !other.Time.Equal(a.Time) {
				continue
			}
			if other.VeterinarianID == a.VeterinarianID {
				return &apperr.ConflictError{Fields: []string{"time", "veterinarian"}}
			}
			if other.AnimalID == a.AnimalID {
				return &apperr.ConflictError{Fields: []string{"time", "animal"}}
			}
		}
		st.appts[a.ID] = a
		return nil
	})
}

func (r appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := r.s.read(func(st *state) error {
		a, ok := st.appts[id]
		if !ok {
			return apperr.ErrNotFound
		}
		out = a
		return nil
	})
	return out, err
}

func (r appointmentsRepo) ListWindow(ctx context.Context, animalIDs []string, w appointments.Window) ([]appointments.Scheduled, error) {
	want := make(map[string]struct{}, len(animalIDs))
	for _, id := range animalIDs {
		want[id] = struct{}{}
	}

	var out []appointments.Scheduled
	_ = r.s.read(func(st *state) error {
		out = make([]appointments.Scheduled, 0)
		for _, a := range st.appts {
			if _, ok := want[a.AnimalID]; !ok || !w.Contains(a.Time) {
				continue
			}
			out = append(out, appointments.Scheduled{
				Appointment:        a,
				VeterinarianUserID: st.vets[a.VeterinarianID].UserID,
			})
		}
		return nil
	})

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Time.Equal(out[j].Time) {
			return out[i].Time.Before(out[j].Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
