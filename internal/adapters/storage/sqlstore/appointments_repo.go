package sqlstore

import (
	"context"
	"time"

	"vet-clinic/internal/domain/appointments"
)

type appointmentsRepo struct{ s *DB }

func (r appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO appointments (id, "time", animal_id, veterinarian_id) VALUES ($1, $2, $3, $4)
	`, a.ID, appointments.Normalize(a.Time), a.AnimalID, a.VeterinarianID)
	return err
}

func (r appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var a appointments.Appointment
	err := r.s.queryRow(ctx, `
		SELECT id, "time", animal_id, veterinarian_id FROM appointments WHERE id = $1
	`, id).Scan(&a.ID, &a.Time, &a.AnimalID, &a.VeterinarianID)
	if err != nil {
		return appointments.Appointment{}, notFound(err)
	}
	a.Time = a.Time.UTC()
	return a, nil
}

func (r appointmentsRepo) ListWindow(ctx context.Context, animalIDs []string, win appointments.Window) ([]appointments.Scheduled, error) {
	out := make([]appointments.Scheduled, 0)
	if len(animalIDs) == 0 {
		return out, nil
	}

	args := make([]any, 0, len(animalIDs)+2)
	args = append(args, appointments.Normalize(win.From), appointments.Normalize(win.To))
	for _, id := range animalIDs {
		args = append(args, id)
	}

	rows, err := r.s.query(ctx, `
		SELECT ap.id, ap."time", ap.animal_id, ap.veterinarian_id, v.user_id
		FROM appointments ap
		JOIN veterinarians v ON v.id = ap.veterinarian_id
		WHERE ap."time" >= $1 AND ap."time" <= $2
			AND ap.animal_id IN (`+placeholders(3, len(animalIDs))+`)
		ORDER BY ap."time", ap.id
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sch appointments.Scheduled
			t   time.Time
		)
		if err := rows.Scan(&sch.ID, &t, &sch.AnimalID, &sch.VeterinarianID, &sch.VeterinarianUserID); err != nil {
			return nil, err
		}
		sch.Time = t.UTC()
		out = append(out, sch)
	}
	return out, rows.Err()
}
