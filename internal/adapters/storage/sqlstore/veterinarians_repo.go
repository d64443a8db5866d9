package sqlstore

import (
	"context"

	"vet-clinic/internal/domain/veterinarians"
)

type vetsRepo struct{ s *DB }

func (r vetsRepo) Create(ctx context.Context, v veterinarians.Veterinarian) error {
	_, err := r.s.exec(ctx, `INSERT INTO veterinarians (id, user_id) VALUES ($1, $2)`, v.ID, v.UserID)
	return err
}

func (r vetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, `DELETE FROM veterinarians WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err)
	}
	return affectedOrNotFound(res)
}

func (r vetsRepo) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	var v veterinarians.Veterinarian
	if err := r.s.queryRow(ctx, `SELECT id, user_id FROM veterinarians WHERE id = $1`, id).Scan(&v.ID, &v.UserID); err != nil {
		return veterinarians.Veterinarian{}, notFound(err)
	}
	return v, nil
}

func (r vetsRepo) List(ctx context.Context, limit, offset int) ([]veterinarians.Veterinarian, error) {
	var w where
	q := `SELECT id, user_id FROM veterinarians ORDER BY user_id, id` + w.page(limit, offset)

	rows, err := r.s.query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]veterinarians.Veterinarian, 0)
	for rows.Next() {
		var v veterinarians.Veterinarian
		if err := rows.Scan(&v.ID, &v.UserID); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
