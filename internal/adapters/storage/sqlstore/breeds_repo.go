package sqlstore

import (
	"context"

	"vet-clinic/internal/domain/breeds"
)

type breedsRepo struct{ s *DB }

func (r breedsRepo) Create(ctx context.Context, b breeds.Breed) error {
	_, err := r.s.exec(ctx, `INSERT INTO breeds (id, name, species_id) VALUES ($1, $2, $3)`, b.ID, b.Name, b.SpeciesID)
	return err
}

func (r breedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res, err := r.s.exec(ctx, `UPDATE breeds SET name = $2, species_id = $3 WHERE id = $1`, b.ID, b.Name, b.SpeciesID)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r breedsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err)
	}
	return affectedOrNotFound(res)
}

func (r breedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	var b breeds.Breed
	err := r.s.queryRow(ctx, `SELECT id, name, species_id FROM breeds WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.SpeciesID)
	if err != nil {
		return breeds.Breed{}, notFound(err)
	}
	return b, nil
}

func (r breedsRepo) List(ctx context.Context, f breeds.ListFilter) ([]breeds.Breed, error) {
	var w where
	w.nameLike("name", f.Name)
	if f.SpeciesID != "" {
		w.add("species_id = ?", f.SpeciesID)
	}
	q := `SELECT id, name, species_id FROM breeds` + w.sql() + ` ORDER BY name, id` + w.page(f.Limit, f.Offset)

	rows, err := r.s.query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.SpeciesID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
