package sqlstore

import (
	"context"
	"errors"

	"vet-clinic/internal/domain/species"
)

type speciesRepo struct{ s *DB }

// Create corre bajo un savepoint: un choque de unicidad deja la transacción de la
// raza utilizable para volver a buscar la especie.
func (r speciesRepo) Create(ctx context.Context, sp species.Species) error {
	return r.s.WithinTx(ctx, func(ctx context.Context) error {
		return r.s.savepoint(ctx, "species_insert", func() error {
			if _, err := r.s.exec(ctx, `INSERT INTO species (id, name) VALUES ($1, $2)`, sp.ID, sp.Name); err != nil {
				return err
			}
			return r.insertTechnicians(ctx, sp.ID, sp.Technicians)
		})
	})
}

func (r speciesRepo) Update(ctx context.Context, sp species.Species) error {
	return r.s.WithinTx(ctx, func(ctx context.Context) error {
		res, err := r.s.exec(ctx, `UPDATE species SET name = $2 WHERE id = $1`, sp.ID, sp.Name)
		if err != nil {
			return err
		}
		if err := affectedOrNotFound(res); err != nil {
			return err
		}
		if _, err := r.s.exec(ctx, `DELETE FROM species_technicians WHERE species_id = $1`, sp.ID); err != nil {
			return err
		}
		return r.insertTechnicians(ctx, sp.ID, sp.Technicians)
	})
}

func (r speciesRepo) insertTechnicians(ctx context.Context, speciesID string, userIDs []string) error {
	for _, uid := range userIDs {
		if _, err := r.s.exec(ctx, `
			INSERT INTO species_technicians (species_id, user_id) VALUES ($1, $2)
		`, speciesID, uid); err != nil {
			return err
		}
	}
	return nil
}

func (r speciesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, `DELETE FROM species WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err)
	}
	return affectedOrNotFound(res)
}

func (r speciesRepo) GetByID(ctx context.Context, id string) (species.Species, error) {
	return r.getOne(ctx, `SELECT id, name FROM species WHERE id = $1`, id)
}

func (r speciesRepo) GetByName(ctx context.Context, name string) (species.Species, error) {
	return r.getOne(ctx, `SELECT id, name FROM species WHERE name = $1`, name)
}

func (r speciesRepo) getOne(ctx context.Context, q string, arg any) (species.Species, error) {
	var sp species.Species
	if err := r.s.queryRow(ctx, q, arg).Scan(&sp.ID, &sp.Name); err != nil {
		return species.Species{}, notFound(err)
	}
	techs, err := r.technicians(ctx, []string{sp.ID})
	if err != nil {
		return species.Species{}, err
	}
	sp.Technicians = techs[sp.ID]
	return sp, nil
}

func (r speciesRepo) List(ctx context.Context, f species.ListFilter) ([]species.Species, error) {
	var w where
	w.nameLike("name", f.Name)
	q := `SELECT id, name FROM species` + w.sql() + ` ORDER BY name, id` + w.page(f.Limit, f.Offset)

	rows, err := r.s.query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	out := make([]species.Species, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var sp species.Species
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, sp)
		ids = append(ids, sp.ID)
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return nil, err
	}

	techs, err := r.technicians(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Technicians = techs[out[i].ID]
	}
	return out, nil
}

// technicians carga los técnicos de varias especies en una sola consulta.
func (r speciesRepo) technicians(ctx context.Context, speciesIDs []string) (map[string][]string, error) {
	out := map[string][]string{}
	if len(speciesIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(speciesIDs))
	for i, id := range speciesIDs {
		args[i] = id
	}
	rows, err := r.s.query(ctx, `
		SELECT species_id, user_id FROM species_technicians
		WHERE species_id IN (`+placeholders(1, len(args))+`)
		ORDER BY species_id, user_id
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sid, uid string
		if err := rows.Scan(&sid, &uid); err != nil {
			return nil, err
		}
		out[sid] = append(out[sid], uid)
	}
	return out, rows.Err()
}
