package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"vet-clinic/internal/domain/animals"
)

type animalsRepo struct{ s *DB }

func (r animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO animals (id, name, client_id, species_id, breed_id, approx_year_of_birth, first_visit_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, a.ID, a.Name, a.ClientID, a.SpeciesID, toNullString(a.BreedID), a.ApproxYearOfBirth, toNullDate(a.FirstVisitDate))
	return err
}

func (r animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.s.exec(ctx, `
		UPDATE animals
		SET name = $2, client_id = $3, species_id = $4, breed_id = $5,
			approx_year_of_birth = $6, first_visit_date = $7
		WHERE id = $1
	`, a.ID, a.Name, a.ClientID, a.SpeciesID, toNullString(a.BreedID), a.ApproxYearOfBirth, toNullDate(a.FirstVisitDate))
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r animalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err)
	}
	return affectedOrNotFound(res)
}

func (r animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	row := r.s.queryRow(ctx, `
		SELECT id, name, client_id, species_id, breed_id, approx_year_of_birth, first_visit_date
		FROM animals WHERE id = $1
	`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, notFound(err)
	}
	return a, nil
}

// List resuelve nombres de cliente y especie en el mismo SELECT; breeds no participa.
func (r animalsRepo) List(ctx context.Context, f animals.ListFilter) ([]animals.Listed, error) {
	var w where
	w.nameLike("a.name", f.Name)
	if f.ClientID != "" {
		w.add("a.client_id = ?", f.ClientID)
	}
	if f.SpeciesID != "" {
		w.add("a.species_id = ?", f.SpeciesID)
	}
	if f.BreedID != "" {
		w.add("a.breed_id = ?", f.BreedID)
	}
	q := `
		SELECT a.id, a.name, a.client_id, a.species_id, a.breed_id, a.approx_year_of_birth, a.first_visit_date,
			c.name, s.name
		FROM animals a
		JOIN clients c ON c.id = a.client_id
		JOIN species s ON s.id = a.species_id` + w.sql() + `
		ORDER BY a.name, a.id` + w.page(f.Limit, f.Offset)

	rows, err := r.s.query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Listed, 0)
	for rows.Next() {
		var l animals.Listed
		a, err := scanAnimal(rows, &l.ClientName, &l.SpeciesName)
		if err != nil {
			return nil, err
		}
		l.Animal = a
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanAnimal(sc scanner, extra ...any) (animals.Animal, error) {
	var (
		a     animals.Animal
		breed sql.NullString
		visit sql.NullTime
	)
	dest := append([]any{&a.ID, &a.Name, &a.ClientID, &a.SpeciesID, &breed, &a.ApproxYearOfBirth, &visit}, extra...)
	if err := sc.Scan(dest...); err != nil {
		return animals.Animal{}, err
	}
	if breed.Valid {
		id := breed.String
		a.BreedID = &id
	}
	if visit.Valid {
		d := time.Date(visit.Time.Year(), visit.Time.Month(), visit.Time.Day(), 0, 0, 0, 0, time.UTC)
		a.FirstVisitDate = &d
	}
	return a, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
