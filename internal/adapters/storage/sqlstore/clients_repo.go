package sqlstore

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/clients"
)

type clientsRepo struct{ s *DB }

const clientColumns = `id, name, address_line_1, address_line_2, city, state, zip, phone, email`

func (r clientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, c.ID, c.Name, c.AddressLine1, c.AddressLine2, c.City, c.State, c.Zip, c.Phone, c.Email)
	return err
}

func (r clientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.s.exec(ctx, `
		UPDATE clients
		SET name = $2, address_line_1 = $3, address_line_2 = $4, city = $5,
			state = $6, zip = $7, phone = $8, email = $9
		WHERE id = $1
	`, c.ID, c.Name, c.AddressLine1, c.AddressLine2, c.City, c.State, c.Zip, c.Phone, c.Email)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r clientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err)
	}
	return affectedOrNotFound(res)
}

func (r clientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	row := r.s.queryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if err != nil {
		return clients.Client{}, notFound(err)
	}
	return c, nil
}

func (r clientsRepo) List(ctx context.Context, f clients.ListFilter) ([]clients.Client, error) {
	var w where
	w.nameLike("name", f.Name)
	q := `SELECT ` + clientColumns + ` FROM clients` + w.sql() + ` ORDER BY name, id`
	q += w.page(f.Limit, f.Offset)

	rows, err := r.s.query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(sc scanner) (clients.Client, error) {
	var (
		c     clients.Client
		line2 sql.NullString
		email sql.NullString
	)
	if err := sc.Scan(&c.ID, &c.Name, &c.AddressLine1, &line2, &c.City, &c.State, &c.Zip, &c.Phone, &email); err != nil {
		return clients.Client{}, err
	}
	c.AddressLine2 = line2.String
	c.Email = email.String
	return c, nil
}
