// Package sqlstore implementa todos los repositorios sobre database/sql.
// Lo específico de cada motor (esquema, placeholders, errores) vive en un Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/domain/veterinarians"
)

type Dialect interface {
	Name() string
	// Schema es el DDL idempotente, sentencias separadas por ';'.
	Schema() string
	// Rebind traduce los placeholders $n al formato del motor.
	Rebind(query string) string
	// Classify traduce errores del driver a *apperr.ConflictError / apperr.ErrReference.
	Classify(err error) error
}

type DB struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, d Dialect) *DB {
	return &DB{db: db, dialect: d}
}

func (s *DB) Dialect() Dialect { return s.dialect }

func (s *DB) Close() error { return s.db.Close() }

func (s *DB) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Migrate aplica el esquema del dialecto.
func (s *DB) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(s.dialect.Schema(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s migrate: %w", s.dialect.Name(), err)
		}
	}
	return nil
}

// Exec corre una sentencia suelta (mantenimiento y tests).
func (s *DB) Exec(ctx context.Context, q string, args ...any) error {
	_, err := s.exec(ctx, q, args...)
	return err
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// WithinTx abre una transacción y la deja en el contexto; los repos la toman de ahí.
// Si ya hay una en curso, fn se une a ella.
func (s *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

func (s *DB) inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}

func (s *DB) exec(ctx context.Context, q string, args ...any) (sql.Result, error) {
	res, err := s.conn(ctx).ExecContext(ctx, s.dialect.Rebind(q), args...)
	if err != nil {
		return nil, s.dialect.Classify(err)
	}
	return res, nil
}

func (s *DB) query(ctx context.Context, q string, args ...any) (*sql.Rows, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, s.dialect.Rebind(q), args...)
	if err != nil {
		return nil, s.dialect.Classify(err)
	}
	return rows, nil
}

func (s *DB) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return s.conn(ctx).QueryRowContext(ctx, s.dialect.Rebind(q), args...)
}

// savepoint corre fn bajo un SAVEPOINT cuando hay transacción, para que un error
// de constraint no aborte la transacción completa (Postgres la deja inutilizable).
func (s *DB) savepoint(ctx context.Context, name string, fn func() error) error {
	if !s.inTx(ctx) {
		return fn()
	}
	if _, err := s.conn(ctx).ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return err
	}
	if err := fn(); err != nil {
		if _, rbErr := s.conn(ctx).ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	_, err := s.conn(ctx).ExecContext(ctx, "RELEASE SAVEPOINT "+name)
	return err
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// deleteErr: una FK violada al borrar significa que la fila sigue referenciada.
func deleteErr(err error) error {
	if errors.Is(err, apperr.ErrReference) {
		return apperr.ErrProtected
	}
	return err
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return err
}

// placeholders devuelve "$from, $from+1, ..." para n argumentos.
func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// where acumula condiciones con placeholders numerados.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page agrega LIMIT/OFFSET al final de los argumentos; limit <= 0 es sin tope.
func (w *where) page(limit, offset int) string {
	if limit <= 0 {
		limit = math.MaxInt32
	}
	w.args = append(w.args, limit, offset)
	n := len(w.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n-1, n)
}

// nameLike filtra por "contiene", sin distinguir mayúsculas, en ambos motores.
func (w *where) nameLike(column, s string) {
	if s == "" {
		return
	}
	w.add("LOWER("+column+") LIKE LOWER(?) ESCAPE '\\'", likePattern(s))
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func (s *DB) Clients() clients.Repository { return clientsRepo{s} }
func (s *DB) Species() species.Repository { return speciesRepo{s} }
func (s *DB) Breeds() breeds.Repository { return breedsRepo{s} }
func (s *DB) Veterinarians() veterinarians.Repository { return vetsRepo{s} }
func (s *DB) Animals() animals.Repository { return animalsRepo{s} }
func (s *DB) Appointments() appointments.Repository { return appointmentsRepo{s} }

var fkFields = map[string]string{
	"client_id":       "client",
	"species_id":      "species",
	"breed_id":        "breed",
	"animal_id":       "animal",
	"veterinarian_id": "veterinarian",
}

// FieldNames traduce columnas a los nombres de campo de la API (veterinarian_id -> veterinarian).
func FieldNames(columns ...string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		c = strings.Trim(strings.TrimSpace(c), `"`)
		if f, ok := fkFields[c]; ok {
			c = f
		}
		out = append(out, c)
	}
	return out
}
