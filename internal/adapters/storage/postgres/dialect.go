package postgres

import (
	_ "embed"
	"errors"
	"strings"

	"vet-clinic/internal/adapters/storage/sqlstore"
	"vet-clinic/internal/domain/apperr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed schema.sql
var schema string

// uniqueConstraints mapea el nombre de cada constraint UNIQUE del esquema a sus columnas.
var uniqueConstraints = map[string][]string{
	"species_name_key":             {"name"},
	"breeds_name_species_key":      {"name", "species_id"},
	"veterinarians_user_id_key":    {"user_id"},
	"appointments_time_vet_key":    {"time", "veterinarian_id"},
	"appointments_time_animal_key": {"time", "animal_id"},
}

type Dialect struct{}

func (Dialect) Name() string { return "postgres" }

func (Dialect) Schema() string { return schema }

func (Dialect) Rebind(q string) string { return q }

func (Dialect) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if cols, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return &apperr.ConflictError{Fields: sqlstore.FieldNames(cols...)}
		}
		if strings.HasSuffix(pgErr.ConstraintName, "_pkey") {
			return &apperr.ConflictError{Fields: []string{"id"}}
		}
		return &apperr.ConflictError{}
	case pgerrcode.ForeignKeyViolation:
		return apperr.ErrReference
	}
	return err
}
