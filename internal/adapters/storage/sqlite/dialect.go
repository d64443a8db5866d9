package sqlite

import (
	_ "embed"
	"errors"
	"regexp"
	"strings"

	"vet-clinic/internal/adapters/storage/sqlstore"
	"vet-clinic/internal/domain/apperr"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed schema.sql
var schema string

var dollarParam = regexp.MustCompile(`\$(\d+)`)

type Dialect struct{}

func (Dialect) Name() string { return "sqlite" }

func (Dialect) Schema() string { return schema }

// Rebind cambia $n por ?n, que sqlite entiende como parámetro posicional.
func (Dialect) Rebind(q string) string {
	return dollarParam.ReplaceAllString(q, "?$1")
}

func (Dialect) Classify(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	if c := classify(se.Code(), se.Error()); c != nil {
		return c
	}
	return err
}

// classify traduce el código extendido. Un ON DELETE RESTRICT violado llega como
// SQLITE_CONSTRAINT_TRIGGER (1811) y no como SQLITE_CONSTRAINT_FOREIGNKEY.
func classify(code int, msg string) error {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return &apperr.ConflictError{Fields: uniqueColumns(msg)}
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return apperr.ErrReference
	case sqlite3.SQLITE_CONSTRAINT_TRIGGER:
		if strings.Contains(msg, "FOREIGN KEY constraint failed") {
			return apperr.ErrReference
		}
	}
	return nil
}

// uniqueColumns lee "UNIQUE constraint failed: breeds.name, breeds.species_id".
func uniqueColumns(msg string) []string {
	const marker = "UNIQUE constraint failed: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return nil
	}
	rest := msg[i+len(marker):]
	if j := strings.Index(rest, " ("); j >= 0 {
		rest = rest[:j]
	}

	var cols []string
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if dot := strings.LastIndex(part, "."); dot >= 0 {
			part = part[dot+1:]
		}
		cols = append(cols, part)
	}
	return sqlstore.FieldNames(cols...)
}
