// Package sqlite es el dialecto embebido (modernc, sin cgo) del store SQL.
// Sirve para desarrollo local y para los tests de repositorio.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"vet-clinic/internal/adapters/storage/sqlstore"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Open abre la base con FKs activas. path ":memory:" crea una base efímera.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		path = "vet-clinic.db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Una sola conexión: sqlite serializa escrituras y ":memory:" es por conexión.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func New(path string) (*sqlstore.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return sqlstore.New(db, Dialect{}), nil
}
