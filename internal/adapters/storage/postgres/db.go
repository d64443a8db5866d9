package postgres

import (
	"context"
	"database/sql"
	"time"

	"vet-clinic/internal/adapters/storage/sqlstore"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// New abre la base y devuelve el store SQL con el dialecto de Postgres.
func New(dsn string) (*sqlstore.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return sqlstore.New(db, Dialect{}), nil
}
