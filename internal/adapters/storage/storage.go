// Package storage elige el backend de persistencia según la configuración.
package storage

import (
	"context"
	"fmt"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/adapters/storage/sqlite"
	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/domain/veterinarians"
	"vet-clinic/internal/ports/store"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store es lo que el router necesita de cualquier backend.
type Store interface {
	store.Transactor

	Clients() clients.Repository
	Species() species.Repository
	Breeds() breeds.Repository
	Veterinarians() veterinarians.Repository
	Animals() animals.Repository
	Appointments() appointments.Repository
}

// Open devuelve el store y una función para cerrarlo.
func Open(ctx context.Context, driver, dsn string, migrate bool) (Store, func() error, error) {
	switch driver {
	case "", DriverMemory:
		return memory.New(), func() error { return nil }, nil
	case DriverPostgres:
		db, err := postgres.New(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if migrate {
			if err := db.Migrate(ctx); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return db, db.Close, nil
	case DriverSQLite:
		db, err := sqlite.New(dsn)
		if err != nil {
			return nil, nil, err
		}
		if migrate {
			if err := db.Migrate(ctx); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return db, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
}
