package animals

import "time"

// Animal pertenece a un cliente (cascada) y a una especie; la raza es opcional.
type Animal struct {
	ID                string
	Name              string
	ClientID          string
	SpeciesID         string
	BreedID           *string
	ApproxYearOfBirth int
	FirstVisitDate    *time.Time // solo fecha, 00:00 UTC
}

// Listed es la fila del listado: nombres de cliente y especie ya resueltos por el store.
type Listed struct {
	Animal
	ClientName  string
	SpeciesName string
}

// Nullable distingue "no enviado" de "enviado en null" en un PATCH.
type Nullable[T any] struct {
	Present bool
	Value   *T
}

// Set construye un Nullable presente con valor.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Value: &v}
}

// Null construye un Nullable presente en null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

const DateLayout = "2006-01-02"

const MaxApproxYear = 32767
