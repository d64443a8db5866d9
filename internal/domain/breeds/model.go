package breeds

import "vet-clinic/internal/domain/species"

// Breed es única por (name, species) y pertenece a exactamente una especie.
type Breed struct {
	ID        string
	Name      string
	SpeciesID string
}

// View es la raza con su especie ya resuelta (equivalente a select_related).
type View struct {
	Breed
	Species species.Species
}

// Strategy identifica cómo una ruta escribe la relación breed→species.
type Strategy string

const (
	// NestedField: objeto species embebido, reconciliado por contenido.
	NestedField Strategy = "nested_field"
	// SeparatePK: species_id de escritura + species anidado de solo lectura.
	SeparatePK Strategy = "separate_pk"
	// WritablePK: species como id de solo escritura; la lectura no expande la especie.
	WritablePK Strategy = "writable_pk"
)

// SpeciesField es el nombre del campo de escritura de la especie en cada estrategia.
func (s Strategy) SpeciesField() string {
	if s == SeparatePK {
		return "species_id"
	}
	return "species"
}

// ExpandsSpecies indica si la representación de lectura incluye el objeto species.
func (s Strategy) ExpandsSpecies() bool {
	return s != WritablePK
}
