package breeds

import (
	"strings"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/species"
)

// EmbeddedSpecies es el objeto species completo anidado en el payload de la raza.
type EmbeddedSpecies struct {
	ID   *string
	Name string
}

type Outcome string

const (
	FoundMatching  Outcome = "found_matching"
	FoundDivergent Outcome = "found_divergent"
	NotFound       Outcome = "not_found"

	// Resultados de la etapa de persistencia (solo para observabilidad).
	Created           Outcome = "created"
	RecoveredConflict Outcome = "recovered_conflict"
)

// Decision es el resultado puro de comparar el payload con lo almacenado.
type Decision struct {
	Outcome Outcome

	// Species es el registro existente (Found*) o el que hay que crear (NotFound).
	Species species.Species

	// Divergent lista los campos del payload que difieren del registro.
	Divergent []string
}

// Reconcile decide qué hacer con un species embebido. existing == nil significa
// que la búsqueda por identidad no encontró nada (o que no se envió identidad).
// No toca el store.
func Reconcile(payload EmbeddedSpecies, existing *species.Species) Decision {
	name := strings.TrimSpace(payload.Name)

	if existing == nil {
		sp := species.Species{Name: name}
		if payload.ID != nil {
			sp.ID = strings.TrimSpace(*payload.ID)
		}
		return Decision{Outcome: NotFound, Species: sp}
	}

	var diff []string
	if payload.ID != nil && strings.TrimSpace(*payload.ID) != existing.ID {
		diff = append(diff, "id")
	}
	if name != existing.Name {
		diff = append(diff, "name")
	}

	if len(diff) > 0 {
		return Decision{Outcome: FoundDivergent, Species: *existing, Divergent: diff}
	}
	return Decision{Outcome: FoundMatching, Species: *existing}
}

// divergenceError nombra cada sub-campo distinto bajo "species".
func divergenceError(fields []string) error {
	v := &apperr.ValidationError{}
	for _, f := range fields {
		v.Add("species."+f, "modifying species data is not supported")
	}
	return v
}
