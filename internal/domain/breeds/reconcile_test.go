package breeds

import (
	"errors"
	"testing"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/species"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestReconcile(t *testing.T) {
	stored := species.Species{ID: "0b6c6b8e-7d1f-4c55-9d7e-3a4f0b1c2d3e", Name: "Canine", Technicians: []string{"t1"}}

	cases := []struct {
		name      string
		payload   EmbeddedSpecies
		existing  *species.Species
		want      Outcome
		divergent []string
	}{
		{"no identity", EmbeddedSpecies{Name: "Feline"}, nil, NotFound, nil},
		{"identity not stored", EmbeddedSpecies{ID: ptr(stored.ID), Name: "Canine"}, nil, NotFound, nil},
		{"matching", EmbeddedSpecies{ID: ptr(stored.ID), Name: "Canine"}, &stored, FoundMatching, nil},
		{"matching after trim", EmbeddedSpecies{ID: ptr(stored.ID), Name: "  Canine "}, &stored, FoundMatching, nil},
		{"name differs", EmbeddedSpecies{ID: ptr(stored.ID), Name: "Canines"}, &stored, FoundDivergent, []string{"name"}},
		{"name case differs", EmbeddedSpecies{ID: ptr(stored.ID), Name: "canine"}, &stored, FoundDivergent, []string{"name"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Reconcile(tc.payload, tc.existing)
			assert.Equal(t, tc.want, d.Outcome)
			assert.Equal(t, tc.divergent, d.Divergent)
		})
	}
}

func TestReconcile_NotFoundCarriesPayload(t *testing.T) {
	d := Reconcile(EmbeddedSpecies{ID: ptr(" 5f0e8a0c-1111-4222-8333-944455556666 "), Name: " Feline "}, nil)
	require.Equal(t, NotFound, d.Outcome)
	assert.Equal(t, "5f0e8a0c-1111-4222-8333-944455556666", d.Species.ID)
	assert.Equal(t, "Feline", d.Species.Name)
	assert.Empty(t, d.Species.Technicians)
}

func TestReconcile_FoundReturnsStoredRecord(t *testing.T) {
	stored := species.Species{ID: "0b6c6b8e-7d1f-4c55-9d7e-3a4f0b1c2d3e", Name: "Canine", Technicians: []string{"t1"}}
	d := Reconcile(EmbeddedSpecies{ID: ptr(stored.ID), Name: "Canine"}, &stored)
	assert.Equal(t, stored, d.Species)
}

func TestDivergenceError_NamesSubFields(t *testing.T) {
	err := divergenceError([]string{"name"})
	var v *apperr.ValidationError
	require.True(t, errors.As(err, &v))
	require.Len(t, v.Fields, 1)
	assert.Equal(t, "species.name", v.Fields[0].Field)
}

func TestStrategy(t *testing.T) {
	assert.Equal(t, "species", NestedField.SpeciesField())
	assert.Equal(t, "species_id", SeparatePK.SpeciesField())
	assert.Equal(t, "species", WritablePK.SpeciesField())

	assert.True(t, NestedField.ExpandsSpecies())
	assert.True(t, SeparatePK.ExpandsSpecies())
	assert.False(t, WritablePK.ExpandsSpecies())
}
