package sqlite

import (
	"testing"

	"vet-clinic/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	sqlite3 "modernc.org/sqlite/lib"
)

func TestUniqueColumns(t *testing.T) {
	cases := []struct {
		msg  string
		want []string
	}{
		{"constraint failed: UNIQUE constraint failed: breeds.name, breeds.species_id (2067)", []string{"name", "species"}},
		{"constraint failed: UNIQUE constraint failed: appointments.time, appointments.veterinarian_id (2067)", []string{"time", "veterinarian"}},
		{"constraint failed: UNIQUE constraint failed: veterinarians.user_id (2067)", []string{"user_id"}},
		{"constraint failed: UNIQUE constraint failed: species.id (1555)", []string{"id"}},
		{"something else", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, uniqueColumns(tc.msg), tc.msg)
	}
}

func TestClassify(t *testing.T) {
	var ce *apperr.ConflictError

	err := classify(sqlite3.SQLITE_CONSTRAINT_UNIQUE, "constraint failed: UNIQUE constraint failed: species.name (2067)")
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, []string{"name"}, ce.Fields)
	}

	// insert con FK colgante
	assert.ErrorIs(t, classify(sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "constraint failed: FOREIGN KEY constraint failed (787)"), apperr.ErrReference)

	// delete bloqueado por ON DELETE RESTRICT
	assert.ErrorIs(t, classify(sqlite3.SQLITE_CONSTRAINT_TRIGGER, "constraint failed: FOREIGN KEY constraint failed (1811)"), apperr.ErrReference)

	assert.NoError(t, classify(sqlite3.SQLITE_CONSTRAINT_TRIGGER, "constraint failed: raise abort (1811)"))
	assert.NoError(t, classify(sqlite3.SQLITE_BUSY, "database is locked (5)"))
}
