package validate

import (
	"errors"
	"testing"

	"vet-clinic/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedPayload struct {
	ID   *string `json:"id" validate:"omitempty,uuid"`
	Name string  `json:"name" validate:"required,max=5"`
}

type payload struct {
	Name    string         `json:"name" validate:"required"`
	State   string         `json:"state" validate:"len=2"`
	Year    *int           `json:"approx_year_of_birth" validate:"required,min=0,max=32767"`
	Email   string         `json:"email" validate:"omitempty,email"`
	Species *nestedPayload `json:"species" validate:"required"`
	Tags    []string       `json:"technician_ids" validate:"dive,required"`
}

func TestStruct_FieldScopedErrors(t *testing.T) {
	bad := "not-a-uuid"
	year := 40000
	err := Struct(payload{
		State:   "Texas",
		Year:    &year,
		Email:   "nope",
		Species: &nestedPayload{ID: &bad, Name: "Canines"},
		Tags:    []string{"u1", ""},
	})

	var v *apperr.ValidationError
	require.True(t, errors.As(err, &v))

	got := map[string]string{}
	for _, f := range v.Fields {
		got[f.Field] = f.Message
	}
	assert.Equal(t, "this field is required", got["name"])
	assert.Equal(t, "ensure this field has exactly 2 characters", got["state"])
	assert.Equal(t, "ensure this value is less than or equal to 32767", got["approx_year_of_birth"])
	assert.Equal(t, "enter a valid email address", got["email"])
	assert.Equal(t, "must be a valid UUID", got["species.id"])
	assert.Equal(t, "ensure this field has no more than 5 characters", got["species.name"])
	assert.Equal(t, "this field is required", got["technician_ids[1]"])
}

func TestStruct_Valid(t *testing.T) {
	year := 2019
	assert.NoError(t, Struct(payload{
		Name:    "Milo",
		State:   "TX",
		Year:    &year,
		Species: &nestedPayload{Name: "Dog"},
	}))
}

func TestUUID(t *testing.T) {
	assert.True(t, UUID("0b3f2a3c-5a43-4c1f-9d0c-1f1b2f8f7a10"))
	assert.False(t, UUID("42"))
}
