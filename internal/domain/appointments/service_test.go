package appointments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/domain/veterinarians"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    *appointments.Service
	animal string
	other  string
	vet    string
	vet2   string
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.New()

	c := clients.Client{ID: uuid.NewString(), Name: "Alice"}
	sp := species.Species{ID: uuid.NewString(), Name: "Canine"}
	require.NoError(t, st.Clients().Create(ctx, c))
	require.NoError(t, st.Species().Create(ctx, sp))

	f := fixture{animal: uuid.NewString(), other: uuid.NewString(), vet: uuid.NewString(), vet2: uuid.NewString()}
	for _, id := range []string{f.animal, f.other} {
		require.NoError(t, st.Animals().Create(ctx, animals.Animal{ID: id, Name: "Rex", ClientID: c.ID, SpeciesID: sp.ID}))
	}
	require.NoError(t, st.Veterinarians().Create(ctx, veterinarians.Veterinarian{ID: f.vet, UserID: "u1"}))
	require.NoError(t, st.Veterinarians().Create(ctx, veterinarians.Veterinarian{ID: f.vet2, UserID: "u2"}))

	f.svc = appointments.NewService(st, st.Appointments(), st.Veterinarians())
	return f
}

func validation(t *testing.T, err error) map[string]string {
	t.Helper()
	var v *apperr.ValidationError
	require.True(t, errors.As(err, &v), "expected validation error, got %v", err)
	out := map[string]string{}
	for _, fe := range v.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestBook_DoubleBooking(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	at := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err := f.svc.Book(ctx, f.animal, appointments.BookInput{Time: at, VeterinarianID: f.vet})
	require.NoError(t, err)

	_, err = f.svc.Book(ctx, f.other, appointments.BookInput{Time: at, VeterinarianID: f.vet})
	assert.Equal(t, "the fields time, veterinarian must make a unique set", validation(t, err)[apperr.NonFieldErrors])

	_, err = f.svc.Book(ctx, f.animal, appointments.BookInput{Time: at, VeterinarianID: f.vet2})
	assert.Equal(t, "the fields time, animal must make a unique set", validation(t, err)[apperr.NonFieldErrors])

	// otro instante: libre
	_, err = f.svc.Book(ctx, f.other, appointments.BookInput{Time: at.Add(time.Second), VeterinarianID: f.vet})
	assert.NoError(t, err)
}

func TestBook_Validation(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Book(context.Background(), f.animal, appointments.BookInput{})
	errs := validation(t, err)
	assert.Contains(t, errs, "time")
	assert.Contains(t, errs, "veterinarian_id")

	_, err = f.svc.Book(context.Background(), f.animal, appointments.BookInput{Time: time.Now(), VeterinarianID: "nope"})
	assert.Equal(t, "must be a valid UUID", validation(t, err)["veterinarian_id"])
}

func TestForAnimals_WindowBounds(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	w := appointments.WindowAround(now, 30*24*time.Hour)

	in := []time.Time{w.From, now, w.To}
	out := []time.Time{w.From.Add(-time.Second), w.To.Add(time.Second)}
	for _, at := range append(in, out...) {
		_, err := f.svc.Book(ctx, f.animal, appointments.BookInput{Time: at, VeterinarianID: f.vet})
		require.NoError(t, err)
	}

	got, err := f.svc.ForAnimals(ctx, []string{f.animal, f.other}, w)
	require.NoError(t, err)
	require.Len(t, got[f.animal], len(in))
	for i, s := range got[f.animal] {
		assert.True(t, in[i].Equal(s.Time), "position %d", i)
		assert.Equal(t, "u1", s.VeterinarianUserID)
	}
	assert.Empty(t, got[f.other])
}

func TestWindow_Contains(t *testing.T) {
	now := time.Now()
	w := appointments.WindowAround(now, time.Hour)
	assert.True(t, w.Contains(now.Add(time.Hour)))
	assert.True(t, w.Contains(now.Add(-time.Hour)))
	assert.False(t, w.Contains(now.Add(time.Hour+time.Nanosecond)))
}
