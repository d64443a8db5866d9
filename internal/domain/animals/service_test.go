package animals_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/domain/veterinarians"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	store   *memory.Store
	svc     *animals.Service
	client  clients.Client
	dog     species.Species
	cat     species.Species
	beagle  breeds.Breed
	siamese breeds.Breed
	vet     veterinarians.Veterinarian
}

func newWorld(t *testing.T, now time.Time) *world {
	t.Helper()
	ctx := context.Background()
	st := memory.New()
	w := &world{store: st}

	w.client = clients.Client{ID: uuid.NewString(), Name: "Alice", AddressLine1: "1 Main", City: "X", State: "IL", Zip: "1", Phone: "1"}
	require.NoError(t, st.Clients().Create(ctx, w.client))
	w.dog = species.Species{ID: uuid.NewString(), Name: "Canine"}
	w.cat = species.Species{ID: uuid.NewString(), Name: "Feline"}
	require.NoError(t, st.Species().Create(ctx, w.dog))
	require.NoError(t, st.Species().Create(ctx, w.cat))
	w.beagle = breeds.Breed{ID: uuid.NewString(), Name: "Beagle", SpeciesID: w.dog.ID}
	w.siamese = breeds.Breed{ID: uuid.NewString(), Name: "Siamese", SpeciesID: w.cat.ID}
	require.NoError(t, st.Breeds().Create(ctx, w.beagle))
	require.NoError(t, st.Breeds().Create(ctx, w.siamese))
	w.vet = veterinarians.Veterinarian{ID: uuid.NewString(), UserID: "vet-user-1"}
	require.NoError(t, st.Veterinarians().Create(ctx, w.vet))

	appts := appointments.NewService(st, st.Appointments(), st.Veterinarians())
	w.svc = animals.NewService(st.Animals(), animals.Deps{
		Tx:           st,
		Clients:      st.Clients(),
		Species:      st.Species(),
		Breeds:       st.Breeds(),
		Appointments: appts,
	})
	animals.SetClock(w.svc, func() time.Time { return now })
	return w
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func (w *world) input(name string) animals.Input {
	return animals.Input{
		Name:              str(name),
		ClientID:          str(w.client.ID),
		SpeciesID:         str(w.dog.ID),
		BreedID:           animals.Set(w.beagle.ID),
		ApproxYearOfBirth: num(2018),
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var v *apperr.ValidationError
	require.True(t, errors.As(err, &v), "expected validation error, got %v", err)
	out := map[string]string{}
	for _, f := range v.Fields {
		out[f.Field] = f.Message
	}
	return out
}

var now = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCreate_LoadsDetail(t *testing.T) {
	w := newWorld(t, now)

	d, err := w.svc.Create(context.Background(), w.input("Rex"), animals.Select(animals.ActionCreate, false))
	require.NoError(t, err)
	assert.Equal(t, "Alice", d.Client.Name)
	assert.Equal(t, "Canine", d.Species.Name)
	require.NotNil(t, d.Breed)
	assert.Equal(t, "Beagle", d.Breed.Name)
	assert.Nil(t, d.Appointments)
}

func TestCreate_BreedMustBelongToSpecies(t *testing.T) {
	w := newWorld(t, now)
	in := w.input("Rex")
	in.BreedID = animals.Set(w.siamese.ID)

	_, err := w.svc.Create(context.Background(), in, animals.Select(animals.ActionCreate, false))
	assert.Contains(t, fields(t, err), "breed_id")
}

func TestCreate_UnknownReferences(t *testing.T) {
	w := newWorld(t, now)
	in := w.input("Rex")
	missing := uuid.NewString()
	in.ClientID = str(missing)
	in.BreedID = animals.Null[string]()

	_, err := w.svc.Create(context.Background(), in, animals.Select(animals.ActionCreate, false))
	assert.Equal(t, apperr.DoesNotExist(missing), fields(t, err)["client_id"])
}

func TestCreate_RequiredAndRanges(t *testing.T) {
	w := newWorld(t, now)

	_, err := w.svc.Create(context.Background(), animals.Input{}, animals.Plan{})
	errs := fields(t, err)
	for _, f := range []string{"name", "client_id", "species_id", "approx_year_of_birth"} {
		assert.Contains(t, errs, f)
	}

	in := w.input("Rex")
	in.ApproxYearOfBirth = num(40000)
	_, err = w.svc.Create(context.Background(), in, animals.Plan{})
	assert.Contains(t, fields(t, err), "approx_year_of_birth")
}

func TestPartialUpdate_NullClearsBreed_OmittedKeepsIt(t *testing.T) {
	w := newWorld(t, now)
	ctx := context.Background()
	plan := animals.Select(animals.ActionPartialUpdate, false)

	d, err := w.svc.Create(ctx, w.input("Rex"), plan)
	require.NoError(t, err)

	d, err = w.svc.Update(ctx, d.ID, animals.Input{Name: str("Rexy")}, plan)
	require.NoError(t, err)
	require.NotNil(t, d.BreedID)
	assert.Equal(t, "Rexy", d.Name)

	d, err = w.svc.Update(ctx, d.ID, animals.Input{BreedID: animals.Null[string]()}, plan)
	require.NoError(t, err)
	assert.Nil(t, d.BreedID)
	assert.Nil(t, d.Breed)
}

func TestGet_AppointmentsOnlyWhenPrivileged(t *testing.T) {
	w := newWorld(t, now)
	ctx := context.Background()

	d, err := w.svc.Create(ctx, w.input("Rex"), animals.Select(animals.ActionCreate, false))
	require.NoError(t, err)

	soon := now.Add(48 * time.Hour)
	_, err = w.svc.BookAppointment(ctx, d.ID, appointments.BookInput{Time: soon, VeterinarianID: w.vet.ID})
	require.NoError(t, err)
	_, err = w.svc.BookAppointment(ctx, d.ID, appointments.BookInput{Time: now.Add(-45 * 24 * time.Hour), VeterinarianID: w.vet.ID})
	require.NoError(t, err)

	plain, err := w.svc.Get(ctx, d.ID, animals.Select(animals.ActionRetrieve, false))
	require.NoError(t, err)
	assert.Nil(t, plain.Appointments)

	priv, err := w.svc.Get(ctx, d.ID, animals.Select(animals.ActionRetrieve, true))
	require.NoError(t, err)
	require.Len(t, priv.Appointments, 1)
	assert.True(t, soon.Equal(priv.Appointments[0].Time))
	assert.Equal(t, "vet-user-1", priv.Appointments[0].VeterinarianUserID)
}

func TestList_PrefetchesAppointmentsInOneShot(t *testing.T) {
	w := newWorld(t, now)
	ctx := context.Background()

	rex, err := w.svc.Create(ctx, w.input("Rex"), animals.Plan{})
	require.NoError(t, err)
	_, err = w.svc.Create(ctx, w.input("Fido"), animals.Plan{})
	require.NoError(t, err)
	_, err = w.svc.BookAppointment(ctx, rex.ID, appointments.BookInput{Time: now, VeterinarianID: w.vet.ID})
	require.NoError(t, err)

	items, err := w.svc.List(ctx, animals.ListFilter{}, animals.Select(animals.ActionList, true))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Fido", items[0].Name)
	assert.Empty(t, items[0].Appointments)
	assert.NotNil(t, items[0].Appointments)
	assert.Len(t, items[1].Appointments, 1)
	assert.Equal(t, "Alice", items[1].ClientName)
	assert.Equal(t, "Canine", items[1].SpeciesName)

	items, err = w.svc.List(ctx, animals.ListFilter{}, animals.Select(animals.ActionList, false))
	require.NoError(t, err)
	assert.Nil(t, items[1].Appointments)
}

func TestBookAppointment(t *testing.T) {
	w := newWorld(t, now)
	ctx := context.Background()

	rex, err := w.svc.Create(ctx, w.input("Rex"), animals.Plan{})
	require.NoError(t, err)
	fido, err := w.svc.Create(ctx, w.input("Fido"), animals.Plan{})
	require.NoError(t, err)

	at := time.Date(2030, 6, 2, 9, 30, 15, 999, time.FixedZone("X", 3600))
	a, err := w.svc.BookAppointment(ctx, rex.ID, appointments.BookInput{Time: at, VeterinarianID: w.vet.ID})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, a.Time.Location())
	assert.Equal(t, 0, a.Time.Nanosecond())
	assert.Equal(t, rex.ID, a.AnimalID)

	// mismo veterinario, mismo instante
	_, err = w.svc.BookAppointment(ctx, fido.ID, appointments.BookInput{Time: at, VeterinarianID: w.vet.ID})
	assert.Equal(t, "the fields time, veterinarian must make a unique set", fields(t, err)[apperr.NonFieldErrors])

	_, err = w.svc.BookAppointment(ctx, uuid.NewString(), appointments.BookInput{Time: at, VeterinarianID: w.vet.ID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	missing := uuid.NewString()
	_, err = w.svc.BookAppointment(ctx, fido.ID, appointments.BookInput{Time: at.Add(time.Hour), VeterinarianID: missing})
	assert.Equal(t, apperr.DoesNotExist(missing), fields(t, err)["veterinarian_id"])
}

func TestDelete_CascadesAppointments(t *testing.T) {
	w := newWorld(t, now)
	ctx := context.Background()

	rex, err := w.svc.Create(ctx, w.input("Rex"), animals.Plan{})
	require.NoError(t, err)
	a, err := w.svc.BookAppointment(ctx, rex.ID, appointments.BookInput{Time: now, VeterinarianID: w.vet.ID})
	require.NoError(t, err)

	require.NoError(t, w.svc.Delete(ctx, rex.ID))
	_, err = w.store.Appointments().GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
