// Package storetest es la batería de contrato que cada backend de storage debe pasar.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic/internal/adapters/storage"
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

// Run ejecuta cada caso contra un store recién creado por newStore.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	cases := map[string]func(t *testing.T, s storage.Store){
		"clients crud":                   testClientsCRUD,
		"species unique name":            testSpeciesUniqueName,
		"species technicians":            testSpeciesTechnicians,
		"breeds unique pair":             testBreedsUniquePair,
		"species delete cascades breeds": testSpeciesDeleteCascade,
		"species delete protected":       testSpeciesDeleteProtected,
		"animals list":                   testAnimalsList,
		"client delete cascades":         testClientDeleteCascade,
		"appointments unique":            testAppointmentsUnique,
		"appointments window":            testAppointmentsWindow,
		"veterinarians":                  testVeterinarians,
		"tx rollback":                    testTxRollback,
		"tx survives species conflict":   testTxSpeciesConflict,
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			fn(t, newStore(t))
		})
	}
}

var ctx = context.Background()

func newID() string { return uuid.NewString() }

func seedClient(t *testing.T, s storage.Store, name string) clients.Client {
	t.Helper()
	c := clients.Client{
		ID: newID(), Name: name, AddressLine1: "1 Main St", City: "Springfield",
		State: "IL", Zip: "62701", Phone: "555-0100",
	}
	require.NoError(t, s.Clients().Create(ctx, c))
	return c
}

func seedSpecies(t *testing.T, s storage.Store, name string) species.Species {
	t.Helper()
	sp := species.Species{ID: newID(), Name: name}
	require.NoError(t, s.Species().Create(ctx, sp))
	return sp
}

func seedBreed(t *testing.T, s storage.Store, name, speciesID string) breeds.Breed {
	t.Helper()
	b := breeds.Breed{ID: newID(), Name: name, SpeciesID: speciesID}
	require.NoError(t, s.Breeds().Create(ctx, b))
	return b
}

func seedAnimal(t *testing.T, s storage.Store, name, clientID, speciesID string, breedID *string) animals.Animal {
	t.Helper()
	a := animals.Animal{ID: newID(), Name: name, ClientID: clientID, SpeciesID: speciesID, BreedID: breedID, ApproxYearOfBirth: 2019}
	require.NoError(t, s.Animals().Create(ctx, a))
	return a
}

func seedVet(t *testing.T, s storage.Store, userID string) veterinarians.Veterinarian {
	t.Helper()
	v := veterinarians.Veterinarian{ID: newID(), UserID: userID}
	require.NoError(t, s.Veterinarians().Create(ctx, v))
	return v
}

func conflictOn(t *testing.T, err error, fields ...string) {
	t.Helper()
	var ce *apperr.ConflictError
	require.True(t, errors.As(err, &ce), "expected conflict, got %v", err)
	assert.True(t, ce.Covers(fields...), "conflict fields %v, want %v", ce.Fields, fields)
}

func testClientsCRUD(t *testing.T, s storage.Store) {
	c := seedClient(t, s, "Alice Smith")
	seedClient(t, s, "Bob Jones")

	got, err := s.Clients().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	c.City = "Shelbyville"
	c.Email = "alice@example.com"
	require.NoError(t, s.Clients().Update(ctx, c))
	got, err = s.Clients().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shelbyville", got.City)
	assert.Equal(t, "alice@example.com", got.Email)

	list, err := s.Clients().List(ctx, clients.ListFilter{Name: "ALICE"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	list, err = s.Clients().List(ctx, clients.ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bob Jones", list[0].Name)

	require.NoError(t, s.Clients().Delete(ctx, c.ID))
	_, err = s.Clients().GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, s.Clients().Delete(ctx, c.ID), apperr.ErrNotFound)
	assert.ErrorIs(t, s.Clients().Update(ctx, c), apperr.ErrNotFound)
}

func testSpeciesUniqueName(t *testing.T, s storage.Store) {
	sp := seedSpecies(t, s, "Canine")

	err := s.Species().Create(ctx, species.Species{ID: newID(), Name: "Canine"})
	conflictOn(t, err, "name")

	err = s.Species().Create(ctx, species.Species{ID: sp.ID, Name: "Feline"})
	conflictOn(t, err, "id")

	got, err := s.Species().GetByName(ctx, "Canine")
	require.NoError(t, err)
	assert.Equal(t, sp.ID, got.ID)

	_, err = s.Species().GetByName(ctx, "Feline")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func testSpeciesTechnicians(t *testing.T, s storage.Store) {
	sp := species.Species{ID: newID(), Name: "Avian", Technicians: []string{"tech-a", "tech-b"}}
	require.NoError(t, s.Species().Create(ctx, sp))

	got, err := s.Species().GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tech-a", "tech-b"}, got.Technicians)

	sp.Technicians = []string{"tech-c"}
	require.NoError(t, s.Species().Update(ctx, sp))
	got, err = s.Species().GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tech-c"}, got.Technicians)

	list, err := s.Species().List(ctx, species.ListFilter{Name: "avi"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"tech-c"}, list[0].Technicians)
}

func testBreedsUniquePair(t *testing.T, s storage.Store) {
	dog := seedSpecies(t, s, "Canine")
	cat := seedSpecies(t, s, "Feline")
	seedBreed(t, s, "Labrador", dog.ID)

	err := s.Breeds().Create(ctx, breeds.Breed{ID: newID(), Name: "Labrador", SpeciesID: dog.ID})
	conflictOn(t, err, "name", "species")

	// mismo nombre en otra especie es válido
	seedBreed(t, s, "Labrador", cat.ID)

	err = s.Breeds().Create(ctx, breeds.Breed{ID: newID(), Name: "Ghost", SpeciesID: newID()})
	assert.ErrorIs(t, err, apperr.ErrReference)

	list, err := s.Breeds().List(ctx, breeds.ListFilter{SpeciesID: cat.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cat.ID, list[0].SpeciesID)
}

func testSpeciesDeleteCascade(t *testing.T, s storage.Store) {
	dog := seedSpecies(t, s, "Canine")
	b := seedBreed(t, s, "Beagle", dog.ID)

	require.NoError(t, s.Species().Delete(ctx, dog.ID))
	_, err := s.Breeds().GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func testSpeciesDeleteProtected(t *testing.T, s storage.Store) {
	c := seedClient(t, s, "Alice")
	dog := seedSpecies(t, s, "Canine")
	b := seedBreed(t, s, "Beagle", dog.ID)
	seedAnimal(t, s, "Rex", c.ID, dog.ID, &b.ID)

	assert.ErrorIs(t, s.Species().Delete(ctx, dog.ID), apperr.ErrProtected)
	assert.ErrorIs(t, s.Breeds().Delete(ctx, b.ID), apperr.ErrProtected)

	_, err := s.Species().GetByID(ctx, dog.ID)
	assert.NoError(t, err)
}

func testAnimalsList(t *testing.T, s storage.Store) {
	alice := seedClient(t, s, "Alice")
	bob := seedClient(t, s, "Bob")
	dog := seedSpecies(t, s, "Canine")
	cat := seedSpecies(t, s, "Feline")
	beagle := seedBreed(t, s, "Beagle", dog.ID)

	visit := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rex := animals.Animal{
		ID: newID(), Name: "Rex", ClientID: alice.ID, SpeciesID: dog.ID, BreedID: &beagle.ID,
		ApproxYearOfBirth: 2018, FirstVisitDate: &visit,
	}
	require.NoError(t, s.Animals().Create(ctx, rex))
	seedAnimal(t, s, "Tom", bob.ID, cat.ID, nil)

	got, err := s.Animals().GetByID(ctx, rex.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BreedID)
	assert.Equal(t, beagle.ID, *got.BreedID)
	require.NotNil(t, got.FirstVisitDate)
	assert.True(t, visit.Equal(*got.FirstVisitDate))

	list, err := s.Animals().List(ctx, animals.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rex", list[0].Name)
	assert.Equal(t, "Alice", list[0].ClientName)
	assert.Equal(t, "Canine", list[0].SpeciesName)
	assert.Nil(t, list[1].BreedID)

	list, err = s.Animals().List(ctx, animals.ListFilter{SpeciesID: cat.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tom", list[0].Name)

	list, err = s.Animals().List(ctx, animals.ListFilter{BreedID: beagle.ID, ClientID: alice.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)

	got.BreedID = nil
	got.FirstVisitDate = nil
	require.NoError(t, s.Animals().Update(ctx, got))
	got, err = s.Animals().GetByID(ctx, rex.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BreedID)
	assert.Nil(t, got.FirstVisitDate)

	err = s.Animals().Create(ctx, animals.Animal{ID: newID(), Name: "Ghost", ClientID: newID(), SpeciesID: dog.ID})
	assert.ErrorIs(t, err, apperr.ErrReference)
}

func testClientDeleteCascade(t *testing.T, s storage.Store) {
	c := seedClient(t, s, "Alice")
	dog := seedSpecies(t, s, "Canine")
	a := seedAnimal(t, s, "Rex", c.ID, dog.ID, nil)
	v := seedVet(t, s, "vet-1")
	appt := appointments.Appointment{ID: newID(), Time: appointments.Normalize(time.Now()), AnimalID: a.ID, VeterinarianID: v.ID}
	require.NoError(t, s.Appointments().Create(ctx, appt))

	require.NoError(t, s.Clients().Delete(ctx, c.ID))

	_, err := s.Animals().GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = s.Appointments().GetByID(ctx, appt.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// el veterinario ya no tiene turnos, se puede borrar
	assert.NoError(t, s.Veterinarians().Delete(ctx, v.ID))
}

func testAppointmentsUnique(t *testing.T, s storage.Store) {
	c := seedClient(t, s, "Alice")
	dog := seedSpecies(t, s, "Canine")
	rex := seedAnimal(t, s, "Rex", c.ID, dog.ID, nil)
	fido := seedAnimal(t, s, "Fido", c.ID, dog.ID, nil)
	v1 := seedVet(t, s, "vet-1")
	v2 := seedVet(t, s, "vet-2")

	at := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Appointments().Create(ctx, appointments.Appointment{ID: newID(), Time: at, AnimalID: rex.ID, VeterinarianID: v1.ID}))

	err := s.Appointments().Create(ctx, appointments.Appointment{ID: newID(), Time: at, AnimalID: fido.ID, VeterinarianID: v1.ID})
	conflictOn(t, err, "time", "veterinarian")

	err = s.Appointments().Create(ctx, appointments.Appointment{ID: newID(), Time: at, AnimalID: rex.ID, VeterinarianID: v2.ID})
	conflictOn(t, err, "time", "animal")

	// instante libre: solo puede fallar la FK del veterinario
	err = s.Appointments().Create(ctx, appointments.Appointment{ID: newID(), Time: at.Add(time.Hour), AnimalID: rex.ID, VeterinarianID: newID()})
	assert.ErrorIs(t, err, apperr.ErrReference)

	assert.ErrorIs(t, s.Veterinarians().Delete(ctx, v1.ID), apperr.ErrProtected)
}

func testAppointmentsWindow(t *testing.T, s storage.Store) {
	c := seedClient(t, s, "Alice")
	dog := seedSpecies(t, s, "Canine")
	rex := seedAnimal(t, s, "Rex", c.ID, dog.ID, nil)
	fido := seedAnimal(t, s, "Fido", c.ID, dog.ID, nil)
	v := seedVet(t, s, "vet-1")

	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	book := func(animalID string, at time.Time) string {
		id := newID()
		require.NoError(t, s.Appointments().Create(ctx, appointments.Appointment{ID: id, Time: at, AnimalID: animalID, VeterinarianID: v.ID}))
		return id
	}
	inside := book(rex.ID, now.Add(24*time.Hour))
	past := book(rex.ID, now.Add(-10*24*time.Hour))
	book(rex.ID, now.Add(-60*24*time.Hour))
	book(fido.ID, now.Add(2*time.Hour))

	got, err := s.Appointments().ListWindow(ctx, []string{rex.ID}, appointments.WindowAround(now, 30*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, past, got[0].ID)
	assert.Equal(t, inside, got[1].ID)
	assert.Equal(t, "vet-1", got[0].VeterinarianUserID)
	assert.True(t, now.Add(24*time.Hour).Equal(got[1].Time))

	got, err = s.Appointments().ListWindow(ctx, nil, appointments.WindowAround(now, time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testVeterinarians(t *testing.T, s storage.Store) {
	v := seedVet(t, s, "vet-1")
	seedVet(t, s, "vet-2")

	err := s.Veterinarians().Create(ctx, veterinarians.Veterinarian{ID: newID(), UserID: "vet-1"})
	conflictOn(t, err, "user_id")

	list, err := s.Veterinarians().List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, v.ID, list[0].ID)

	require.NoError(t, s.Veterinarians().Delete(ctx, v.ID))
	_, err = s.Veterinarians().GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func testTxRollback(t *testing.T, s storage.Store) {
	boom := errors.New("boom")
	sp := species.Species{ID: newID(), Name: "Canine"}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Species().Create(ctx, sp))
		require.NoError(t, s.Breeds().Create(ctx, breeds.Breed{ID: newID(), Name: "Beagle", SpeciesID: sp.ID}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Species().GetByID(ctx, sp.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	list, err := s.Breeds().List(ctx, breeds.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Un choque de unicidad al crear la especie no debe invalidar la transacción:
// la reconciliación vuelve a buscarla y sigue con la raza.
func testTxSpeciesConflict(t *testing.T, s storage.Store) {
	existing := seedSpecies(t, s, "Canine")
	breedID := newID()

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		err := s.Species().Create(ctx, species.Species{ID: newID(), Name: "Canine"})
		conflictOn(t, err, "name")

		found, err := s.Species().GetByName(ctx, "Canine")
		if err != nil {
			return err
		}
		return s.Breeds().Create(ctx, breeds.Breed{ID: breedID, Name: "Beagle", SpeciesID: found.ID})
	})
	require.NoError(t, err)

	b, err := s.Breeds().GetByID(ctx, breedID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, b.SpeciesID)
}
