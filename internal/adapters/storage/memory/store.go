package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/domain/veterinarians"
)

// Store es el estado compartido por todos los repos in-memory. Aplica las mismas
// restricciones de unicidad, FK y cascada que el esquema SQL.
type Store struct {
	// txMu serializa escrituras y transacciones; mu protege los mapas.
	txMu sync.Mutex
	mu   sync.RWMutex
	st   *state
}

type state struct {
	clients map[string]clients.Client
	species map[string]species.Species
	breeds  map[string]breeds.Breed
	vets    map[string]veterinarians.Veterinarian
	animals map[string]animals.Animal
	appts   map[string]appointments.Appointment
}

func New() *Store {
	return &Store{st: newState()}
}

func newState() *state {
	return &state{
		clients: map[string]clients.Client{},
		species: map[string]species.Species{},
		breeds:  map[string]breeds.Breed{},
		vets:    map[string]veterinarians.Veterinarian{},
		animals: map[string]animals.Animal{},
		appts:   map[string]appointments.Appointment{},
	}
}

func (s *state) clone() *state {
	out := newState()
	for k, v := range s.clients {
		out.clients[k] = v
	}
	for k, v := range s.species {
		out.species[k] = copySpecies(v)
	}
	for k, v := range s.breeds {
		out.breeds[k] = v
	}
	for k, v := range s.vets {
		out.vets[k] = v
	}
	for k, v := range s.animals {
		out.animals[k] = copyAnimal(v)
	}
	for k, v := range s.appts {
		out.appts[k] = v
	}
	return out
}

type txKey struct{}

// WithinTx corre fn con las escrituras serializadas; si fn falla se restaura
// el estado anterior. Las transacciones anidadas se unen a la externa.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// write aplica fn con el lock de escritura. Fuera de una transacción también
// toma txMu para no intercalarse con una que pueda hacer rollback.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

func (s *Store) Clients() clients.Repository { return clientsRepo{s} }
func (s *Store) Species() species.Repository { return speciesRepo{s} }
func (s *Store) Breeds() breeds.Repository { return breedsRepo{s} }
func (s *Store) Veterinarians() veterinarians.Repository { return vetsRepo{s} }
func (s *Store) Animals() animals.Repository { return animalsRepo{s} }
func (s *Store) Appointments() appointments.Repository { return appointmentsRepo{s} }

func copySpecies(sp species.Species) species.Species {
	if sp.Technicians != nil {
		sp.Technicians = append([]string(nil), sp.Technicians...)
	}
	return sp
}

func copyAnimal(a animals.Animal) animals.Animal {
	if a.BreedID != nil {
		id := *a.BreedID
		a.BreedID = &id
	}
	if a.FirstVisitDate != nil {
		d := *a.FirstVisitDate
		a.FirstVisitDate = &d
	}
	return a
}

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// page aplica offset/limit a un slice ya ordenado.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// sortByName ordena por nombre y desempata por id, igual que los ORDER BY del store SQL.
func sortByName[T any](items []T, name, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		if name(items[i]) != name(items[j]) {
			return name(items[i]) < name(items[j])
		}
		return id(items[i]) < id(items[j])
	})
}
