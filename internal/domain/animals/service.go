package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/platform/validate"
	"vet-clinic/internal/ports/store"

	"github.com/google/uuid"
)

type Service struct {
	tx      store.Transactor
	repo    Repository
	clients clients.Repository
	species species.Repository
	breeds  breeds.Repository
	appts   *appointments.Service

	now func() time.Time
}

// Deps agrupa los repositorios de las relaciones que el animal referencia.
type Deps struct {
	Tx           store.Transactor
	Clients      clients.Repository
	Species      species.Repository
	Breeds       breeds.Repository
	Appointments *appointments.Service
}

func NewService(repo Repository, d Deps) *Service {
	return &Service{
		tx:      d.Tx,
		repo:    repo,
		clients: d.Clients,
		species: d.Species,
		breeds:  d.Breeds,
		appts:   d.Appointments,
		now:     time.Now,
	}
}

// Input sirve para create, update y partial update; nil / !Present = no enviado.
type Input struct {
	Name              *string
	ClientID          *string
	SpeciesID         *string
	BreedID           Nullable[string]
	ApproxYearOfBirth *int
	FirstVisitDate    Nullable[time.Time]
}

// Detail es el animal con sus relaciones cargadas según el Plan.
type Detail struct {
	Animal
	Client  clients.Client
	Species species.Species
	Breed   *breeds.Breed

	// Appointments es nil salvo que el plan incluya PrefetchAppointments.
	Appointments []appointments.Scheduled
}

type Summary struct {
	Listed
	Appointments []appointments.Scheduled
}

func (s *Service) Create(ctx context.Context, in Input, plan Plan) (Detail, error) {
	v := &apperr.ValidationError{}
	if in.Name == nil {
		v.Add("name", "this field is required")
	}
	if in.ClientID == nil {
		v.Add("client_id", "this field is required")
	}
	if in.SpeciesID == nil {
		v.Add("species_id", "this field is required")
	}
	if in.ApproxYearOfBirth == nil {
		v.Add("approx_year_of_birth", "this field is required")
	}
	if err := v.OrNil(); err != nil {
		return Detail{}, err
	}

	a := apply(Animal{ID: uuid.NewString()}, in)
	if err := check(a); err != nil {
		return Detail{}, err
	}

	var out Detail
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		d, err := s.resolveRefs(ctx, a)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, a); err != nil {
			return apperr.FromStore("animal", err)
		}
		out = d
		return nil
	})
	if err != nil {
		return Detail{}, err
	}
	return s.attach(ctx, out, plan)
}

func (s *Service) Update(ctx context.Context, id string, in Input, plan Plan) (Detail, error) {
	var out Detail
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		a := apply(current, in)
		if err := check(a); err != nil {
			return err
		}
		d, err := s.resolveRefs(ctx, a)
		if err != nil {
			return err
		}
		if err := s.repo.Update(ctx, a); err != nil {
			return apperr.FromStore("animal", err)
		}
		out = d
		return nil
	})
	if err != nil {
		return Detail{}, err
	}
	return s.attach(ctx, out, plan)
}

func (s *Service) Get(ctx context.Context, id string, plan Plan) (Detail, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	d := Detail{Animal: a}
	if d.Client, err = s.clients.GetByID(ctx, a.ClientID); err != nil {
		return Detail{}, err
	}
	if d.Species, err = s.species.GetByID(ctx, a.SpeciesID); err != nil {
		return Detail{}, err
	}
	if plan.Prefetch.Has(PrefetchBreed) && a.BreedID != nil {
		b, err := s.breeds.GetByID(ctx, *a.BreedID)
		if err != nil {
			return Detail{}, err
		}
		d.Breed = &b
	}
	return s.attach(ctx, d, plan)
}

func (s *Service) List(ctx context.Context, filter ListFilter, plan Plan) ([]Summary, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(items))
	for _, it := range items {
		out = append(out, Summary{Listed: it})
	}
	if !plan.Prefetch.Has(PrefetchAppointments) {
		return out, nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	byAnimal, err := s.appts.ForAnimals(ctx, ids, s.window())
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Appointments = nonNil(byAnimal[out[i].ID])
	}
	return out, nil
}

// Delete borra el animal y, en cascada, sus turnos.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// BookAppointment busca el animal sin cargar relaciones y delega la reserva.
func (s *Service) BookAppointment(ctx context.Context, animalID string, in appointments.BookInput) (appointments.Appointment, error) {
	a, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return s.appts.Book(ctx, a.ID, in)
}

func (s *Service) window() appointments.Window {
	return appointments.WindowAround(s.now(), AppointmentWindow)
}

func (s *Service) attach(ctx context.Context, d Detail, plan Plan) (Detail, error) {
	if !plan.Prefetch.Has(PrefetchAppointments) {
		d.Appointments = nil
		return d, nil
	}
	byAnimal, err := s.appts.ForAnimals(ctx, []string{d.ID}, s.window())
	if err != nil {
		return Detail{}, err
	}
	d.Appointments = nonNil(byAnimal[d.ID])
	return d, nil
}

// resolveRefs valida que cliente, especie y raza existan y que la raza sea de esa especie.
func (s *Service) resolveRefs(ctx context.Context, a Animal) (Detail, error) {
	d := Detail{Animal: a}
	v := &apperr.ValidationError{}

	c, err := s.clients.GetByID(ctx, a.ClientID)
	switch {
	case err == nil:
		d.Client = c
	case errors.Is(err, apperr.ErrNotFound):
		v.Add("client_id", apperr.DoesNotExist(a.ClientID))
	default:
		return Detail{}, err
	}

	sp, err := s.species.GetByID(ctx, a.SpeciesID)
	switch {
	case err == nil:
		d.Species = sp
	case errors.Is(err, apperr.ErrNotFound):
		v.Add("species_id", apperr.DoesNotExist(a.SpeciesID))
	default:
		return Detail{}, err
	}

	if a.BreedID != nil {
		b, err := s.breeds.GetByID(ctx, *a.BreedID)
		switch {
		case err == nil:
			if b.SpeciesID != a.SpeciesID {
				v.Add("breed_id", fmt.Sprintf("breed %q does not belong to species %q", b.ID, a.SpeciesID))
			}
			d.Breed = &b
		case errors.Is(err, apperr.ErrNotFound):
			v.Add("breed_id", apperr.DoesNotExist(*a.BreedID))
		default:
			return Detail{}, err
		}
	}

	if err := v.OrNil(); err != nil {
		return Detail{}, err
	}
	return d, nil
}

func apply(a Animal, in Input) Animal {
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.ClientID != nil {
		a.ClientID = strings.TrimSpace(*in.ClientID)
	}
	if in.SpeciesID != nil {
		a.SpeciesID = strings.TrimSpace(*in.SpeciesID)
	}
	if in.BreedID.Present {
		a.BreedID = nil
		if in.BreedID.Value != nil {
			id := strings.TrimSpace(*in.BreedID.Value)
			a.BreedID = &id
		}
	}
	if in.ApproxYearOfBirth != nil {
		a.ApproxYearOfBirth = *in.ApproxYearOfBirth
	}
	if in.FirstVisitDate.Present {
		a.FirstVisitDate = nil
		if in.FirstVisitDate.Value != nil {
			d := in.FirstVisitDate.Value.UTC().Truncate(24 * time.Hour)
			a.FirstVisitDate = &d
		}
	}
	return a
}

func check(a Animal) error {
	v := &apperr.ValidationError{}
	if a.Name == "" {
		v.Add("name", "this field may not be blank")
	}
	if !validate.UUID(a.ClientID) {
		v.Add("client_id", "must be a valid UUID")
	}
	if !validate.UUID(a.SpeciesID) {
		v.Add("species_id", "must be a valid UUID")
	}
	if a.BreedID != nil && !validate.UUID(*a.BreedID) {
		v.Add("breed_id", "must be a valid UUID")
	}
	if a.ApproxYearOfBirth < 0 || a.ApproxYearOfBirth > MaxApproxYear {
		v.Add("approx_year_of_birth", fmt.Sprintf("must be between 0 and %d", MaxApproxYear))
	}
	return v.OrNil()
}

func nonNil(items []appointments.Scheduled) []appointments.Scheduled {
	if items == nil {
		return []appointments.Scheduled{}
	}
	return items
}
