package breeds

import (
	"context"
	"errors"
	"strings"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/platform/validate"
	"vet-clinic/internal/ports/store"

	"github.com/google/uuid"
)

// SpeciesSource resuelve la especie a la que apunta una escritura de raza.
// Cada estrategia de la API aporta su propia implementación.
type SpeciesSource interface {
	resolve(ctx context.Context, s *Service) (species.Species, error)
}

// SpeciesRef es una referencia por id a una especie existente (estrategias B y C).
type SpeciesRef struct {
	Field string // nombre del campo en el payload ("species_id" o "species")
	ID    string
}

func (e EmbeddedSpecies) resolve(ctx context.Context, s *Service) (species.Species, error) {
	return s.resolveEmbedded(ctx, e)
}

func (r SpeciesRef) resolve(ctx context.Context, s *Service) (species.Species, error) {
	return s.resolveRef(ctx, r)
}

// Input para create/update. Name nil o Species nil = campo omitido.
type Input struct {
	Name    *string
	Species SpeciesSource
}

type Service struct {
	tx      store.Transactor
	repo    Repository
	species species.Repository

	// OnReconcile recibe cada resultado de reconciliación (métricas). Puede ser nil.
	OnReconcile func(Outcome)
}

func NewService(tx store.Transactor, repo Repository, speciesRepo species.Repository) *Service {
	return &Service{
		tx:      tx,
		repo:    repo,
		species: speciesRepo,
	}
}

func (s *Service) Create(ctx context.Context, st Strategy, in Input) (View, error) {
	v := &apperr.ValidationError{}
	name := ""
	if in.Name == nil {
		v.Add("name", "this field is required")
	} else if name = strings.TrimSpace(*in.Name); name == "" {
		v.Add("name", "this field may not be blank")
	}
	if in.Species == nil {
		v.Add(st.SpeciesField(), "this field is required")
	}
	if err := v.OrNil(); err != nil {
		return View{}, err
	}

	var out View
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sp, err := in.Species.resolve(ctx, s)
		if err != nil {
			return err
		}

		b := Breed{ID: uuid.NewString(), Name: name, SpeciesID: sp.ID}
		if err := s.repo.Create(ctx, b); err != nil {
			return apperr.FromStore("breed", err)
		}
		out = View{Breed: b, Species: sp}
		return nil
	})
	if err != nil {
		return View{}, err
	}
	return out, nil
}

// Update aplica los campos presentes. Omitir la especie deja la referencia actual intacta.
func (s *Service) Update(ctx context.Context, id string, in Input) (View, error) {
	var out View
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			b.Name = strings.TrimSpace(*in.Name)
			if b.Name == "" {
				return apperr.NewValidation("name", "this field may not be blank")
			}
		}

		var sp species.Species
		if in.Species != nil {
			sp, err = in.Species.resolve(ctx, s)
			if err != nil {
				return err
			}
			b.SpeciesID = sp.ID
		} else {
			sp, err = s.species.GetByID(ctx, b.SpeciesID)
			if err != nil {
				return err
			}
		}

		if err := s.repo.Update(ctx, b); err != nil {
			return apperr.FromStore("breed", err)
		}
		out = View{Breed: b, Species: sp}
		return nil
	})
	if err != nil {
		return View{}, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	sp, err := s.species.GetByID(ctx, b.SpeciesID)
	if err != nil {
		return View{}, err
	}
	return View{Breed: b, Species: sp}, nil
}

// GetByID devuelve solo la raza, sin resolver la especie.
func (s *Service) GetByID(ctx context.Context, id string) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]View, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// una lectura por especie distinta, no por raza
	cache := map[string]species.Species{}
	out := make([]View, 0, len(items))
	for _, b := range items {
		sp, ok := cache[b.SpeciesID]
		if !ok {
			sp, err = s.species.GetByID(ctx, b.SpeciesID)
			if err != nil {
				return nil, err
			}
			cache[b.SpeciesID] = sp
		}
		out = append(out, View{Breed: b, Species: sp})
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// resolveEmbedded implementa la estrategia A: buscar por identidad, comparar y,
// si no existe, crear. Corre dentro de la transacción de la raza.
func (s *Service) resolveEmbedded(ctx context.Context, p EmbeddedSpecies) (species.Species, error) {
	if strings.TrimSpace(p.Name) == "" {
		return species.Species{}, apperr.NewValidation("species.name", "this field is required")
	}
	if p.ID != nil && !validate.UUID(*p.ID) {
		return species.Species{}, apperr.NewValidation("species.id", "must be a valid UUID")
	}

	var existing *species.Species
	if p.ID != nil {
		found, err := s.species.GetByID(ctx, strings.TrimSpace(*p.ID))
		switch {
		case err == nil:
			existing = &found
		case errors.Is(err, apperr.ErrNotFound):
		default:
			return species.Species{}, err
		}
	}

	d := Reconcile(p, existing)
	switch d.Outcome {
	case FoundMatching:
		s.observe(FoundMatching)
		return d.Species, nil
	case FoundDivergent:
		s.observe(FoundDivergent)
		return species.Species{}, divergenceError(d.Divergent)
	}

	created := d.Species
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	err := s.species.Create(ctx, created)
	if err == nil {
		s.observe(Created)
		return created, nil
	}

	var conflict *apperr.ConflictError
	if !errors.As(err, &conflict) {
		return species.Species{}, err
	}

	// Otro request la acaba de crear: una única re-búsqueda, sin más reintentos.
	var recovered species.Species
	if p.ID != nil {
		recovered, err = s.species.GetByID(ctx, created.ID)
	} else {
		recovered, err = s.species.GetByName(ctx, created.Name)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return species.Species{}, conflict.AsValidation("species").Nest("species")
	}
	if err != nil {
		return species.Species{}, err
	}

	d = Reconcile(p, &recovered)
	if d.Outcome == FoundDivergent {
		s.observe(FoundDivergent)
		return species.Species{}, divergenceError(d.Divergent)
	}
	s.observe(RecoveredConflict)
	return recovered, nil
}

// resolveRef implementa B y C: la especie debe existir.
func (s *Service) resolveRef(ctx context.Context, r SpeciesRef) (species.Species, error) {
	field := r.Field
	if field == "" {
		field = "species"
	}
	id := strings.TrimSpace(r.ID)
	if !validate.UUID(id) {
		return species.Species{}, apperr.NewValidation(field, "must be a valid UUID")
	}

	sp, err := s.species.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return species.Species{}, apperr.NewValidation(field, apperr.DoesNotExist(id))
	}
	if err != nil {
		return species.Species{}, err
	}
	return sp, nil
}

func (s *Service) observe(o Outcome) {
	if s.OnReconcile != nil {
		s.OnReconcile(o)
	}
}
