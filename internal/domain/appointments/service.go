package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/veterinarians"
	"vet-clinic/internal/platform/validate"
	"vet-clinic/internal/ports/store"

	"github.com/google/uuid"
)

type Service struct {
	tx   store.Transactor
	repo Repository
	vets veterinarians.Repository
}

func NewService(tx store.Transactor, repo Repository, vets veterinarians.Repository) *Service {
	return &Service{tx: tx, repo: repo, vets: vets}
}

type BookInput struct {
	Time           time.Time
	VeterinarianID string
}

// Book crea el turno para un animal ya resuelto por el llamador.
func (s *Service) Book(ctx context.Context, animalID string, in BookInput) (Appointment, error) {
	v := &apperr.ValidationError{}
	if in.Time.IsZero() {
		v.Add("time", "this field is required")
	}
	vetID := strings.TrimSpace(in.VeterinarianID)
	switch {
	case vetID == "":
		v.Add("veterinarian_id", "this field is required")
	case !validate.UUID(vetID):
		v.Add("veterinarian_id", "must be a valid UUID")
	}
	if err := v.OrNil(); err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:             uuid.NewString(),
		Time:           Normalize(in.Time),
		AnimalID:       animalID,
		VeterinarianID: vetID,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.vets.GetByID(ctx, vetID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NewValidation("veterinarian_id", apperr.DoesNotExist(vetID))
			}
			return err
		}
		return apperr.FromStore("appointment", s.repo.Create(ctx, a))
	})
	if err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ForAnimals agrupa por animal los turnos dentro de la ventana.
func (s *Service) ForAnimals(ctx context.Context, animalIDs []string, w Window) (map[string][]Scheduled, error) {
	out := make(map[string][]Scheduled, len(animalIDs))
	if len(animalIDs) == 0 {
		return out, nil
	}
	items, err := s.repo.ListWindow(ctx, animalIDs, w)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.AnimalID] = append(out[it.AnimalID], it)
	}
	return out, nil
}
