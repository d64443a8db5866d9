package veterinarians

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/apperr"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID string) (Veterinarian, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Veterinarian{}, apperr.NewValidation("user_id", "this field may not be blank")
	}

	v := Veterinarian{ID: uuid.NewString(), UserID: userID}
	if err := s.repo.Create(ctx, v); err != nil {
		return Veterinarian{}, apperr.FromStore("veterinarian", err)
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Veterinarian, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
