package species

import (
	"context"
	"sort"
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

type CreateInput struct {
	Name          string
	TechnicianIDs []string
}

// Patch: TechnicianIDs nil = no tocar, slice vacío = limpiar, otro = reemplazo completo.
type Patch struct {
	Name          *string
	TechnicianIDs *[]string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Species, error) {
	sp := Species{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Technicians: NormalizeTechnicians(in.TechnicianIDs),
	}
	if sp.Name == "" {
		return Species{}, apperr.NewValidation("name", "this field may not be blank")
	}
	if err := s.repo.Create(ctx, sp); err != nil {
		return Species{}, apperr.FromStore("species", err)
	}
	return sp, nil
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Species, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Species{}, err
	}
	if p.Name != nil {
		sp.Name = strings.TrimSpace(*p.Name)
		if sp.Name == "" {
			return Species{}, apperr.NewValidation("name", "this field may not be blank")
		}
	}
	if p.TechnicianIDs != nil {
		sp.Technicians = NormalizeTechnicians(*p.TechnicianIDs)
	}
	if err := s.repo.Update(ctx, sp); err != nil {
		return Species{}, apperr.FromStore("species", err)
	}
	return sp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Species, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Species, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// NormalizeTechnicians recorta, descarta vacíos, deduplica y ordena.
func NormalizeTechnicians(ids []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
