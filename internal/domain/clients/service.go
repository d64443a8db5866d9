package clients

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

// Patch tiene punteros para PATCH real: nil = no tocar.
type Patch struct {
	Name         *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	Zip          *string
	Phone        *string
	Email        *string
}

func (s *Service) Create(ctx context.Context, in Patch) (Client, error) {
	c := apply(Client{ID: uuid.NewString()}, in)
	if err := requireFields(c); err != nil {
		return Client{}, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, apperr.FromStore("client", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in Patch) (Client, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}
	updated := apply(current, in)
	if err := requireFields(updated); err != nil {
		return Client{}, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return Client{}, apperr.FromStore("client", err)
	}
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Client, error) {
	return s.repo.List(ctx, filter)
}

// Delete borra el cliente; sus animales (y los turnos de esos animales) caen en cascada.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func apply(c Client, p Patch) Client {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&c.Name, p.Name)
	set(&c.AddressLine1, p.AddressLine1)
	set(&c.AddressLine2, p.AddressLine2)
	set(&c.City, p.City)
	set(&c.State, p.State)
	set(&c.Zip, p.Zip)
	set(&c.Phone, p.Phone)
	set(&c.Email, p.Email)
	return c
}

func requireFields(c Client) error {
	v := &apperr.ValidationError{}
	for _, f := range []struct {
		name string
		val  string
	}{
		{"name", c.Name},
		{"address_line_1", c.AddressLine1},
		{"city", c.City},
		{"state", c.State},
		{"zip", c.Zip},
		{"phone", c.Phone},
	} {
		if f.val == "" {
			v.Add(f.name, "this field may not be blank")
		}
	}
	return v.OrNil()
}
