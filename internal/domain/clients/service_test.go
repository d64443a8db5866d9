package clients

import (
	"context"
	"errors"
	"testing"

	"vet-clinic/internal/domain/apperr"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Client
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Client{}}
}

func (r *testRepo) Create(_ context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; ok {
		return &apperr.ConflictError{Fields: []string{"id"}}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(_ context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(context.Context, ListFilter) ([]Client, error) {
	out := make([]Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func ptr(s string) *string { return &s }

func full() Patch {
	return Patch{
		Name:         ptr("  Alice "),
		AddressLine1: ptr("1 Main St"),
		City:         ptr("Springfield"),
		State:        ptr("IL"),
		Zip:          ptr("62701"),
		Phone:        ptr("555-0100"),
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_TrimsAndStores(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), full())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	if _, ok := repo.byID[c.ID]; !ok {
		t.Fatalf("expected client stored")
	}
}

func TestCreate_BlankRequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())
	p := full()
	p.City = ptr("   ")
	p.Phone = nil

	_, err := svc.Create(context.Background(), p)
	var v *apperr.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(v.Fields) != 2 || v.Fields[0].Field != "city" || v.Fields[1].Field != "phone" {
		t.Fatalf("expected city then phone, got %+v", v.Fields)
	}
}

func TestUpdate_PatchKeepsOmitted(t *testing.T) {
	svc := NewService(newTestRepo())
	c, err := svc.Create(context.Background(), full())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(context.Background(), c.ID, Patch{Email: ptr("alice@example.com")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Email != "alice@example.com" || got.City != "Springfield" {
		t.Fatalf("unexpected patch result %+v", got)
	}

	_, err = svc.Update(context.Background(), "missing", Patch{})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
