package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; ok {
		return ErrDuplicatePet
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errors.New("not found")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errors.New("not found")
	}
	return p, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByOwner(_ context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type testOwnerDir struct{ known map[string]bool }

func (d *testOwnerDir) Exists(_ context.Context, ownerID string) (bool, error) {
	return d.known[ownerID], nil
}

type testTaskPurger struct{ purged []string }

func (p *testTaskPurger) DeleteByPet(_ context.Context, petID string) error {
	p.purged = append(p.purged, petID)
	return nil
}

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo, &testOwnerDir{known: map[string]bool{"owner-1": true}}, &testTaskPurger{})
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_DefaultsAndTrim(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:         "  Max  ",
		Age:          3,
		SpecialNeeds: []string{" hip dysplasia ", "  "},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Name != "Max" {
		t.Fatalf("name = %q, want Max", p.Name)
	}
	if p.Species != SpeciesOther {
		t.Fatalf("species = %q, want %q as default", p.Species, SpeciesOther)
	}
	if len(p.SpecialNeeds) != 1 || p.SpecialNeeds[0] != "hip dysplasia" {
		t.Fatalf("special needs = %v", p.SpecialNeeds)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreate_UnknownOwner(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.Create(context.Background(), "ghost", CreateInput{Name: "Max", Species: "dog"})
	if !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("err = %v, want ErrUnknownOwner", err)
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{ID: "pet-1", Name: "Max", Species: "dog"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	_, err := svc.Create(context.Background(), "owner-1", CreateInput{ID: "pet-1", Name: "Otro", Species: "cat"})
	if !errors.Is(err, ErrDuplicatePet) {
		t.Fatalf("err = %v, want ErrDuplicatePet", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newTestService(newTestRepo())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"blank name", CreateInput{Name: "   ", Species: "dog"}},
		{"negative age", CreateInput{Name: "Max", Species: "dog", Age: -1}},
		{"bad species", CreateInput{Name: "Max", Species: "dinosaur"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "owner-1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAddSpecialNeed_DedupesCaseInsensitive(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:         "Max",
		Species:      "dog",
		SpecialNeeds: []string{"arthritis"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.AddSpecialNeed(context.Background(), p.ID, "  Arthritis ")
	if err != nil {
		t.Fatalf("AddSpecialNeed error: %v", err)
	}
	if len(updated.SpecialNeeds) != 1 {
		t.Fatalf("expected dedupe, got %v", updated.SpecialNeeds)
	}

	updated, err = svc.AddSpecialNeed(context.Background(), p.ID, "grain-free diet")
	if err != nil {
		t.Fatalf("AddSpecialNeed error: %v", err)
	}
	if len(updated.SpecialNeeds) != 2 {
		t.Fatalf("expected new need appended, got %v", updated.SpecialNeeds)
	}
}

func TestDelete_PurgesTasksBeforeRemovingPet(t *testing.T) {
	repo := newTestRepo()
	purger := &testTaskPurger{}
	svc := NewService(repo, &testOwnerDir{known: map[string]bool{"owner-1": true}}, purger)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Max", Species: "dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok := repo.byID[p.ID]; ok {
		t.Fatalf("expected pet removed from storage")
	}
	if len(purger.purged) != 1 || purger.purged[0] != p.ID {
		t.Fatalf("purged pets = %v, want [%s]", purger.purged, p.ID)
	}

	if err := svc.Delete(context.Background(), p.ID); err == nil {
		t.Fatalf("expected error deleting a removed pet")
	}
	if err := svc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank id: err = %v, want ErrInvalidInput", err)
	}
}

func TestOwnerOf(t *testing.T) {
	svc := newTestService(newTestRepo())

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Max", Species: "dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	owner, err := svc.OwnerOf(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("OwnerOf error: %v", err)
	}
	if owner != "owner-1" {
		t.Fatalf("owner = %q, want owner-1", owner)
	}

	if _, err := svc.OwnerOf(context.Background(), "ghost"); err == nil {
		t.Fatalf("expected error for unknown pet")
	}
}
