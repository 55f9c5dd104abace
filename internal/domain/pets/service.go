package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicatePet: ya hay una mascota registrada con ese id.
	ErrDuplicatePet = errors.New("pet already registered")

	// ErrUnknownOwner: el owner indicado no existe.
	ErrUnknownOwner = errors.New("unknown owner")
)

// OwnerDirectory evita el ciclo de imports pets <-> owners: el service de
// owners lo implementa y el router lo inyecta.
type OwnerDirectory interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}

// TaskPurger borra las tareas de la mascota al darla de baja, para que el
// suministro del planner no quede con referencias rotas. Lo implementa el
// repo de tasks; el router lo inyecta.
type TaskPurger interface {
	DeleteByPet(ctx context.Context, petID string) error
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	tasks  TaskPurger
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory, tasks TaskPurger) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		tasks:  tasks,
		now:    time.Now,
	}
}

type CreateInput struct {
	// ID opcional: si viene vacío se genera uno. Permitir id explícito hace
	// detectable el registro duplicado desde fuera.
	ID           string
	Name         string
	Species      string
	Age          int
	SpecialNeeds []string
	Notes        string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}

	sp := Species(strings.TrimSpace(in.Species))
	if sp == "" {
		sp = SpeciesOther
	}
	if !ValidSpecies(sp) {
		return Pet{}, ErrInvalidInput
	}

	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		return Pet{}, ErrUnknownOwner
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	needs := make([]string, 0, len(in.SpecialNeeds))
	for _, n := range in.SpecialNeeds {
		if v := strings.TrimSpace(n); v != "" {
			needs = append(needs, v)
		}
	}

	now := s.now()
	p := Pet{
		ID:           id,
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(in.Name),
		Species:      sp,
		Age:          in.Age,
		SpecialNeeds: needs,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete da de baja a la mascota y borra todas sus tareas: primero las
// tareas, después la mascota, así nunca queda una tarea apuntando a una
// mascota inexistente.
func (s *Service) Delete(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, petID); err != nil {
		return err
	}
	if s.tasks != nil {
		if err := s.tasks.DeleteByPet(ctx, petID); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, petID)
}

// AddSpecialNeed agrega una necesidad especial si no estaba ya.
func (s *Service) AddSpecialNeed(ctx context.Context, petID, need string) (Pet, error) {
	need = strings.TrimSpace(need)
	if need == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	for _, n := range p.SpecialNeeds {
		if strings.EqualFold(n, need) {
			return p, nil
		}
	}

	p.SpecialNeeds = append(p.SpecialNeeds, need)
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
