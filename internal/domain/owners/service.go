package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawpal/internal/domain/pets"
	"pawpal/internal/domain/tasks"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// PetLister y TaskLister son las fuentes para armar el camino único de
// suministro del planner (AllTasks). Los repos de pets/tasks los implementan;
// el router los inyecta, así owners no depende de adapters.
type PetLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error)
}

type TaskLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error)
}

type Service struct {
	repo  Repository
	pets  PetLister
	tasks TaskLister
	now   func() time.Time
}

func NewService(repo Repository, petSrc PetLister, taskSrc TaskLister) *Service {
	return &Service{
		repo:  repo,
		pets:  petSrc,
		tasks: taskSrc,
		now:   time.Now,
	}
}

type CreateInput struct {
	Name             string
	AvailableMinutes int
	Preferences      map[string]string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Owner{}, ErrInvalidInput
	}
	if in.AvailableMinutes < 0 {
		return Owner{}, ErrInvalidInput
	}

	prefs := map[string]string{}
	for k, v := range in.Preferences {
		if strings.TrimSpace(k) == "" {
			continue
		}
		prefs[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	now := s.now()
	o := Owner{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(in.Name),
		AvailableMinutes: in.AvailableMinutes,
		Preferences:      prefs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

// Exists lo consumen pets/tasks vía sus directorios locales.
// Solo ErrNotFound cuenta como "no existe"; un fallo de lookup se propaga
// para que no se disfrace de owner desconocido.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) UpdateBudget(ctx context.Context, id string, minutes int) (Owner, error) {
	if minutes < 0 {
		return Owner{}, ErrInvalidInput
	}
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	o.AvailableMinutes = minutes
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// UpdatePreferences hace merge (no reemplazo): valor vacío borra la clave.
func (s *Service) UpdatePreferences(ctx context.Context, id string, prefs map[string]string) (Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	if o.Preferences == nil {
		o.Preferences = map[string]string{}
	}
	for k, v := range prefs {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if strings.TrimSpace(v) == "" {
			delete(o.Preferences, k)
			continue
		}
		o.Preferences[k] = strings.TrimSpace(v)
	}
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// AllTasks es el único camino de suministro que consume el planner.
// Orden determinista: primero las tareas a nivel de owner (orden de
// inserción), después las de cada mascota en orden de registro de la
// mascota, y dentro de cada mascota en orden de inserción.
func (s *Service) AllTasks(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	if _, err := s.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	petList, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	byPet := make(map[string][]tasks.Task, len(petList))
	out := make([]tasks.Task, 0, len(all))

	// all viene por Seq asc, así cada tramo conserva el orden de inserción.
	for _, t := range all {
		if t.PetID == "" {
			out = append(out, t)
			continue
		}
		byPet[t.PetID] = append(byPet[t.PetID], t)
	}
	for _, p := range petList {
		out = append(out, byPet[p.ID]...)
	}

	return out, nil
}
