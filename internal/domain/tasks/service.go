package tasks

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawpal/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPriority: prioridad fuera de [1,5]. Se rechaza al asignar,
	// nunca queda almacenada.
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")

	// ErrUnknownPet: pet_id no resuelve a una mascota conocida.
	ErrUnknownPet = errors.New("unknown pet")

	// ErrOwnershipViolation: la mascota referenciada pertenece a otro owner.
	ErrOwnershipViolation = errors.New("pet belongs to a different owner")
)

// OwnerDirectory evita importar el módulo owners (mismo truco que OwnerOf en pets).
type OwnerDirectory interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}

// PetDirectory resuelve el owner de una mascota para validar pet_id al insertar.
type PetDirectory interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

// CompletionLog recibe la tarea completada para dejar rastro en el historial
// de cuidados. Puede ser nil (modo sin historial).
type CompletionLog interface {
	TaskCompleted(ctx context.Context, t Task) error
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	pets   PetDirectory
	care   CompletionLog
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory, pets PetDirectory, care CompletionLog, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		pets:   pets,
		care:   care,
		log:    log,
		now:    time.Now,
	}
}

type CreateInput struct {
	PetID           string
	Name            string
	Category        Category
	DurationMinutes int
	Priority        int
	Required        bool
	ScheduledAt     *TimeOfDay
	Recurrence      Recurrence
}

// Create valida y almacena una tarea. Toda violación de integridad referencial
// se rechaza aquí, de forma síncrona; el planner nunca descubre referencias rotas.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Task, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Task{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Task{}, ErrInvalidInput
	}
	if in.DurationMinutes <= 0 {
		return Task{}, ErrInvalidInput
	}
	if in.Priority < 1 || in.Priority > 5 {
		return Task{}, ErrInvalidPriority
	}

	cat := in.Category
	if cat == "" {
		cat = CategoryOther
	}
	if !ValidCategory(cat) {
		return Task{}, ErrInvalidInput
	}

	rec := in.Recurrence
	if rec == "" {
		rec = RecurrenceNone
	}
	if !ValidRecurrence(rec) {
		return Task{}, ErrInvalidInput
	}

	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return Task{}, err
	}
	if !ok {
		return Task{}, ErrInvalidInput
	}

	petID := strings.TrimSpace(in.PetID)
	if petID != "" {
		petOwner, err := s.pets.OwnerOf(ctx, petID)
		if err != nil {
			return Task{}, ErrUnknownPet
		}
		if petOwner != ownerID {
			return Task{}, ErrOwnershipViolation
		}
	}

	seq, err := s.repo.NextSeq(ctx, ownerID)
	if err != nil {
		return Task{}, err
	}

	now := s.now()
	t := Task{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		PetID:           petID,
		Name:            strings.TrimSpace(in.Name),
		Category:        cat,
		DurationMinutes: in.DurationMinutes,
		Priority:        in.Priority,
		Required:        in.Required,
		ScheduledAt:     in.ScheduledAt,
		Recurrence:      rec,
		Seq:             seq,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Task, error) {
	return s.repo.ListByPet(ctx, petID)
}

// ListByPetRequired filtra las tareas de la mascota por su flag required.
// Se recalcula en cada llamada (el set de tareas puede cambiar entre llamadas).
func (s *Service) ListByPetRequired(ctx context.Context, petID string, required bool) ([]Task, error) {
	all, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	out := make([]Task, 0, len(all))
	for _, t := range all {
		if t.Required == required {
			out = append(out, t)
		}
	}
	return out, nil
}

// Delete elimina la tarea. Es el camino de recuperación cuando la carga
// requerida no entra en el presupuesto: quitar una requerida y reintentar.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// SetPriority actualiza la prioridad en sitio; fuera de [1,5] no toca nada.
func (s *Service) SetPriority(ctx context.Context, id string, priority int) (Task, error) {
	if priority < 1 || priority > 5 {
		return Task{}, ErrInvalidPriority
	}
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	t.Priority = priority
	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Complete marca la tarea como hecha y deja constancia en el historial de
// cuidados cuando la tarea nombra una mascota. La repetición (recurrence) no
// se toca aquí: eso es del rollover.
//
// La completación ya quedó persistida cuando se escribe el historial: un
// fallo del historial se registra y no revierte ni falla la completación.
func (s *Service) Complete(ctx context.Context, id string) (Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	now := s.now()
	t.Completed = true
	t.LastCompletedAt = &now
	t.UpdatedAt = now
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	if s.care != nil && t.PetID != "" {
		if err := s.care.TaskCompleted(ctx, t); err != nil && s.log != nil {
			s.log.Error("complete: care log append failed", map[string]any{
				"task_id": t.ID,
				"pet_id":  t.PetID,
				"err":     err.Error(),
			})
		}
	}
	return t, nil
}

func (s *Service) Reopen(ctx context.Context, id string) (Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	t.Completed = false
	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}
