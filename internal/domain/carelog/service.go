package carelog

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawpal/internal/domain/tasks"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound: la entrada no existe bajo la mascota indicada.
	ErrNotFound = errors.New("entry not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	TaskID     string
	Type       EntryType
	Title      string
	Notes      string
	OccurredAt time.Time
}

func (s *Service) Record(ctx context.Context, petID string, in RecordInput) (Entry, error) {
	if strings.TrimSpace(petID) == "" {
		return Entry{}, ErrInvalidInput
	}
	if in.Type == "" {
		in.Type = EntryTypeOther
	}
	if !ValidEntryType(in.Type) {
		return Entry{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return Entry{}, ErrInvalidInput
	}

	now := s.now()
	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}

	e := Entry{
		ID:         uuid.NewString(),
		PetID:      petID,
		TaskID:     strings.TrimSpace(in.TaskID),
		Type:       in.Type,
		Title:      strings.TrimSpace(in.Title),
		Notes:      strings.TrimSpace(in.Notes),
		OccurredAt: occurred,
		RecordedAt: now,
		Status:     EntryStatusActive,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// TaskCompleted implementa tasks.CompletionLog: al completar una tarea con
// mascota, queda una entrada en su historial de cuidados.
func (s *Service) TaskCompleted(ctx context.Context, t tasks.Task) error {
	occurred := s.now()
	if t.LastCompletedAt != nil {
		occurred = *t.LastCompletedAt
	}
	_, err := s.Record(ctx, t.PetID, RecordInput{
		TaskID:     t.ID,
		Type:       EntryType(t.Category),
		Title:      t.Name,
		OccurredAt: occurred,
	})
	return err
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	return s.repo.ListByPet(ctx, petID, filter)
}

// Void anula la entrada (no se borra). La entrada debe pertenecer a la
// mascota indicada: no se puede anular por el path de otra mascota.
func (s *Service) Void(ctx context.Context, petID, id string) (Entry, error) {
	id = strings.TrimSpace(id)
	if strings.TrimSpace(petID) == "" || id == "" {
		return Entry{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if e.PetID != petID {
		return Entry{}, ErrNotFound
	}

	if err := s.repo.Void(ctx, id); err != nil {
		return Entry{}, err
	}
	return s.repo.GetByID(ctx, id)
}
