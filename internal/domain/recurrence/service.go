package recurrence

import (
	"context"
	"time"

	"pawpal/internal/domain/owners"
	"pawpal/internal/domain/tasks"
	"pawpal/internal/platform/logger"
)

// OwnerLister y TaskStore son lo mínimo que necesita el rollover; los
// services de owners/tasks los implementan y el router los inyecta.
type OwnerLister interface {
	List(ctx context.Context) ([]owners.Owner, error)
}

type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error)
	Reopen(ctx context.Context, id string) (tasks.Task, error)
}

// Service reabre las tareas recurrentes vencidas. Es el colaborador externo
// al planner: consume el tag de recurrencia después de completar; el planner
// nunca crea ni muta estado de recurrencia.
type Service struct {
	owners OwnerLister
	tasks  TaskStore
	log    logger.Logger
	now    func() time.Time
}

func NewService(ownerSrc OwnerLister, taskSrc TaskStore, log logger.Logger) *Service {
	return &Service{
		owners: ownerSrc,
		tasks:  taskSrc,
		log:    log,
		now:    time.Now,
	}
}

// NextDue calcula cuándo vuelve a tocar una tarea completada.
// daily  => la medianoche siguiente a la completación
// weekly => 7 días después de la completación
// none   => nunca (ok=false)
func NextDue(rec tasks.Recurrence, completedAt time.Time) (time.Time, bool) {
	switch rec {
	case tasks.RecurrenceDaily:
		y, m, d := completedAt.Date()
		midnight := time.Date(y, m, d, 0, 0, 0, 0, completedAt.Location())
		return midnight.AddDate(0, 0, 1), true
	case tasks.RecurrenceWeekly:
		return completedAt.AddDate(0, 0, 7), true
	default:
		return time.Time{}, false
	}
}

// Rollover recorre todos los owners y reabre cada tarea recurrente
// completada cuya próxima ocurrencia ya venció. Un fallo individual no
// corta la pasada: se registra y se sigue.
func (s *Service) Rollover(ctx context.Context) error {
	now := s.now()

	all, err := s.owners.List(ctx)
	if err != nil {
		return err
	}

	reopened := 0
	for _, o := range all {
		list, err := s.tasks.ListByOwner(ctx, o.ID)
		if err != nil {
			s.log.Error("rollover: list tasks failed", map[string]any{
				"owner_id": o.ID,
				"err":      err.Error(),
			})
			continue
		}

		for _, t := range list {
			if !t.Completed || t.LastCompletedAt == nil {
				continue
			}
			next, ok := NextDue(t.Recurrence, *t.LastCompletedAt)
			if !ok || now.Before(next) {
				continue
			}
			if _, err := s.tasks.Reopen(ctx, t.ID); err != nil {
				s.log.Error("rollover: reopen failed", map[string]any{
					"task_id": t.ID,
					"err":     err.Error(),
				})
				continue
			}
			reopened++
		}
	}

	if reopened > 0 {
		s.log.Info("rollover done", map[string]any{"reopened": reopened})
	}
	return nil
}
