package planner

import (
	"context"
	"time"

	"pawpal/internal/domain/owners"
)

// Service carga el snapshot del owner y delega en BuildPlan. No guarda
// estado entre llamadas: mismo owner sin mutar => plan idéntico.
type Service struct {
	owners *owners.Service
	now    func() time.Time
}

func NewService(ownersSvc *owners.Service) *Service {
	return &Service{
		owners: ownersSvc,
		now:    time.Now,
	}
}

func (s *Service) GenerateDailyPlan(ctx context.Context, ownerID string) (DailyPlan, error) {
	o, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return DailyPlan{}, err
	}

	supply, err := s.owners.AllTasks(ctx, ownerID)
	if err != nil {
		return DailyPlan{}, err
	}

	plan, err := BuildPlan(o, supply)
	if err != nil {
		return DailyPlan{}, err
	}
	plan.GeneratedAt = s.now()
	return plan, nil
}
