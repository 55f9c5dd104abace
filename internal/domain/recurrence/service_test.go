package recurrence

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawpal/internal/domain/owners"
	"pawpal/internal/domain/tasks"
	"pawpal/internal/platform/logger"
)

func TestNextDue(t *testing.T) {
	completed := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	next, ok := NextDue(tasks.RecurrenceDaily, completed)
	if !ok {
		t.Fatalf("daily must recur")
	}
	if want := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC); !next.Equal(want) {
		t.Fatalf("daily next = %v, want %v", next, want)
	}

	next, ok = NextDue(tasks.RecurrenceWeekly, completed)
	if !ok {
		t.Fatalf("weekly must recur")
	}
	if want := completed.AddDate(0, 0, 7); !next.Equal(want) {
		t.Fatalf("weekly next = %v, want %v", next, want)
	}

	if _, ok := NextDue(tasks.RecurrenceNone, completed); ok {
		t.Fatalf("none must never recur")
	}
}

type testOwnerLister struct{ owners []owners.Owner }

func (l *testOwnerLister) List(_ context.Context) ([]owners.Owner, error) {
	return l.owners, nil
}

type testTaskStore struct {
	byOwner  map[string][]tasks.Task
	reopened []string
	failOn   string
}

func (s *testTaskStore) ListByOwner(_ context.Context, ownerID string) ([]tasks.Task, error) {
	return s.byOwner[ownerID], nil
}

func (s *testTaskStore) Reopen(_ context.Context, id string) (tasks.Task, error) {
	if id == s.failOn {
		return tasks.Task{}, errors.New("boom")
	}
	s.reopened = append(s.reopened, id)
	return tasks.Task{ID: id}, nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func completedAt(ts time.Time) *time.Time { return &ts }

func TestRollover_ReopensOnlyDueTasks(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	store := &testTaskStore{byOwner: map[string][]tasks.Task{
		"owner-1": {
			// Diaria completada anteayer: vencida, se reabre.
			{ID: "due-daily", Completed: true, Recurrence: tasks.RecurrenceDaily,
				LastCompletedAt: completedAt(now.AddDate(0, 0, -2))},
			// Diaria completada hoy mismo: vence a medianoche, todavía no.
			{ID: "fresh-daily", Completed: true, Recurrence: tasks.RecurrenceDaily,
				LastCompletedAt: completedAt(now)},
			// Semanal completada hace 3 días: no toca.
			{ID: "fresh-weekly", Completed: true, Recurrence: tasks.RecurrenceWeekly,
				LastCompletedAt: completedAt(now.AddDate(0, 0, -3))},
			// Sin recurrencia: nunca se reabre.
			{ID: "one-off", Completed: true, Recurrence: tasks.RecurrenceNone,
				LastCompletedAt: completedAt(now.AddDate(0, 0, -5))},
			// Pendiente: no hay nada que reabrir.
			{ID: "open", Completed: false, Recurrence: tasks.RecurrenceDaily},
		},
		"owner-2": {
			// Semanal completada hace 8 días: vencida.
			{ID: "due-weekly", Completed: true, Recurrence: tasks.RecurrenceWeekly,
				LastCompletedAt: completedAt(now.AddDate(0, 0, -8))},
		},
	}}

	svc := NewService(&testOwnerLister{owners: []owners.Owner{
		{ID: "owner-1"}, {ID: "owner-2"},
	}}, store, testLogger())
	svc.now = func() time.Time { return now }

	if err := svc.Rollover(context.Background()); err != nil {
		t.Fatalf("Rollover error: %v", err)
	}

	want := map[string]bool{"due-daily": true, "due-weekly": true}
	if len(store.reopened) != len(want) {
		t.Fatalf("reopened = %v, want exactly %v", store.reopened, want)
	}
	for _, id := range store.reopened {
		if !want[id] {
			t.Fatalf("unexpected reopen of %q", id)
		}
	}
}

func TestRollover_FailureDoesNotHaltThePass(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	store := &testTaskStore{
		failOn: "broken",
		byOwner: map[string][]tasks.Task{
			"owner-1": {
				{ID: "broken", Completed: true, Recurrence: tasks.RecurrenceDaily,
					LastCompletedAt: completedAt(now.AddDate(0, 0, -2))},
				{ID: "fine", Completed: true, Recurrence: tasks.RecurrenceDaily,
					LastCompletedAt: completedAt(now.AddDate(0, 0, -2))},
			},
		},
	}

	svc := NewService(&testOwnerLister{owners: []owners.Owner{{ID: "owner-1"}}}, store, testLogger())
	svc.now = func() time.Time { return now }

	if err := svc.Rollover(context.Background()); err != nil {
		t.Fatalf("Rollover error: %v", err)
	}
	if len(store.reopened) != 1 || store.reopened[0] != "fine" {
		t.Fatalf("reopened = %v, want [fine]", store.reopened)
	}
}
