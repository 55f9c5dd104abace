package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pawpal/internal/domain/tasks"
)

type taskRepo struct {
	mu      sync.RWMutex
	byID    map[string]tasks.Task
	nextSeq map[string]int64 // contador de inserción por owner
}

func NewTaskRepo() tasks.Repository {
	return &taskRepo{
		byID:    make(map[string]tasks.Task),
		nextSeq: make(map[string]int64),
	}
}

func (r *taskRepo) Create(ctx context.Context, t tasks.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("task id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("task already exists")
	}
	r.byID[t.ID] = cloneTask(t)
	return nil
}

func (r *taskRepo) Update(ctx context.Context, t tasks.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("task id required")
	}
	if _, exists := r.byID[t.ID]; !exists {
		return ErrNotFound
	}
	r.byID[t.ID] = cloneTask(t)
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return tasks.Task{}, ErrNotFound
	}
	return cloneTask(t), nil
}

func (r *taskRepo) ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tasks.Task, 0)
	for _, t := range r.byID {
		if t.OwnerID == ownerID {
			out = append(out, cloneTask(t))
		}
	}
	sortBySeq(out)
	return out, nil
}

func (r *taskRepo) ListByPet(ctx context.Context, petID string) ([]tasks.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tasks.Task, 0)
	for _, t := range r.byID {
		if t.PetID == petID {
			out = append(out, cloneTask(t))
		}
	}
	sortBySeq(out)
	return out, nil
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *taskRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.byID {
		if t.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *taskRepo) NextSeq(ctx context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq[ownerID]++
	return r.nextSeq[ownerID], nil
}

func sortBySeq(items []tasks.Task) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Seq < items[j].Seq
	})
}

// cloneTask copia los punteros mutables (hora fija, última completación)
// para que el estado guardado no se comparta por referencia.
func cloneTask(t tasks.Task) tasks.Task {
	if t.ScheduledAt != nil {
		at := *t.ScheduledAt
		t.ScheduledAt = &at
	}
	if t.LastCompletedAt != nil {
		ts := *t.LastCompletedAt
		t.LastCompletedAt = &ts
	}
	return t
}
