package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pawpal/internal/domain/tasks"
)

type TasksRepo struct {
	db *sql.DB
}

func NewTasksRepo(db *sql.DB) *TasksRepo {
	return &TasksRepo{db: db}
}

func (r *TasksRepo) Create(ctx context.Context, t tasks.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, owner_id, pet_id, name, category,
			duration_minutes, priority, required,
			scheduled_minute, recurrence,
			completed, last_completed_at, seq,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		t.ID,
		t.OwnerID,
		toNullString(t.PetID),
		t.Name,
		t.Category,
		t.DurationMinutes,
		t.Priority,
		t.Required,
		toNullMinute(t.ScheduledAt),
		t.Recurrence,
		t.Completed,
		toNullTime(t.LastCompletedAt),
		t.Seq,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TasksRepo) Update(ctx context.Context, t tasks.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET
			name = $2,
			category = $3,
			duration_minutes = $4,
			priority = $5,
			required = $6,
			scheduled_minute = $7,
			recurrence = $8,
			completed = $9,
			last_completed_at = $10,
			updated_at = $11
		WHERE id = $1
	`,
		t.ID,
		t.Name,
		t.Category,
		t.DurationMinutes,
		t.Priority,
		t.Required,
		toNullMinute(t.ScheduledAt),
		t.Recurrence,
		t.Completed,
		toNullTime(t.LastCompletedAt),
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TasksRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return tasks.Task{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, pet_id, name, category, duration_minutes, priority,
		       required, scheduled_minute, recurrence, completed, last_completed_at,
		       seq, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return tasks.Task{}, ErrNotFound
	}
	return t, err
}

func (r *TasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	return r.list(ctx, `
		SELECT id, owner_id, pet_id, name, category, duration_minutes, priority,
		       required, scheduled_minute, recurrence, completed, last_completed_at,
		       seq, created_at, updated_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY seq ASC
	`, ownerID)
}

func (r *TasksRepo) ListByPet(ctx context.Context, petID string) ([]tasks.Task, error) {
	return r.list(ctx, `
		SELECT id, owner_id, pet_id, name, category, duration_minutes, priority,
		       required, scheduled_minute, recurrence, completed, last_completed_at,
		       seq, created_at, updated_at
		FROM tasks
		WHERE pet_id = $1
		ORDER BY seq ASC
	`, petID)
}

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TasksRepo) DeleteByPet(ctx context.Context, petID string) error {
	// Sin chequeo de filas: una mascota sin tareas también se puede dar de baja.
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE pet_id = $1`, petID)
	return err
}

// NextSeq reserva el siguiente número de inserción del owner.
// MAX+1 alcanza: herramienta de un solo usuario, sin escrituras concurrentes.
func (r *TasksRepo) NextSeq(ctx context.Context, ownerID string) (int64, error) {
	var seq int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) + 1 FROM tasks WHERE owner_id = $1
	`, ownerID).Scan(&seq)
	return seq, err
}

func (r *TasksRepo) list(ctx context.Context, query string, arg any) ([]tasks.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tasks.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTask(row rowScanner) (tasks.Task, error) {
	var (
		t             tasks.Task
		petID         sql.NullString
		schedMinute   sql.NullInt64
		lastCompleted sql.NullTime
	)
	if err := row.Scan(
		&t.ID, &t.OwnerID, &petID, &t.Name, &t.Category, &t.DurationMinutes,
		&t.Priority, &t.Required, &schedMinute, &t.Recurrence, &t.Completed,
		&lastCompleted, &t.Seq, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return tasks.Task{}, err
	}
	if petID.Valid {
		t.PetID = petID.String
	}
	if schedMinute.Valid {
		at := tasks.TimeOfDay{
			Hour:   int(schedMinute.Int64) / 60,
			Minute: int(schedMinute.Int64) % 60,
		}
		t.ScheduledAt = &at
	}
	if lastCompleted.Valid {
		ts := lastCompleted.Time
		t.LastCompletedAt = &ts
	}
	return t, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullMinute(at *tasks.TimeOfDay) sql.NullInt64 {
	if at == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(at.Minutes()), Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
