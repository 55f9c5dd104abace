package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pawpal/internal/domain/carelog"
)

type CareLogRepo struct {
	db *sql.DB
}

func NewCareLogRepo(db *sql.DB) *CareLogRepo {
	return &CareLogRepo{db: db}
}

func (r *CareLogRepo) Create(ctx context.Context, e carelog.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_log (
			id, pet_id, task_id, type, title, notes,
			occurred_at, recorded_at, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		e.PetID,
		toNullString(e.TaskID),
		e.Type,
		e.Title,
		e.Notes,
		e.OccurredAt,
		e.RecordedAt,
		e.Status,
	)
	return err
}

func (r *CareLogRepo) GetByID(ctx context.Context, id string) (carelog.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return carelog.Entry{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, task_id, type, title, notes, occurred_at, recorded_at, status
		FROM care_log
		WHERE id = $1
	`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return carelog.Entry{}, ErrNotFound
	}
	return e, err
}

func (r *CareLogRepo) ListByPet(ctx context.Context, petID string, filter carelog.ListFilter) ([]carelog.Entry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT id, pet_id, task_id, type, title, notes, occurred_at, recorded_at, status
		FROM care_log
		WHERE pet_id = $1
	`)
	args := []any{petID}

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			args = append(args, string(t))
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		query.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", len(args)))
	}

	args = append(args, limit)
	query.WriteString(fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d", len(args)))

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]carelog.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CareLogRepo) Void(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE care_log SET status = $2 WHERE id = $1
	`, id, carelog.EntryStatusVoided)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEntry(row rowScanner) (carelog.Entry, error) {
	var (
		e      carelog.Entry
		taskID sql.NullString
	)
	if err := row.Scan(&e.ID, &e.PetID, &taskID, &e.Type, &e.Title, &e.Notes, &e.OccurredAt, &e.RecordedAt, &e.Status); err != nil {
		return carelog.Entry{}, err
	}
	if taskID.Valid {
		e.TaskID = taskID.String
	}
	return e, nil
}
