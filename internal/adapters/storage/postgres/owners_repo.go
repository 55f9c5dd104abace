package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pawpal/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	prefs, err := marshalPrefs(o.Preferences)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO owners (
			id, name, available_minutes, preferences,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		o.ID,
		o.Name,
		o.AvailableMinutes,
		prefs,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	prefs, err := marshalPrefs(o.Preferences)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			name = $2,
			available_minutes = $3,
			preferences = $4,
			updated_at = $5
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		o.AvailableMinutes,
		prefs,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, owners.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, available_minutes, preferences, created_at, updated_at
		FROM owners
		WHERE id = $1
	`, id)

	o, err := scanOwner(row)
	if err == sql.ErrNoRows {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, err
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, available_minutes, preferences, created_at, updated_at
		FROM owners
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(row rowScanner) (owners.Owner, error) {
	var (
		o     owners.Owner
		prefs []byte
	)
	if err := row.Scan(&o.ID, &o.Name, &o.AvailableMinutes, &prefs, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return owners.Owner{}, err
	}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &o.Preferences); err != nil {
			return owners.Owner{}, err
		}
	}
	if o.Preferences == nil {
		o.Preferences = map[string]string{}
	}
	return o, nil
}

func marshalPrefs(prefs map[string]string) ([]byte, error) {
	if prefs == nil {
		prefs = map[string]string{}
	}
	return json.Marshal(prefs)
}
