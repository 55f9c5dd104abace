package owners

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los repos cuando el owner no existe.
// Permite distinguir "no existe" de un fallo real de almacenamiento.
var ErrNotFound = errors.New("owner not found")

type Repository interface {
	Create(ctx context.Context, o Owner) error
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id string) (Owner, error)

	// List devuelve todos los owners (lo usa el rollover de recurrencia).
	List(ctx context.Context) ([]Owner, error)
}
