package tasks

import "context"

type Repository interface {
	Create(ctx context.Context, t Task) error
	Update(ctx context.Context, t Task) error
	GetByID(ctx context.Context, id string) (Task, error)

	// ListByOwner devuelve todas las tareas del owner (nivel owner y por mascota),
	// ordenadas por Seq asc.
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)

	// ListByPet devuelve las tareas asociadas a la mascota, ordenadas por Seq asc.
	ListByPet(ctx context.Context, petID string) ([]Task, error)

	// Delete elimina la tarea definitivamente.
	Delete(ctx context.Context, id string) error

	// DeleteByPet elimina todas las tareas de la mascota (al darla de baja).
	DeleteByPet(ctx context.Context, petID string) error

	// NextSeq reserva el siguiente número de inserción para el owner.
	NextSeq(ctx context.Context, ownerID string) (int64, error)
}
