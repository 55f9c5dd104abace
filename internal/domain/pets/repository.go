package pets

import "context"

type Repository interface {
	// Create falla si ya existe una mascota con el mismo id (DuplicatePet
	// se detecta aquí, al registrar, no al planificar).
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// Delete da de baja a la mascota definitivamente.
	Delete(ctx context.Context, id string) error

	// ListByOwner devuelve las mascotas en orden de registro (CreatedAt asc).
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
}
