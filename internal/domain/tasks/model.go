package tasks

import "time"

// Task representa una actividad de cuidado de mascota planificable.
type Task struct {
	ID      string
	OwnerID string

	// PetID vacío => tarea a nivel de owner (aplica sin importar la mascota).
	PetID string

	Name     string
	Category Category

	DurationMinutes int
	Priority        int // 1-5, 5 = más alta
	Required        bool

	// ScheduledAt nil => flotante (cualquier hora del día).
	ScheduledAt *TimeOfDay

	Recurrence Recurrence

	Completed       bool
	LastCompletedAt *time.Time

	// Seq es el contador de inserción por owner. Los repos listan por Seq asc,
	// así el orden de inserción sobrevive al almacenamiento.
	Seq int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fixed indica si la tarea tiene hora fija.
func (t Task) Fixed() bool {
	return t.ScheduledAt != nil
}
