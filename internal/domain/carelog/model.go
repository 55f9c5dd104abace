package carelog

import "time"

// Entry es un registro append-only de una actividad de cuidado realizada.
// No se borra: se anula (voided) y queda el rastro.
type Entry struct {
	ID    string
	PetID string

	// TaskID enlaza con la tarea que originó el registro; vacío si la
	// entrada se creó a mano.
	TaskID string

	Type EntryType

	Title string
	Notes string

	OccurredAt time.Time
	RecordedAt time.Time

	Status EntryStatus
}
