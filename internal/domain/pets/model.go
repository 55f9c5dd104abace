package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, bird, rabbit, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	default:
		return false
	}
}

// Pet representa una mascota registrada bajo un único owner.
// Las tareas asociadas no viven aquí: se consultan por id en el módulo tasks
// (almacenamiento estilo arena, sin grafo cíclico de ownership).
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species Species
	Age     int

	// SpecialNeeds es informativo: condiciona qué tareas crea el owner,
	// no la lógica de planificación.
	SpecialNeeds []string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
