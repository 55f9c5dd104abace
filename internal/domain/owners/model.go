package owners

import "time"

// Owner es la raíz del agregado: es dueño exclusivo de sus mascotas y de las
// tareas a nivel de owner (única fuente de verdad, no hay listas paralelas).
type Owner struct {
	ID   string
	Name string

	// AvailableMinutes es el presupuesto de tiempo de hoy, en minutos.
	AvailableMinutes int

	// Preferences son pistas ("focus_health", "preferred_time_of_day").
	// Solo ajustan desempates del plan, nunca pisan restricciones duras.
	Preferences map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}
