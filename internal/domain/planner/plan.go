package planner

import (
	"fmt"
	"sort"
	"time"

	"pawpal/internal/domain/owners"
	"pawpal/internal/domain/tasks"
)

// SkipReason explica por qué una tarea opcional quedó fuera del plan.
type SkipReason string

const (
	// ReasonTimeConflict: otra tarea (de mayor prioridad) ya ocupa exactamente
	// la misma hora fija. Solo se detecta colisión de minuto idéntico; el
	// solape de intervalos con horas distintas NO se detecta (simplificación
	// documentada, no un bug).
	ReasonTimeConflict SkipReason = "time_conflict"

	// ReasonInsufficientTime: la duración no entra en el presupuesto restante.
	// No corta la pasada: una tarea más corta de menor prioridad aún puede entrar.
	ReasonInsufficientTime SkipReason = "insufficient_time"
)

type SkippedTask struct {
	Task   tasks.Task
	Reason SkipReason
}

// DailyPlan es el resultado de una generación: valor puro, descartable,
// recalculado en cada llamada. Nunca se muta en sitio.
type DailyPlan struct {
	OwnerID     string
	GeneratedAt time.Time

	// Scheduled en orden final de presentación: requeridas primero (orden de
	// la fase 1), después las opcionales colocadas (orden de colocación).
	Scheduled []tasks.Task

	SkippedOptional []SkippedTask

	TotalMinutesUsed int
	AvailableMinutes int
}

// InfeasibleRequiredLoadError: las tareas requeridas no entran en el
// presupuesto. Error fatal de la llamada: no se produce plan parcial y se
// reporta la carga requerida completa de una vez, no de a una.
type InfeasibleRequiredLoadError struct {
	Required         []tasks.Task // lista requerida completa, ya ordenada
	RequiredMinutes  int
	AvailableMinutes int
}

func (e *InfeasibleRequiredLoadError) Error() string {
	return fmt.Sprintf("required tasks (%dmin) exceed available time (%dmin)",
		e.RequiredMinutes, e.AvailableMinutes)
}

// Weigher es el empuje de preferencias: peso adicional aplicado DESPUÉS de
// las claves del comparador y ANTES del desempate por orden de inserción.
// Solo interviene en la fase opcional; nunca cruza la frontera required/optional.
type Weigher func(t tasks.Task) int

// PreferenceWeigher construye el weigher por defecto a partir de las
// preferencias del owner:
//   - "focus_<categoría>" presente y no "false"  => +1 a esa categoría
//   - "preferred_time_of_day" = morning|afternoon|evening => +1 a tareas de
//     hora fija dentro de la ventana
func PreferenceWeigher(prefs map[string]string) Weigher {
	return func(t tasks.Task) int {
		w := 0
		if v, ok := prefs["focus_"+string(t.Category)]; ok && v != "false" {
			w++
		}
		if tod := prefs["preferred_time_of_day"]; tod != "" && t.ScheduledAt != nil {
			if inWindow(tod, *t.ScheduledAt) {
				w++
			}
		}
		return w
	}
}

func inWindow(window string, at tasks.TimeOfDay) bool {
	switch window {
	case "morning":
		return at.Hour < 12
	case "afternoon":
		return at.Hour >= 12 && at.Hour < 18
	case "evening":
		return at.Hour >= 18
	default:
		return false
	}
}

// BuildPlan es el algoritmo central: función pura y determinista del estado
// del owner y su suministro de tareas (owner.AllTasks, ya en orden de
// inserción). No hace I/O ni guarda estado entre llamadas.
func BuildPlan(o owners.Owner, supply []tasks.Task) (DailyPlan, error) {
	return buildPlan(o, supply, PreferenceWeigher(o.Preferences))
}

// BuildPlanWeighted permite enchufar otro weigher de preferencias.
func BuildPlanWeighted(o owners.Owner, supply []tasks.Task, weigh Weigher) (DailyPlan, error) {
	if weigh == nil {
		weigh = func(tasks.Task) int { return 0 }
	}
	return buildPlan(o, supply, weigh)
}

func buildPlan(o owners.Owner, supply []tasks.Task, weigh Weigher) (DailyPlan, error) {
	var required, optional []tasks.Task
	for _, t := range supply {
		if t.Completed {
			// Ya satisfecha hoy: no se replanifica ni hace infactible el día.
			continue
		}
		if t.Required {
			required = append(required, t)
		} else {
			optional = append(optional, t)
		}
	}

	// ---- Fase 1: requeridas ----
	// SliceStable sobre orden de inserción => desempate final gratis.
	sort.SliceStable(required, func(i, j int) bool {
		return tasks.Compare(required[i], required[j]) < 0
	})

	requiredMinutes := 0
	for _, t := range required {
		requiredMinutes += t.DurationMinutes
	}
	if requiredMinutes > o.AvailableMinutes {
		// Nunca se recorta ni se descarta una requerida en silencio.
		return DailyPlan{}, &InfeasibleRequiredLoadError{
			Required:         required,
			RequiredMinutes:  requiredMinutes,
			AvailableMinutes: o.AvailableMinutes,
		}
	}

	scheduled := make([]tasks.Task, 0, len(supply))
	scheduled = append(scheduled, required...)
	remaining := o.AvailableMinutes - requiredMinutes

	// ---- Fase 2: opcionales (greedy) ----
	sort.SliceStable(optional, func(i, j int) bool {
		if c := tasks.Compare(optional[i], optional[j]); c != 0 {
			return c < 0
		}
		return weigh(optional[i]) > weigh(optional[j])
	})

	// Las horas fijas de las requeridas ya ocupan su minuto exacto.
	taken := make(map[int]bool)
	for _, t := range required {
		if t.ScheduledAt != nil {
			taken[t.ScheduledAt.Minutes()] = true
		}
	}

	// Paso de conflictos: la de mayor prioridad (según el comparador) reclama
	// el minuto; la perdedora sale con TimeConflict. El minuto queda reclamado
	// aunque la ganadora después no entre por presupuesto.
	skipped := make([]SkippedTask, 0)
	candidates := make([]tasks.Task, 0, len(optional))
	for _, t := range optional {
		if t.ScheduledAt != nil {
			m := t.ScheduledAt.Minutes()
			if taken[m] {
				skipped = append(skipped, SkippedTask{Task: t, Reason: ReasonTimeConflict})
				continue
			}
			taken[m] = true
		}
		candidates = append(candidates, t)
	}

	// Paso greedy: un skip no detiene la pasada.
	used := requiredMinutes
	for _, t := range candidates {
		if t.DurationMinutes > remaining {
			skipped = append(skipped, SkippedTask{Task: t, Reason: ReasonInsufficientTime})
			continue
		}
		scheduled = append(scheduled, t)
		remaining -= t.DurationMinutes
		used += t.DurationMinutes
	}

	return DailyPlan{
		OwnerID:          o.ID,
		Scheduled:        scheduled,
		SkippedOptional:  skipped,
		TotalMinutesUsed: used,
		AvailableMinutes: o.AvailableMinutes,
	}, nil
}
