package tasks

import (
	"fmt"
	"strconv"
	"strings"
)

// Category clasifica la actividad de cuidado.
// @Enum feeding, exercise, health, hygiene, play, other
type Category string

const (
	CategoryFeeding  Category = "feeding"
	CategoryExercise Category = "exercise"
	CategoryHealth   Category = "health"
	CategoryHygiene  Category = "hygiene"
	CategoryPlay     Category = "play"
	CategoryOther    Category = "other"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryFeeding, CategoryExercise, CategoryHealth, CategoryHygiene, CategoryPlay, CategoryOther:
		return true
	default:
		return false
	}
}

// Recurrence es metadato para el colaborador externo de repetición.
// El planner la lee pero nunca la modifica.
// @Enum none, daily, weekly
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

func ValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	default:
		return false
	}
}

// TimeOfDay es una hora fija del día (sin fecha ni zona horaria).
// Se compara por minutos desde medianoche.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay acepta "HH:MM" (24h).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes devuelve minutos desde medianoche (clave de orden y de colisión exacta).
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
