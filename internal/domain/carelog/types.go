package carelog

// EntryType espeja las categorías de tarea (feeding, exercise, ...).
type EntryType string

const (
	EntryTypeFeeding  EntryType = "feeding"
	EntryTypeExercise EntryType = "exercise"
	EntryTypeHealth   EntryType = "health"
	EntryTypeHygiene  EntryType = "hygiene"
	EntryTypePlay     EntryType = "play"
	EntryTypeOther    EntryType = "other"
)

func ValidEntryType(t EntryType) bool {
	switch t {
	case EntryTypeFeeding, EntryTypeExercise, EntryTypeHealth, EntryTypeHygiene, EntryTypePlay, EntryTypeOther:
		return true
	default:
		return false
	}
}

type EntryStatus string

const (
	EntryStatusActive EntryStatus = "active"
	EntryStatusVoided EntryStatus = "voided"
)
