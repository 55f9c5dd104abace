package tasks

// Compare es el comparador multi-clave para ordenar tareas.
// Devuelve <0 si a va antes que b, >0 si va después, 0 en empate total.
//
// Claves, en orden:
//  1. Required primero.
//  2. Priority descendente.
//  3. Hora fija antes que flotante.
//  4. Hora fija ascendente cuando ambas la tienen.
//
// El desempate final (orden de inserción) no vive aquí: los llamadores usan
// sort.SliceStable sobre listas en orden de inserción, así el empate queda
// estable sin clave adicional.
func Compare(a, b Task) int {
	if a.Required != b.Required {
		if a.Required {
			return -1
		}
		return 1
	}
	if a.Priority != b.Priority {
		if a.Priority > b.Priority {
			return -1
		}
		return 1
	}
	af, bf := a.Fixed(), b.Fixed()
	if af != bf {
		if af {
			return -1
		}
		return 1
	}
	if af && bf {
		am, bm := a.ScheduledAt.Minutes(), b.ScheduledAt.Minutes()
		if am != bm {
			if am < bm {
				return -1
			}
			return 1
		}
	}
	return 0
}
