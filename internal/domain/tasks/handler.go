package tasks

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners/{ownerID}/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc))
		tr.Get("/", listOwnerTasksHandler(svc))
	})

	// Tareas vistas desde la mascota (back-reference), con filtro ?required=
	r.Get("/pets/{petID}/tasks", listPetTasksHandler(svc))

	r.Route("/tasks/{taskID}", func(tr chi.Router) {
		tr.Delete("/", deleteTaskHandler(svc))
		tr.Patch("/priority", setPriorityHandler(svc))
		tr.Post("/complete", completeTaskHandler(svc))
		tr.Post("/reopen", reopenTaskHandler(svc))
	})
}

type createTaskRequest struct {
	PetID           string `json:"pet_id"` // opcional: vacío => tarea a nivel de owner
	Name            string `json:"name"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        int    `json:"priority"`
	Required        bool   `json:"required"`
	ScheduledAt     string `json:"scheduled_at"` // HH:MM opcional
	Recurrence      string `json:"recurrence"`
}

type taskResponse struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	PetID           string     `json:"pet_id,omitempty"`
	Name            string     `json:"name"`
	Category        Category   `json:"category"`
	DurationMinutes int        `json:"duration_minutes"`
	Priority        int        `json:"priority"`
	Required        bool       `json:"required"`
	ScheduledAt     string     `json:"scheduled_at,omitempty"`
	Recurrence      Recurrence `json:"recurrence"`
	Completed       bool       `json:"completed"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type setPriorityRequest struct {
	Priority int `json:"priority"`
}

// createTaskHandler godoc
// @Summary Crear tarea de cuidado
// @Description Crea una tarea para el owner. Si trae pet_id, la referencia se valida al insertar: mascota desconocida => 404, mascota de otro owner => 409. Prioridad fuera de [1,5] => 400.
// @Tags tasks
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del owner"
// @Param payload body createTaskRequest true "Datos de la tarea; scheduled_at en formato HH:MM"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "unknown pet"
// @Failure 409 {string} string "ownership violation"
// @Router /owners/{ownerID}/tasks [post]
func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "ownerID")

		var req createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var at *TimeOfDay
		if req.ScheduledAt != "" {
			t, err := ParseTimeOfDay(req.ScheduledAt)
			if err != nil {
				http.Error(w, "scheduled_at must be HH:MM", http.StatusBadRequest)
				return
			}
			at = &t
		}

		task, err := svc.Create(r.Context(), ownerID, CreateInput{
			PetID:           req.PetID,
			Name:            req.Name,
			Category:        Category(req.Category),
			DurationMinutes: req.DurationMinutes,
			Priority:        req.Priority,
			Required:        req.Required,
			ScheduledAt:     at,
			Recurrence:      Recurrence(req.Recurrence),
		})
		if err != nil {
			switch err {
			case ErrUnknownPet:
				http.Error(w, err.Error(), http.StatusNotFound)
			case ErrOwnershipViolation:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrInvalidPriority, ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toTaskResponse(task))
	}
}

func listOwnerTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponses(items))
	}
}

func listPetTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		var (
			items []Task
			err   error
		)
		if raw := r.URL.Query().Get("required"); raw != "" {
			required, perr := strconv.ParseBool(raw)
			if perr != nil {
				http.Error(w, "required must be true or false", http.StatusBadRequest)
				return
			}
			items, err = svc.ListByPetRequired(r.Context(), petID, required)
		} else {
			items, err = svc.ListByPet(r.Context(), petID)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponses(items))
	}
}

func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setPriorityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setPriorityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		task, err := svc.SetPriority(r.Context(), chi.URLParam(r, "taskID"), req.Priority)
		if err != nil {
			switch err {
			case ErrInvalidPriority:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "task not found", http.StatusNotFound)
			}
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(task))
	}
}

func completeTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := svc.Complete(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(task))
	}
}

func reopenTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := svc.Reopen(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(task))
	}
}

func toTaskResponse(t Task) taskResponse {
	resp := taskResponse{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		PetID:           t.PetID,
		Name:            t.Name,
		Category:        t.Category,
		DurationMinutes: t.DurationMinutes,
		Priority:        t.Priority,
		Required:        t.Required,
		Recurrence:      t.Recurrence,
		Completed:       t.Completed,
		LastCompletedAt: t.LastCompletedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.ScheduledAt != nil {
		resp.ScheduledAt = t.ScheduledAt.String()
	}
	return resp
}

func toTaskResponses(items []Task) []taskResponse {
	out := make([]taskResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTaskResponse(t))
	}
	return out
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (mismo criterio que en pets/planner): extraer un helper común recién
// vale la pena cuando se repita en más sitios.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
