package carelog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawpal/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/care-log", func(cr chi.Router) {
		cr.Get("/", listEntriesHandler(svc, petsSvc))
		cr.Post("/{entryID}/void", voidEntryHandler(svc))
	})
}

type entryResponse struct {
	ID         string      `json:"id"`
	PetID      string      `json:"pet_id"`
	TaskID     string      `json:"task_id,omitempty"`
	Type       EntryType   `json:"type"`
	Title      string      `json:"title"`
	Notes      string      `json:"notes"`
	OccurredAt time.Time   `json:"occurred_at"`
	RecordedAt time.Time   `json:"recorded_at"`
	Status     EntryStatus `json:"status"`
}

// listEntriesHandler godoc
// @Summary Historial de cuidados de la mascota
// @Description Lista el historial (más reciente primero). Filtros: ?type= (repetible), ?from=, ?to= (RFC3339), ?limit=.
// @Tags carelog
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} entryResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/care-log [get]
func listEntriesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var filter ListFilter
		q := r.URL.Query()

		for _, raw := range q["type"] {
			if v := strings.TrimSpace(raw); v != "" {
				filter.Types = append(filter.Types, EntryType(v))
			}
		}
		if raw := q.Get("from"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "from must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.From = &t
		}
		if raw := q.Get("to"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "to must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.To = &t
		}
		if raw := q.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		items, err := svc.ListByPet(r.Context(), petID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func voidEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Void(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "entryID"))
		if err != nil {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponse(e))
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		PetID:      e.PetID,
		TaskID:     e.TaskID,
		Type:       e.Type,
		Title:      e.Title,
		Notes:      e.Notes,
		OccurredAt: e.OccurredAt,
		RecordedAt: e.RecordedAt,
		Status:     e.Status,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
