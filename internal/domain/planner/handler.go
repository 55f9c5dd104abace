package planner

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pawpal/internal/domain/tasks"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/owners/{ownerID}/plan", generatePlanHandler(svc))
}

type plannedTaskResponse struct {
	ID              string         `json:"id"`
	PetID           string         `json:"pet_id,omitempty"`
	Name            string         `json:"name"`
	Category        tasks.Category `json:"category"`
	DurationMinutes int            `json:"duration_minutes"`
	Priority        int            `json:"priority"`
	Required        bool           `json:"required"`
	ScheduledAt     string         `json:"scheduled_at,omitempty"`
}

type skippedTaskResponse struct {
	Task   plannedTaskResponse `json:"task"`
	Reason SkipReason          `json:"reason"`
}

type planResponse struct {
	OwnerID          string                `json:"owner_id"`
	GeneratedAt      time.Time             `json:"generated_at"`
	Scheduled        []plannedTaskResponse `json:"scheduled"`
	SkippedOptional  []skippedTaskResponse `json:"skipped_optional"`
	TotalMinutesUsed int                   `json:"total_minutes_used"`
	AvailableMinutes int                   `json:"available_minutes"`
}

type infeasibleResponse struct {
	Error            string                `json:"error"`
	Required         []plannedTaskResponse `json:"required"`
	RequiredMinutes  int                   `json:"required_minutes"`
	AvailableMinutes int                   `json:"available_minutes"`
}

// generatePlanHandler godoc
// @Summary Generar plan diario
// @Description Genera el plan del día para el owner: todas las requeridas o fallo explícito (422 con la carga requerida completa); el resto del presupuesto se rellena greedy con opcionales por prioridad.
// @Tags planner
// @Produce json
// @Param ownerID path string true "ID del owner"
// @Success 200 {object} planResponse
// @Failure 404 {string} string "owner not found"
// @Failure 422 {object} infeasibleResponse
// @Router /owners/{ownerID}/plan [post]
func generatePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := svc.GenerateDailyPlan(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			var infeasible *InfeasibleRequiredLoadError
			if errors.As(err, &infeasible) {
				writeJSON(w, http.StatusUnprocessableEntity, infeasibleResponse{
					Error:            "infeasible_required_load",
					Required:         toPlannedResponses(infeasible.Required),
					RequiredMinutes:  infeasible.RequiredMinutes,
					AvailableMinutes: infeasible.AvailableMinutes,
				})
				return
			}
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		skipped := make([]skippedTaskResponse, 0, len(plan.SkippedOptional))
		for _, s := range plan.SkippedOptional {
			skipped = append(skipped, skippedTaskResponse{
				Task:   toPlannedResponse(s.Task),
				Reason: s.Reason,
			})
		}

		writeJSON(w, http.StatusOK, planResponse{
			OwnerID:          plan.OwnerID,
			GeneratedAt:      plan.GeneratedAt,
			Scheduled:        toPlannedResponses(plan.Scheduled),
			SkippedOptional:  skipped,
			TotalMinutesUsed: plan.TotalMinutesUsed,
			AvailableMinutes: plan.AvailableMinutes,
		})
	}
}

func toPlannedResponse(t tasks.Task) plannedTaskResponse {
	resp := plannedTaskResponse{
		ID:              t.ID,
		PetID:           t.PetID,
		Name:            t.Name,
		Category:        t.Category,
		DurationMinutes: t.DurationMinutes,
		Priority:        t.Priority,
		Required:        t.Required,
	}
	if t.ScheduledAt != nil {
		resp.ScheduledAt = t.ScheduledAt.String()
	}
	return resp
}

func toPlannedResponses(items []tasks.Task) []plannedTaskResponse {
	out := make([]plannedTaskResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toPlannedResponse(t))
	}
	return out
}

// writeJSON duplicado a propósito por módulo (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
