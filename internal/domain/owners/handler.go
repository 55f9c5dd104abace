package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/owners", createOwnerHandler(svc))
	r.Get("/owners/{ownerID}", getOwnerHandler(svc))
	r.Patch("/owners/{ownerID}", updateOwnerHandler(svc))
}

type createOwnerRequest struct {
	Name             string            `json:"name"`
	AvailableMinutes int               `json:"available_minutes"`
	Preferences      map[string]string `json:"preferences"`
}

type updateOwnerRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	AvailableMinutes *int              `json:"available_minutes"`
	Preferences      map[string]string `json:"preferences"` // merge; valor vacío borra la clave
}

type ownerResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	AvailableMinutes int               `json:"available_minutes"`
	Preferences      map[string]string `json:"preferences"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Description Crea el owner con su presupuesto de minutos diario y preferencias opcionales.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / validación"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:             req.Name,
			AvailableMinutes: req.AvailableMinutes,
			Preferences:      req.Preferences,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := chi.URLParam(r, "ownerID")

		var req updateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.GetByID(r.Context(), ownerID)
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		if req.AvailableMinutes != nil {
			o, err = svc.UpdateBudget(r.Context(), ownerID, *req.AvailableMinutes)
			if err != nil {
				if errors.Is(err, ErrInvalidInput) {
					http.Error(w, "available_minutes must be >= 0", http.StatusBadRequest)
					return
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		if len(req.Preferences) > 0 {
			o, err = svc.UpdatePreferences(r.Context(), ownerID, req.Preferences)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	prefs := o.Preferences
	if prefs == nil {
		prefs = map[string]string{}
	}
	return ownerResponse{
		ID:               o.ID,
		Name:             o.Name,
		AvailableMinutes: o.AvailableMinutes,
		Preferences:      prefs,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
