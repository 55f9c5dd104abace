package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners/{ownerID}/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
	})

	r.Get("/pets/{petID}", getPetHandler(svc))
	r.Delete("/pets/{petID}", deletePetHandler(svc))
	r.Post("/pets/{petID}/needs", addSpecialNeedHandler(svc))
}

type createPetRequest struct {
	ID           string   `json:"id"` // opcional
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Age          int      `json:"age"`
	SpecialNeeds []string `json:"special_needs"`
	Notes        string   `json:"notes"`
}

type petResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Species      Species   `json:"species"`
	Age          int       `json:"age"`
	SpecialNeeds []string  `json:"special_needs"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type addNeedRequest struct {
	Need string `json:"need"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Registra una mascota bajo el owner indicado. Id repetido => 409 (DuplicatePet, se rechaza al registrar).
// @Tags pets
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del owner"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "owner not found"
// @Failure 409 {string} string "pet already registered"
// @Router /owners/{ownerID}/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "ownerID"), CreateInput{
			ID:           req.ID,
			Name:         req.Name,
			Species:      req.Species,
			Age:          req.Age,
			SpecialNeeds: req.SpecialNeeds,
			Notes:        req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicatePet):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrUnknownOwner):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func addSpecialNeedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addNeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.AddSpecialNeed(r.Context(), chi.URLParam(r, "petID"), req.Need)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "pet not found", http.StatusNotFound)
			}
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	needs := p.SpecialNeeds
	if needs == nil {
		needs = []string{}
	}
	return petResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Species:      p.Species,
		Age:          p.Age,
		SpecialNeeds: needs,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
