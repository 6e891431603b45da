package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
	"github.com/wildwatch/wildwatch/internal/services"
)

// SpeciesSearcher defines the interface that the service must implement.
type SpeciesSearcher interface {
	SearchSpecies(ctx context.Context, name string, userID int64) (*models.SpeciesDB, error)
}

// SearchResponse represents a successful species search response
// swagger:model SearchResponse
type SearchResponse struct {
	// The species found for the user's country
	Species *models.SpeciesDB `json:"species"`
}

// NewSearchHandler returns an HTTP handler for species search.
// @Summary Search the species reference data
// @Description Looks a species up by name, importing it from the remote catalog on a cache miss. Only species occurring in the user's country are returned.
// @Tags species
// @Produce json
// @Param name query string true "Species name"
// @Success 200 {object} handlers.SearchResponse "Species found"
// @Failure 404 {object} handlers.ErrorResponse "Species not found or not in your country"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /species [get]
// @Security BearerAuth
func NewSearchHandler(svc SpeciesSearcher, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		name := r.URL.Query().Get("name")
		if name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "name query parameter required"})
			return
		}

		species, err := svc.SearchSpecies(r.Context(), name, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSpeciesNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Could not find species"})
			case errors.Is(err, services.ErrSpeciesNotInCountry):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Species does not occur in your country"})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{Species: species})
	}
}
