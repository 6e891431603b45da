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

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID int64) (*models.Profile, []models.ListedSpecies, error)
}

// ProfileResponse represents the authenticated user's profile and species list
// swagger:model ProfileResponse
type ProfileResponse struct {
	// The user's profile
	Profile *models.Profile `json:"profile"`

	// The user's personal species list
	Species []models.ListedSpecies `json:"species"`
}

// NewProfileHandler returns an HTTP handler for viewing the user's profile.
// @Summary Get the authenticated user's profile
// @Description Returns the profile with city, country, and the personal species list.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		profile, species, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch {
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
		json.NewEncoder(w).Encode(ProfileResponse{Profile: profile, Species: species})
	}
}
