package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/services"
)

// ProfileEditor defines the interface that the service must implement.
type ProfileEditor interface {
	Edit(ctx context.Context, userID int64, username, email, cityName, countryCode string) error
}

// EditProfileRequest represents the JSON body for a profile edit
// swagger:model EditProfileRequest
type EditProfileRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Email
	// required: true
	Email string `json:"email"`

	// Home city name
	// required: true
	City string `json:"city"`

	// ISO code of the home country
	// required: true
	CountryCode string `json:"country_code"`
}

// EditProfileResponse represents a successful profile edit response
// swagger:model EditProfileResponse
type EditProfileResponse struct {
	// Success message
	// default: Profile updated
	Message string `json:"message"`
}

// NewEditProfileHandler returns an HTTP handler for editing the user's profile.
// @Summary Edit the authenticated user's profile
// @Description Updates username, email, and home city. The city is resolved within the target country, reusing an existing row when the name matches.
// @Tags profile
// @Accept json
// @Produce json
// @Param editProfileRequest body handlers.EditProfileRequest true "Profile edit request"
// @Success 200 {object} handlers.EditProfileResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / unknown country"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [put]
// @Security BearerAuth
func NewEditProfileHandler(svc ProfileEditor, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req EditProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.Edit(r.Context(), userID, req.Username, req.Email, req.City, req.CountryCode); err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username or email already exists"})
			case errors.Is(err, services.ErrUnknownCountry):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Unknown country code"})
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
		json.NewEncoder(w).Encode(EditProfileResponse{Message: "Profile updated"})
	}
}
