package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/services"
)

// ListAdder defines the list mutation the handler needs.
type ListAdder interface {
	Add(ctx context.Context, userID, speciesID int64) error
}

// MatchNotifier runs the threshold check after an add and fans out notifications.
type MatchNotifier interface {
	CheckAndNotify(ctx context.Context, speciesID, userID int64) (string, bool, error)
}

// AddResponse represents a successful add-to-list response
// swagger:model AddResponse
type AddResponse struct {
	// Success message
	// default: Species added to your list
	Message string `json:"message"`

	// Whether the add triggered a city match
	Matched bool `json:"matched"`

	// The match notification, present only when matched
	Notification string `json:"notification,omitempty"`
}

// NewAddHandler returns an HTTP handler for adding a species to the user's list.
// @Summary Add a species to the personal list
// @Description Links a species to the authenticated user's list. When the add brings the city to critical mass, the other listers are notified and the notification text is returned.
// @Tags list
// @Produce json
// @Param speciesID path int true "Species ID"
// @Success 201 {object} handlers.AddResponse "Species added"
// @Failure 400 {object} handlers.ErrorResponse "Already listed / species or user no longer exists"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /species/{speciesID} [post]
// @Security BearerAuth
func NewAddHandler(svc ListAdder, matcher MatchNotifier, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		speciesID, err := strconv.ParseInt(chi.URLParam(r, "speciesID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid species id"})
			return
		}

		if err := svc.Add(r.Context(), userID, speciesID); err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyListed):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Species already in your list"})
			case errors.Is(err, services.ErrInvalidReference):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Species or user no longer exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		notification, matched, err := matcher.CheckAndNotify(r.Context(), speciesID, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddResponse{
			Message:      "Species added to your list",
			Matched:      matched,
			Notification: notification,
		})
	}
}
