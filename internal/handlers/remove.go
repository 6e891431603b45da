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

// ListRemover defines the list mutation the handler needs.
type ListRemover interface {
	Remove(ctx context.Context, userID, speciesID int64) error
}

// RemoveResponse represents a successful remove-from-list response
// swagger:model RemoveResponse
type RemoveResponse struct {
	// Success message
	// default: Species removed from your list
	Message string `json:"message"`
}

// NewRemoveHandler returns an HTTP handler for removing a species from the user's list.
// @Summary Remove a species from the personal list
// @Description Unlinks a species from the authenticated user's list.
// @Tags list
// @Produce json
// @Param speciesID path int true "Species ID"
// @Success 200 {object} handlers.RemoveResponse "Species removed"
// @Failure 400 {object} handlers.ErrorResponse "Species not in your list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /species/{speciesID} [delete]
// @Security BearerAuth
func NewRemoveHandler(svc ListRemover, tokener ClaimsTokener) http.HandlerFunc {
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

		if err := svc.Remove(r.Context(), userID, speciesID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotListed):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Species not in your list"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RemoveResponse{Message: "Species removed from your list"})
	}
}
