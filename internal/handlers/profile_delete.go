package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/services"
)

// AccountDeleter defines the interface that the service must implement.
type AccountDeleter interface {
	Delete(ctx context.Context, userID int64) error
}

// DeleteProfileResponse represents a successful account deletion response
// swagger:model DeleteProfileResponse
type DeleteProfileResponse struct {
	// Success message
	// default: Account deleted
	Message string `json:"message"`
}

// NewDeleteProfileHandler returns an HTTP handler for deleting the user's account.
// @Summary Delete the authenticated user's account
// @Description Removes the account; personal list entries are removed by cascade.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.DeleteProfileResponse "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [delete]
// @Security BearerAuth
func NewDeleteProfileHandler(svc AccountDeleter, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
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
		json.NewEncoder(w).Encode(DeleteProfileResponse{Message: "Account deleted"})
	}
}
