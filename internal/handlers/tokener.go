package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wildwatch/wildwatch/internal/jwt"
	"github.com/wildwatch/wildwatch/internal/logger"
)

// ClaimsTokener extracts and parses the bearer token of a request.
// Every protected handler resolves the acting user through it.
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// userIDFromRequest resolves the authenticated user's id, writing a 401
// response and returning false when the token is missing or invalid.
func userIDFromRequest(w http.ResponseWriter, r *http.Request, tokener ClaimsTokener) (int64, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}

	return claims.UserID, true
}

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}
