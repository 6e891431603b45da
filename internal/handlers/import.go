package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/services"
)

// CountryImporter defines the interface that the service must implement.
type CountryImporter interface {
	ImportCountries(ctx context.Context) (int, error)
}

// ImportResponse represents a successful country import response
// swagger:model ImportResponse
type ImportResponse struct {
	// Number of catalog entries processed
	Imported int `json:"imported"`
}

// NewImportCountriesHandler returns an HTTP handler that seeds the country table.
// @Summary Import the country catalog
// @Description Fetches the remote catalog's full country list and caches it. Idempotent: re-importing creates no duplicates.
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.ImportResponse "Countries imported"
// @Failure 502 {object} handlers.ErrorResponse "Country import failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /countries/import [post]
// @Security BearerAuth
func NewImportCountriesHandler(svc CountryImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.ImportCountries(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCountryImport):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Country import failed"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ImportResponse{Imported: count})
	}
}
