package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
)

// CatalogFacade is an HTTP client for the remote conservation-status catalog.
// The catalog authenticates with a bearer token passed as a query parameter.
type CatalogFacade struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewCatalogFacade creates a facade for the catalog at baseURL.
func NewCatalogFacade(baseURL, token string, timeout time.Duration) *CatalogFacade {
	return &CatalogFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
	}
}

type speciesResponse struct {
	Name   string `json:"name"`
	Result []struct {
		Category string `json:"category"`
	} `json:"result"`
}

type speciesCountriesResponse struct {
	Result []struct {
		Code string `json:"code"`
	} `json:"result"`
}

type countryListResponse struct {
	Results []models.CatalogCountry `json:"results"`
}

func (f *CatalogFacade) get(ctx context.Context, path string, out any) error {
	u := fmt.Sprintf("%s%s?token=%s", f.baseURL, path, url.QueryEscape(f.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// GetSpeciesByName fetches the conservation category for a species name.
func (f *CatalogFacade) GetSpeciesByName(ctx context.Context, name string) (string, error) {
	var resp speciesResponse
	path := "/species/" + url.PathEscape(name)

	if err := f.get(ctx, path, &resp); err != nil {
		logger.Log.Errorw("failed to fetch species from catalog", "species", name, "error", err)
		return "", err
	}

	if len(resp.Result) == 0 {
		logger.Log.Errorw("catalog has no data for species", "species", name)
		return "", fmt.Errorf("catalog has no data for species %q", name)
	}

	return resp.Result[0].Category, nil
}

// GetCountriesForSpecies fetches the ISO codes of every country the species occurs in.
func (f *CatalogFacade) GetCountriesForSpecies(ctx context.Context, name string) ([]string, error) {
	var resp speciesCountriesResponse
	path := "/species/countries/" + url.PathEscape(name)

	if err := f.get(ctx, path, &resp); err != nil {
		logger.Log.Errorw("failed to fetch species countries from catalog", "species", name, "error", err)
		return nil, err
	}

	codes := make([]string, 0, len(resp.Result))
	for _, c := range resp.Result {
		codes = append(codes, c.Code)
	}

	return codes, nil
}

// GetCountries fetches the catalog's full country list.
func (f *CatalogFacade) GetCountries(ctx context.Context) ([]models.CatalogCountry, error) {
	var resp countryListResponse

	if err := f.get(ctx, "/country/list", &resp); err != nil {
		logger.Log.Errorw("failed to fetch country list from catalog", "error", err)
		return nil, err
	}

	return resp.Results, nil
}
