package services

import (
	"context"
	"errors"
	"strings"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
)

// Error variables
var (
	ErrSpeciesNotFound     = errors.New("could not find species")
	ErrSpeciesNotInCountry = errors.New("species does not occur in your country")
	ErrCountryImport       = errors.New("country import failed")
)

// SpeciesReader defines read operations for cached species.
type SpeciesReader interface {
	GetByName(ctx context.Context, name string) (*models.SpeciesDB, error)
	ExistsOccurrence(ctx context.Context, speciesID, countryID int64) (bool, error)
}

// SpeciesWriter defines write operations for cached species.
type SpeciesWriter interface {
	Save(ctx context.Context, name, threatened string) (int64, error)
	SaveOccurrence(ctx context.Context, speciesID int64, countryCode string) error
}

// CountryWriter caches countries fetched from the remote catalog.
type CountryWriter interface {
	Save(ctx context.Context, name, code string) error
}

// UserLocator resolves the city and country a user belongs to.
type UserLocator interface {
	GetLocation(ctx context.Context, userID int64) (*models.Location, error)
}

// CatalogAPI is the remote conservation-status catalog.
type CatalogAPI interface {
	GetSpeciesByName(ctx context.Context, name string) (string, error)
	GetCountriesForSpecies(ctx context.Context, name string) ([]string, error)
	GetCountries(ctx context.Context) ([]models.CatalogCountry, error)
}

// CatalogCache caches remote catalog payloads between lookups.
type CatalogCache interface {
	Get(ctx context.Context, name string) (*models.CatalogSpecies, error)
	Set(ctx context.Context, name string, species *models.CatalogSpecies) error
}

// CatalogService lazily imports reference data from the remote catalog into
// the relational cache and scopes lookups to the caller's country.
type CatalogService struct {
	speciesReader SpeciesReader
	speciesWriter SpeciesWriter
	countryWriter CountryWriter
	users         UserLocator
	api           CatalogAPI
	cache         CatalogCache
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(
	speciesReader SpeciesReader,
	speciesWriter SpeciesWriter,
	countryWriter CountryWriter,
	users UserLocator,
	api CatalogAPI,
	cache CatalogCache,
) *CatalogService {
	return &CatalogService{
		speciesReader: speciesReader,
		speciesWriter: speciesWriter,
		countryWriter: countryWriter,
		users:         users,
		api:           api,
		cache:         cache,
	}
}

// SearchSpecies returns the species with the given name if it occurs in the
// searching user's country. On a relational cache miss the species and its
// occurrences are fetched from the remote catalog and persisted; the caller's
// transaction discards those writes when the flow fails partway.
func (svc *CatalogService) SearchSpecies(ctx context.Context, name string, userID int64) (*models.SpeciesDB, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	loc, err := svc.users.GetLocation(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user location", "userID", userID, "err", err)
		return nil, err
	}
	if loc == nil {
		return nil, ErrUserDoesNotExist
	}

	species, err := svc.speciesReader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to look up species", "species", name, "err", err)
		return nil, err
	}
	if species != nil {
		return svc.checkCountry(ctx, species, loc.CountryID)
	}

	payload, err := svc.fetchSpecies(ctx, name)
	if err != nil {
		return nil, err
	}

	speciesID, err := svc.speciesWriter.Save(ctx, name, payload.Category)
	if err != nil {
		logger.Log.Errorw("failed to persist species", "species", name, "err", err)
		return nil, err
	}

	for _, code := range payload.CountryCodes {
		if err := svc.speciesWriter.SaveOccurrence(ctx, speciesID, code); err != nil {
			logger.Log.Errorw("failed to persist occurrence", "species", name, "code", code, "err", err)
			return nil, err
		}
	}

	species = &models.SpeciesDB{ID: speciesID, Name: name, Threatened: payload.Category}
	return svc.checkCountry(ctx, species, loc.CountryID)
}

// fetchSpecies resolves the remote payload for a species name, consulting the
// TTL cache before the remote catalog. Cache failures are treated as misses.
func (svc *CatalogService) fetchSpecies(ctx context.Context, name string) (*models.CatalogSpecies, error) {
	payload, err := svc.cache.Get(ctx, name)
	if err != nil {
		logger.Log.Errorw("catalog cache read failed", "species", name, "err", err)
	}
	if payload != nil {
		return payload, nil
	}

	category, err := svc.api.GetSpeciesByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("remote species lookup failed", "species", name, "err", err)
		return nil, ErrSpeciesNotFound
	}

	codes, err := svc.api.GetCountriesForSpecies(ctx, name)
	if err != nil {
		logger.Log.Errorw("remote species countries lookup failed", "species", name, "err", err)
		return nil, ErrSpeciesNotFound
	}

	payload = &models.CatalogSpecies{Category: category, CountryCodes: codes}
	if err := svc.cache.Set(ctx, name, payload); err != nil {
		logger.Log.Errorw("catalog cache write failed", "species", name, "err", err)
	}

	return payload, nil
}

func (svc *CatalogService) checkCountry(ctx context.Context, species *models.SpeciesDB, countryID int64) (*models.SpeciesDB, error) {
	exists, err := svc.speciesReader.ExistsOccurrence(ctx, species.ID, countryID)
	if err != nil {
		logger.Log.Errorw("failed to check occurrence", "speciesID", species.ID, "countryID", countryID, "err", err)
		return nil, err
	}
	if !exists {
		return nil, ErrSpeciesNotInCountry
	}
	return species, nil
}

// ImportCountries seeds the country table from the remote catalog's full list
// and returns how many entries were processed. The operation is idempotent:
// already cached countries are left untouched.
func (svc *CatalogService) ImportCountries(ctx context.Context) (int, error) {
	countries, err := svc.api.GetCountries(ctx)
	if err != nil {
		logger.Log.Errorw("remote country list fetch failed", "err", err)
		return 0, ErrCountryImport
	}

	for _, c := range countries {
		if err := svc.countryWriter.Save(ctx, c.Name, c.Code); err != nil {
			logger.Log.Errorw("failed to persist country", "code", c.Code, "err", err)
			return 0, err
		}
	}

	return len(countries), nil
}
