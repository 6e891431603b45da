package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wildwatch/wildwatch/internal/models"
	"github.com/wildwatch/wildwatch/internal/services"
)

func newCatalogService(ctrl *gomock.Controller) (
	*services.CatalogService,
	*services.MockSpeciesReader,
	*services.MockSpeciesWriter,
	*services.MockCountryWriter,
	*services.MockUserLocator,
	*services.MockCatalogAPI,
	*services.MockCatalogCache,
) {
	speciesReader := services.NewMockSpeciesReader(ctrl)
	speciesWriter := services.NewMockSpeciesWriter(ctrl)
	countryWriter := services.NewMockCountryWriter(ctrl)
	users := services.NewMockUserLocator(ctrl)
	api := services.NewMockCatalogAPI(ctrl)
	cache := services.NewMockCatalogCache(ctrl)

	svc := services.NewCatalogService(speciesReader, speciesWriter, countryWriter, users, api, cache)
	return svc, speciesReader, speciesWriter, countryWriter, users, api, cache
}

func TestCatalogService_SearchSpecies_RelationalHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speciesReader, _, _, users, _, _ := newCatalogService(ctrl)

	loc := &models.Location{CityID: 5, CountryID: 3}
	cached := &models.SpeciesDB{ID: 11, Name: "panthera tigris", Threatened: models.CategoryEndangered}

	users.EXPECT().GetLocation(gomock.Any(), int64(1)).Return(loc, nil)
	speciesReader.EXPECT().GetByName(gomock.Any(), "panthera tigris").Return(cached, nil)
	speciesReader.EXPECT().ExistsOccurrence(gomock.Any(), int64(11), int64(3)).Return(true, nil)

	got, err := svc.SearchSpecies(context.Background(), "  Panthera Tigris ", 1)
	assert.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCatalogService_SearchSpecies_NotInCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speciesReader, _, _, users, _, _ := newCatalogService(ctrl)

	loc := &models.Location{CityID: 5, CountryID: 3}
	cached := &models.SpeciesDB{ID: 11, Name: "panthera tigris", Threatened: models.CategoryEndangered}

	users.EXPECT().GetLocation(gomock.Any(), int64(1)).Return(loc, nil)
	speciesReader.EXPECT().GetByName(gomock.Any(), "panthera tigris").Return(cached, nil)
	speciesReader.EXPECT().ExistsOccurrence(gomock.Any(), int64(11), int64(3)).Return(false, nil)

	got, err := svc.SearchSpecies(context.Background(), "panthera tigris", 1)
	assert.ErrorIs(t, err, services.ErrSpeciesNotInCountry)
	assert.Nil(t, got)
}

func TestCatalogService_SearchSpecies_RemoteMissPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speciesReader, speciesWriter, _, users, api, cache := newCatalogService(ctrl)

	loc := &models.Location{CityID: 5, CountryID: 3}

	users.EXPECT().GetLocation(gomock.Any(), int64(1)).Return(loc, nil)
	speciesReader.EXPECT().GetByName(gomock.Any(), "ailuropoda melanoleuca").Return(nil, nil)
	cache.EXPECT().Get(gomock.Any(), "ailuropoda melanoleuca").Return(nil, nil)
	api.EXPECT().GetSpeciesByName(gomock.Any(), "ailuropoda melanoleuca").Return(models.CategoryVulnerable, nil)
	api.EXPECT().GetCountriesForSpecies(gomock.Any(), "ailuropoda melanoleuca").Return([]string{"CN"}, nil)
	cache.EXPECT().Set(gomock.Any(), "ailuropoda melanoleuca", gomock.Any()).Return(nil)
	speciesWriter.EXPECT().Save(gomock.Any(), "ailuropoda melanoleuca", models.CategoryVulnerable).Return(int64(21), nil)
	speciesWriter.EXPECT().SaveOccurrence(gomock.Any(), int64(21), "CN").Return(nil)
	speciesReader.EXPECT().ExistsOccurrence(gomock.Any(), int64(21), int64(3)).Return(true, nil)

	got, err := svc.SearchSpecies(context.Background(), "ailuropoda melanoleuca", 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(21), got.ID)
	assert.Equal(t, models.CategoryVulnerable, got.Threatened)
}

func TestCatalogService_SearchSpecies_CacheHitSkipsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speciesReader, speciesWriter, _, users, _, cache := newCatalogService(ctrl)

	loc := &models.Location{CityID: 5, CountryID: 3}
	payload := &models.CatalogSpecies{Category: models.CategoryCriticallyEndangered, CountryCodes: []string{"ID", "MY"}}

	users.EXPECT().GetLocation(gomock.Any(), int64(1)).Return(loc, nil)
	speciesReader.EXPECT().GetByName(gomock.Any(), "pongo abelii").Return(nil, nil)
	cache.EXPECT().Get(gomock.Any(), "pongo abelii").Return(payload, nil)
	speciesWriter.EXPECT().Save(gomock.Any(), "pongo abelii", models.CategoryCriticallyEndangered).Return(int64(31), nil)
	speciesWriter.EXPECT().SaveOccurrence(gomock.Any(), int64(31), "ID").Return(nil)
	speciesWriter.EXPECT().SaveOccurrence(gomock.Any(), int64(31), "MY").Return(nil)
	speciesReader.EXPECT().ExistsOccurrence(gomock.Any(), int64(31), int64(3)).Return(true, nil)

	got, err := svc.SearchSpecies(context.Background(), "pongo abelii", 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), got.ID)
}

func TestCatalogService_SearchSpecies_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speciesReader, _, _, users, api, cache := newCatalogService(ctrl)

	loc := &models.Location{CityID: 5, CountryID: 3}

	users.EXPECT().GetLocation(gomock.Any(), int64(1)).Return(loc, nil)
	speciesReader.EXPECT().GetByName(gomock.Any(), "nonexistent").Return(nil, nil)
	cache.EXPECT().Get(gomock.Any(), "nonexistent").Return(nil, nil)
	api.EXPECT().GetSpeciesByName(gomock.Any(), "nonexistent").Return("", errors.New("remote down"))

	got, err := svc.SearchSpecies(context.Background(), "nonexistent", 1)
	assert.ErrorIs(t, err, services.ErrSpeciesNotFound)
	assert.Nil(t, got)
}

func TestCatalogService_SearchSpecies_OccurrenceFetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speciesReader, _, _, users, api, cache := newCatalogService(ctrl)

	loc := &models.Location{CityID: 5, CountryID: 3}

	users.EXPECT().GetLocation(gomock.Any(), int64(1)).Return(loc, nil)
	speciesReader.EXPECT().GetByName(gomock.Any(), "lynx lynx").Return(nil, nil)
	cache.EXPECT().Get(gomock.Any(), "lynx lynx").Return(nil, nil)
	api.EXPECT().GetSpeciesByName(gomock.Any(), "lynx lynx").Return(models.CategoryLeastConcern, nil)
	api.EXPECT().GetCountriesForSpecies(gomock.Any(), "lynx lynx").Return(nil, errors.New("remote down"))

	got, err := svc.SearchSpecies(context.Background(), "lynx lynx", 1)
	assert.ErrorIs(t, err, services.ErrSpeciesNotFound)
	assert.Nil(t, got)
}

func TestCatalogService_SearchSpecies_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, users, _, _ := newCatalogService(ctrl)

	users.EXPECT().GetLocation(gomock.Any(), int64(99)).Return(nil, nil)

	got, err := svc.SearchSpecies(context.Background(), "panthera tigris", 99)
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	assert.Nil(t, got)
}

func TestCatalogService_ImportCountries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		countries []models.CatalogCountry
		apiErr    error
		saveErr   error
		wantCount int
		wantErr   error
	}{
		{
			name: "successful import",
			countries: []models.CatalogCountry{
				{Name: "United States", Code: "US"},
				{Name: "Brazil", Code: "BR"},
			},
			wantCount: 2,
		},
		{
			name:    "remote failure",
			apiErr:  errors.New("remote down"),
			wantErr: services.ErrCountryImport,
		},
		{
			name:      "save failure",
			countries: []models.CatalogCountry{{Name: "Brazil", Code: "BR"}},
			saveErr:   errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, countryWriter, _, api, _ := newCatalogService(ctrl)

			api.EXPECT().GetCountries(gomock.Any()).Return(tt.countries, tt.apiErr)
			if tt.apiErr == nil {
				for _, c := range tt.countries {
					countryWriter.EXPECT().Save(gomock.Any(), c.Name, c.Code).Return(tt.saveErr)
					if tt.saveErr != nil {
						break
					}
				}
			}

			count, err := svc.ImportCountries(context.Background())
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCount, count)
			}
		})
	}
}
