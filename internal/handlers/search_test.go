package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wildwatch/wildwatch/internal/jwt"
	"github.com/wildwatch/wildwatch/internal/models"
	"github.com/wildwatch/wildwatch/internal/services"
)

// authTokener returns a tokener mock resolving every request to the given user.
func authTokener(ctrl *gomock.Controller, userID int64) *MockClaimsTokener {
	tokener := NewMockClaimsTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token", nil).
		AnyTimes()
	tokener.EXPECT().
		GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{UserID: userID}, nil).
		AnyTimes()
	return tokener
}

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	species := &models.SpeciesDB{ID: 10, Name: "panthera tigris", Threatened: models.CategoryEndangered}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockSpeciesSearcher)
		expectedCode int
		expectedErr  string
	}{
		{
			name:  "success",
			query: "?name=panthera+tigris",
			mockSetup: func(m *MockSpeciesSearcher) {
				m.EXPECT().
					SearchSpecies(gomock.Any(), "panthera tigris", int64(1)).
					Return(species, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "missing name",
			query:        "",
			expectedCode: 400,
			expectedErr:  "name query parameter required",
		},
		{
			name:  "species not found",
			query: "?name=unknown",
			mockSetup: func(m *MockSpeciesSearcher) {
				m.EXPECT().
					SearchSpecies(gomock.Any(), "unknown", int64(1)).
					Return(nil, services.ErrSpeciesNotFound)
			},
			expectedCode: 404,
			expectedErr:  "Could not find species",
		},
		{
			name:  "species not in country",
			query: "?name=panthera+tigris",
			mockSetup: func(m *MockSpeciesSearcher) {
				m.EXPECT().
					SearchSpecies(gomock.Any(), "panthera tigris", int64(1)).
					Return(nil, services.ErrSpeciesNotInCountry)
			},
			expectedCode: 404,
			expectedErr:  "Species does not occur in your country",
		},
		{
			name:  "internal server error",
			query: "?name=panthera+tigris",
			mockSetup: func(m *MockSpeciesSearcher) {
				m.EXPECT().
					SearchSpecies(gomock.Any(), "panthera tigris", int64(1)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSpeciesSearcher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSearchHandler(mockSvc, authTokener(ctrl, 1))

			req := httptest.NewRequest(http.MethodGet, "/species"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp SearchResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, species, resp.Species)
			} else {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

func TestSearchHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockClaimsTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("authorization header missing"))

	handler := NewSearchHandler(NewMockSpeciesSearcher(ctrl), tokener)

	req := httptest.NewRequest(http.MethodGet, "/species?name=x", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
