package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wildwatch/wildwatch/internal/models"
	"github.com/wildwatch/wildwatch/internal/services"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profile := &models.Profile{
		UserID: 1, Username: "alice", Email: "alice@example.com",
		CityID: 5, City: "Springfield", Country: "United States", CountryCode: "US",
	}
	species := []models.ListedSpecies{
		{SpeciesID: 10, Name: "panthera tigris", Threatened: models.CategoryEndangered},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(profile, species, nil)

		handler := NewProfileHandler(mockSvc, authTokener(ctrl, 1))

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ProfileResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, profile, resp.Profile)
		assert.Equal(t, species, resp.Species)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, nil, services.ErrUserDoesNotExist)

		handler := NewProfileHandler(mockSvc, authTokener(ctrl, 1))

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, nil, errors.New("database failure"))

		handler := NewProfileHandler(mockSvc, authTokener(ctrl, 1))

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestEditProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := EditProfileRequest{
		Username: "alice2", Email: "alice2@example.com",
		City: "Toronto", CountryCode: "CA",
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockProfileEditor)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			mockSetup: func(m *MockProfileEditor) {
				m.EXPECT().
					Edit(gomock.Any(), int64(1), "alice2", "alice2@example.com", "Toronto", "CA").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Profile updated"},
		},
		{
			name: "duplicate credentials",
			mockSetup: func(m *MockProfileEditor) {
				m.EXPECT().
					Edit(gomock.Any(), int64(1), "alice2", "alice2@example.com", "Toronto", "CA").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username or email already exists"},
		},
		{
			name: "unknown country",
			mockSetup: func(m *MockProfileEditor) {
				m.EXPECT().
					Edit(gomock.Any(), int64(1), "alice2", "alice2@example.com", "Toronto", "CA").
					Return(services.ErrUnknownCountry)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Unknown country code"},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockProfileEditor) {
				m.EXPECT().
					Edit(gomock.Any(), int64(1), "alice2", "alice2@example.com", "Toronto", "CA").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileEditor(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewEditProfileHandler(mockSvc, authTokener(ctrl, 1))

			bodyBytes, _ := json.Marshal(body)
			req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestDeleteProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		deleteErr    error
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:         "success",
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Account deleted"},
		},
		{
			name:         "unknown user",
			deleteErr:    services.ErrUserDoesNotExist,
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Unauthorized"},
		},
		{
			name:         "internal server error",
			deleteErr:    errors.New("database failure"),
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAccountDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(tt.deleteErr)

			handler := NewDeleteProfileHandler(mockSvc, authTokener(ctrl, 1))

			req := httptest.NewRequest(http.MethodDelete, "/profile", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
