package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wildwatch/wildwatch/internal/repositories"
	"github.com/wildwatch/wildwatch/internal/services"
)

func TestListService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockListReader(ctrl)
	mockWriter := services.NewMockListWriter(ctrl)

	svc := services.NewListService(mockReader, mockWriter)

	tests := []struct {
		name      string
		exists    bool
		existsErr error
		saveErr   error
		wantErr   error
	}{
		{
			name: "successful add",
		},
		{
			name:    "already listed",
			exists:  true,
			wantErr: services.ErrAlreadyListed,
		},
		{
			name:      "exists check error",
			existsErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:    "reference violation reads as invalid reference",
			saveErr: repositories.ErrReferenceViolation,
			wantErr: services.ErrInvalidReference,
		},
		{
			name:    "duplicate on save races to already listed",
			saveErr: repositories.ErrDuplicate,
			wantErr: services.ErrAlreadyListed,
		},
		{
			name:    "save error",
			saveErr: errors.New("save error"),
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				Exists(gomock.Any(), int64(1), int64(2)).
				Return(tt.exists, tt.existsErr)

			if !tt.exists && tt.existsErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), int64(1), int64(2)).
					Return(tt.saveErr)
			}

			err := svc.Add(context.Background(), 1, 2)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockListReader(ctrl)
	mockWriter := services.NewMockListWriter(ctrl)

	svc := services.NewListService(mockReader, mockWriter)

	tests := []struct {
		name      string
		exists    bool
		existsErr error
		deleteErr error
		wantErr   error
	}{
		{
			name:   "successful remove",
			exists: true,
		},
		{
			name:    "not listed",
			exists:  false,
			wantErr: services.ErrNotListed,
		},
		{
			name:      "exists check error",
			existsErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "delete error",
			exists:    true,
			deleteErr: errors.New("delete error"),
			wantErr:   errors.New("delete error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				Exists(gomock.Any(), int64(1), int64(2)).
				Return(tt.exists, tt.existsErr)

			if tt.exists && tt.existsErr == nil {
				mockWriter.EXPECT().
					Delete(gomock.Any(), int64(1), int64(2)).
					Return(tt.deleteErr)
			}

			err := svc.Remove(context.Background(), 1, 2)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
