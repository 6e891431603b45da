package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
	"github.com/wildwatch/wildwatch/internal/repositories"
)

// UserUpdater defines mutation operations for existing users.
type UserUpdater interface {
	Update(ctx context.Context, userID int64, username, email string, cityID int64) error
	Delete(ctx context.Context, userID int64) error
}

// UserListReader returns a user's personal species list.
type UserListReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.ListedSpecies, error)
}

// ProfileService handles profile viewing, editing, and account deletion.
type ProfileService struct {
	profiles  ProfileReader
	writer    UserUpdater
	countries CountryReader
	cities    CityResolver
	lists     UserListReader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	profiles ProfileReader,
	writer UserUpdater,
	countries CountryReader,
	cities CityResolver,
	lists UserListReader,
) *ProfileService {
	return &ProfileService{
		profiles:  profiles,
		writer:    writer,
		countries: countries,
		cities:    cities,
		lists:     lists,
	}
}

// Get returns the user's profile together with their species list.
func (svc *ProfileService) Get(ctx context.Context, userID int64) (*models.Profile, []models.ListedSpecies, error) {
	profile, err := svc.profiles.GetProfile(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrUserDoesNotExist
	}

	listed, err := svc.lists.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get species list", "userID", userID, "err", err)
		return nil, nil, err
	}

	return profile, listed, nil
}

// Edit updates a user's credentials and home city. The city is re-resolved by
// its (country, name) natural key, reusing an existing row when one matches.
func (svc *ProfileService) Edit(ctx context.Context, userID int64, username, email, cityName, countryCode string) error {
	profile, err := svc.profiles.GetProfile(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return err
	}
	if profile == nil {
		return ErrUserDoesNotExist
	}

	cityID := profile.CityID
	if cityName != profile.City || countryCode != profile.CountryCode {
		country, err := svc.countries.GetByCode(ctx, countryCode)
		if err != nil {
			logger.Log.Errorw("failed to resolve country", "code", countryCode, "err", err)
			return err
		}
		if country == nil {
			return ErrUnknownCountry
		}

		cityID, err = svc.cities.FindOrCreate(ctx, cityName, country.ID)
		if err != nil {
			logger.Log.Errorw("failed to resolve city", "city", cityName, "err", err)
			return err
		}
	}

	if err := svc.writer.Update(ctx, userID, username, email, cityID); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return err
	}

	return nil
}

// Delete removes the user's account. List rows are cleared by cascade.
func (svc *ProfileService) Delete(ctx context.Context, userID int64) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}
	return nil
}
