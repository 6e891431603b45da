package services

import (
	"context"
	"errors"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
	"github.com/wildwatch/wildwatch/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownCountry     = errors.New("unknown country code")
	ErrUserDoesNotExist   = errors.New("user does not exist")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, cityID int64) (int64, error)
}

// CountryReader resolves countries by ISO code.
type CountryReader interface {
	GetByCode(ctx context.Context, code string) (*models.CountryDB, error)
}

// CityResolver resolves a city within a country, creating it when absent.
type CityResolver interface {
	FindOrCreate(ctx context.Context, name string, countryID int64) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	countries CountryReader
	cities    CityResolver
	jwt       JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	countries CountryReader,
	cities CityResolver,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		countries: countries,
		cities:    cities,
		jwt:       jwt,
	}
}

// Register creates a new user in the given city and country. The country must
// already be cached (it is picked from the imported catalog); the city is
// resolved or created within it.
func (svc *AuthService) Register(ctx context.Context, username, email, password, cityName, countryCode string) (int64, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return 0, ErrUserAlreadyExists
	}

	country, err := svc.countries.GetByCode(ctx, countryCode)
	if err != nil {
		logger.Log.Errorw("failed to resolve country", "code", countryCode, "err", err)
		return 0, err
	}
	if country == nil {
		logger.Log.Errorw("unknown country code", "code", countryCode)
		return 0, ErrUnknownCountry
	}

	cityID, err := svc.cities.FindOrCreate(ctx, cityName, country.ID)
	if err != nil {
		logger.Log.Errorw("failed to resolve city", "city", cityName, "err", err)
		return 0, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword), cityID)
	if err != nil {
		// Lost a race with a concurrent signup using the same credentials.
		if errors.Is(err, repositories.ErrDuplicate) {
			return 0, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return userID, nil
}

// Login authenticates a user and returns a JWT token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown username", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
