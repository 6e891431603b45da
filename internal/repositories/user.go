package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsernameOrEmail returns the user matching either credential, or nil when none exists.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, city_id, created_at, updated_at
		FROM users
		WHERE ($1::TEXT IS NOT NULL AND username = $1)
		   OR ($2::TEXT IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, city_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetProfile returns a user joined with its city and country, or nil when it does not exist.
func (r *UserReadRepository) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	const query = `
		SELECT u.id, u.username, u.email,
		       ci.id AS city_id, ci.name AS city,
		       co.id AS country_id, co.name AS country, co.code AS country_code
		FROM users u
		JOIN cities ci ON ci.id = u.city_id
		JOIN countries co ON co.id = ci.country_id
		WHERE u.id = $1
	`

	var profile models.Profile
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetLocation returns the city and country ids a user belongs to, or nil when the user does not exist.
func (r *UserReadRepository) GetLocation(ctx context.Context, userID int64) (*models.Location, error) {
	const query = `
		SELECT u.city_id, ci.country_id
		FROM users u
		JOIN cities ci ON ci.id = u.city_id
		WHERE u.id = $1
	`

	var loc models.Location
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &loc, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user and returns its id.
// Unique-constraint violations surface as ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, cityID int64) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, city_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	args := []any{username, email, passwordHash, cityID}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, cityID},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, mapConstraintError(err)
	}
	return id, nil
}

// Update rewrites a user's credentials and home city.
func (r *UserWriteRepository) Update(ctx context.Context, userID int64, username, email string, cityID int64) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, city_id = $4, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{userID, username, email, cityID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username, email, cityID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return mapConstraintError(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a user; list rows go with it by cascade.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
