package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
)

// ListReadRepository handles personal-list read operations
type ListReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListReadRepository(db *sqlx.DB, txGetter TxGetter) *ListReadRepository {
	return &ListReadRepository{db: db, txGetter: txGetter}
}

// Exists reports whether the user already has the species in their list.
func (r *ListReadRepository) Exists(ctx context.Context, userID, speciesID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users_species
			WHERE user_id = $1 AND species_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, userID, speciesID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, speciesID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// CountByCity counts how many users of a city hold the species.
// A live scan each time; city populations are small.
func (r *ListReadRepository) CountByCity(ctx context.Context, speciesID, cityID int64) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM users_species us
		JOIN users u ON u.id = us.user_id
		WHERE us.species_id = $1 AND u.city_id = $2
	`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, speciesID, cityID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{speciesID, cityID},
		"result", count,
		"error", err,
	)

	return count, err
}

// GetCityListers returns every user of the city holding the species.
func (r *ListReadRepository) GetCityListers(ctx context.Context, speciesID, cityID int64) ([]models.Recipient, error) {
	const query = `
		SELECT u.id, u.username, u.email
		FROM users_species us
		JOIN users u ON u.id = us.user_id
		WHERE us.species_id = $1 AND u.city_id = $2
		ORDER BY u.id
	`

	var recipients []models.Recipient
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &recipients, query, speciesID, cityID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{speciesID, cityID},
		"result", len(recipients),
		"error", err,
	)

	return recipients, err
}

// GetByUserID returns the user's personal species list.
func (r *ListReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.ListedSpecies, error) {
	const query = `
		SELECT s.id, s.name, s.threatened
		FROM users_species us
		JOIN species s ON s.id = us.species_id
		WHERE us.user_id = $1
		ORDER BY s.name
	`

	var listed []models.ListedSpecies
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &listed, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(listed),
		"error", err,
	)

	return listed, err
}

// ListWriteRepository handles personal-list write operations
type ListWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListWriteRepository(db *sqlx.DB, txGetter TxGetter) *ListWriteRepository {
	return &ListWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a (user, species) list row.
// Foreign-key violations surface as ErrReferenceViolation.
func (r *ListWriteRepository) Save(ctx context.Context, userID, speciesID int64) error {
	const query = `
		INSERT INTO users_species (user_id, species_id)
		VALUES ($1, $2)
	`
	args := []any{userID, speciesID}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

// Delete removes a (user, species) list row.
func (r *ListWriteRepository) Delete(ctx context.Context, userID, speciesID int64) error {
	const query = `
		DELETE FROM users_species
		WHERE user_id = $1 AND species_id = $2
	`
	args := []any{userID, speciesID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
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
