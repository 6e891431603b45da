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

// SpeciesReadRepository handles species and occurrence read operations
type SpeciesReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSpeciesReadRepository(db *sqlx.DB, txGetter TxGetter) *SpeciesReadRepository {
	return &SpeciesReadRepository{db: db, txGetter: txGetter}
}

// GetByName returns the species with the given case-folded name, or nil when not cached.
func (r *SpeciesReadRepository) GetByName(ctx context.Context, name string) (*models.SpeciesDB, error) {
	const query = `SELECT id, name, threatened FROM species WHERE name = $1`

	var species models.SpeciesDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &species, query, name)

	logger.Log.Infow(
		"query", query,
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &species, nil
}

// GetByID returns the species with the given id, or nil when it does not exist.
func (r *SpeciesReadRepository) GetByID(ctx context.Context, speciesID int64) (*models.SpeciesDB, error) {
	const query = `SELECT id, name, threatened FROM species WHERE id = $1`

	var species models.SpeciesDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &species, query, speciesID)

	logger.Log.Infow(
		"query", query,
		"args", []any{speciesID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &species, nil
}

// ExistsOccurrence reports whether a species is recorded as occurring in a country.
func (r *SpeciesReadRepository) ExistsOccurrence(ctx context.Context, speciesID, countryID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM species_countries
			WHERE species_id = $1 AND country_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, speciesID, countryID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{speciesID, countryID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// SpeciesWriteRepository handles species and occurrence write operations
type SpeciesWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSpeciesWriteRepository(db *sqlx.DB, txGetter TxGetter) *SpeciesWriteRepository {
	return &SpeciesWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a species and returns its id.
func (r *SpeciesWriteRepository) Save(ctx context.Context, name, threatened string) (int64, error) {
	const query = `
		INSERT INTO species (name, threatened)
		VALUES ($1, $2)
		RETURNING id
	`
	args := []any{name, threatened}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, mapConstraintError(err)
	}
	return id, nil
}

// SaveOccurrence records that a species occurs in the country with the given
// ISO code. Codes not present in the country table insert nothing; repeated
// occurrences insert nothing.
func (r *SpeciesWriteRepository) SaveOccurrence(ctx context.Context, speciesID int64, countryCode string) error {
	const query = `
		INSERT INTO species_countries (species_id, country_id)
		SELECT $1, id FROM countries WHERE code = $2
		ON CONFLICT DO NOTHING
	`
	args := []any{speciesID, countryCode}

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
		return mapConstraintError(err)
	}
	return nil
}
