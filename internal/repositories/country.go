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

// CountryReadRepository handles country read operations
type CountryReadRepository struct {
	db *sqlx.DB
}

func NewCountryReadRepository(db *sqlx.DB) *CountryReadRepository {
	return &CountryReadRepository{db: db}
}

// GetByCode returns the country with the given ISO code, or nil when it is not cached.
func (r *CountryReadRepository) GetByCode(ctx context.Context, code string) (*models.CountryDB, error) {
	const query = `SELECT id, name, code FROM countries WHERE code = $1`

	var country models.CountryDB
	err := r.db.GetContext(ctx, &country, query, code)

	logger.Log.Infow(
		"query", query,
		"args", []any{code},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &country, nil
}

// CountryWriteRepository handles country write operations
type CountryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCountryWriteRepository(db *sqlx.DB, txGetter TxGetter) *CountryWriteRepository {
	return &CountryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a country by its natural keys.
// Re-importing an already cached country is a no-op.
func (r *CountryWriteRepository) Save(ctx context.Context, name, code string) error {
	const query = `
		INSERT INTO countries (name, code)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	args := []any{name, code}

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

	return err
}
