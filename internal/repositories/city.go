package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/wildwatch/wildwatch/internal/logger"
)

// CityRepository resolves cities by their natural key (country, name)
type CityRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCityRepository(db *sqlx.DB, txGetter TxGetter) *CityRepository {
	return &CityRepository{db: db, txGetter: txGetter}
}

// FindOrCreate resolves a city within a country, inserting it when absent,
// and returns its id. The DO UPDATE arm makes the conflicting row visible
// to RETURNING, so both paths yield the id in a single statement.
func (r *CityRepository) FindOrCreate(ctx context.Context, name string, countryID int64) (int64, error) {
	const query = `
		INSERT INTO cities (name, country_id)
		VALUES ($1, $2)
		ON CONFLICT (country_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	args := []any{name, countryID}

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
