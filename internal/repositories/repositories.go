// Package repositories contains the sqlx persistence layer. Write repositories
// accept a txGetter so their statements join the request-scoped transaction when
// one is present; read repositories used inside multi-step writes take the same
// hook so they observe uncommitted rows from earlier steps of the request.
package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor selects the request transaction when present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
