package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTx stores an open transaction on the context so repositories reuse it.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the transaction bound to the context, or the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
