package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// pgxmock pools.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is a Querier that can open transactions.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Builder is the squirrel statement builder with PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}
