package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-property-booking/internal/logger"
)

var (
	// ErrUniqueViolation is returned when an insert hits a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrExclusionViolation is returned when an insert hits an exclusion constraint.
	ErrExclusionViolation = errors.New("exclusion constraint violation")
	// ErrNoTx is returned by operations that only make sense inside a transaction.
	ErrNoTx = errors.New("operation requires a transaction in context")
)

// postgres SQLSTATE codes
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// TxGetter returns the request transaction stored in ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

var dialect = goqu.Dialect("postgres")

// executor returns the request transaction when there is one, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// classify maps driver errors onto repository sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Join(ErrUniqueViolation, err)
		case pgExclusionViolation:
			return errors.Join(ErrExclusionViolation, err)
		}
	}
	return err
}

// noRows turns sql.ErrNoRows into a nil error so lookups can return (nil, nil).
func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// logQuery logs the query in a single line with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
