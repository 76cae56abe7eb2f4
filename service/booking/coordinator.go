package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Run executes one booking attempt inside a transaction. fn does the
// lock-check-write sequence against tx; any error rolls the transaction back
// so no partial write is ever visible. There is no in-process locking: two
// attempts against the same resource serialize on the row locks fn takes.
func Run(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return Classify(err)
	}
	if err := tx.Commit(); err != nil {
		return Classify(fmt.Errorf("commit: %w", err))
	}
	return nil
}

// Classify maps store-level failures onto the coded taxonomy. A lock wait
// that exceeded the configured lock_timeout surfaces as a retryable busy
// error; everything uncoded stays an internal error for the caller to log.
func Classify(err error) error {
	if Code(err) != "" {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.LockNotAvailable:
			return Errf(ErrBusy, "resource busy, retry later")
		case pgerrcode.ForeignKeyViolation:
			return Errf(ErrValidation, "referenced record does not exist")
		case pgerrcode.UniqueViolation:
			return Errf(ErrConflict, "duplicate record")
		}
	}
	return err
}
