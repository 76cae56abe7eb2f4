package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestRunCommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err = Run(context.Background(), db, func(tx *sql.Tx) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !called {
		t.Fatal("fn was not called")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = Run(context.Background(), db, func(tx *sql.Tx) error {
		return Err(ErrConflict)
	})
	if Code(err) != ErrConflict {
		t.Fatalf("got code %q, want %q", Code(err), ErrConflict)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClassifyLockTimeout(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.LockNotAvailable}
	if got := Code(Classify(pgErr)); got != ErrBusy {
		t.Fatalf("got code %q, want %q", got, ErrBusy)
	}
}

func TestClassifyKeepsCodedAndUnknown(t *testing.T) {
	coded := Err(ErrCapacity)
	if Classify(coded) != coded {
		t.Fatal("coded error must pass through unchanged")
	}

	plain := errors.New("connection reset")
	if got := Code(Classify(plain)); got != "" {
		t.Fatalf("plain error classified as %q, want uncoded", got)
	}
}
