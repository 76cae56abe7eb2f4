package rentalrepo

import (
	"context"
	"database/sql"
	"time"

	"librarydesk/model"

	"github.com/jmoiron/sqlx"
)

type Repo interface {
	// Copy side: the copy's status column is the single source of truth for
	// whether a checkout may proceed, so it is read FOR UPDATE and flipped
	// inside the same transaction as the rental insert.
	LockCopyForUpdate(ctx context.Context, tx *sql.Tx, copyID int64) (*model.BookCopy, error)
	SetCopyStatus(ctx context.Context, tx *sql.Tx, copyID int64, status model.CopyStatus) error

	// Rental ledger.
	Insert(ctx context.Context, tx *sql.Tx, rec *model.Rental) (*model.Rental, error)
	LockByID(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, error)
	SetReturned(ctx context.Context, tx *sql.Tx, rentalID int64, status model.RentalStatus, actual time.Time) error

	GetByID(ctx context.Context, rentalID int64) (*model.Rental, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Rental, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

const rentalCols = `rental_id, rental_status, borrow_date, expected_return_date,
	actual_return_date, customer_id, copy_id`

func (r *repo) LockCopyForUpdate(ctx context.Context, tx *sql.Tx, copyID int64) (*model.BookCopy, error) {
	const q = `
		SELECT copy_id, book_id, status
		FROM book_copies
		WHERE copy_id = $1
		FOR UPDATE`
	var c model.BookCopy
	if err := tx.QueryRowContext(ctx, q, copyID).Scan(&c.ID, &c.BookID, &c.Status); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) SetCopyStatus(ctx context.Context, tx *sql.Tx, copyID int64, status model.CopyStatus) error {
	const q = `
		UPDATE book_copies
		SET status = $2
		WHERE copy_id = $1`
	_, err := tx.ExecContext(ctx, q, copyID, status)
	return err
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, rec *model.Rental) (*model.Rental, error) {
	const q = `
		INSERT INTO rentals (rental_status, borrow_date, expected_return_date, customer_id, copy_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + rentalCols
	var out model.Rental
	err := tx.QueryRowContext(ctx, q,
		rec.Status, rec.BorrowDate, rec.ExpectedReturnDate, rec.CustomerID, rec.CopyID,
	).Scan(
		&out.ID, &out.Status, &out.BorrowDate, &out.ExpectedReturnDate,
		&out.ActualReturnDate, &out.CustomerID, &out.CopyID,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repo) LockByID(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE rental_id = $1
		FOR UPDATE`
	var out model.Rental
	err := tx.QueryRowContext(ctx, q, rentalID).Scan(
		&out.ID, &out.Status, &out.BorrowDate, &out.ExpectedReturnDate,
		&out.ActualReturnDate, &out.CustomerID, &out.CopyID,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repo) SetReturned(ctx context.Context, tx *sql.Tx, rentalID int64, status model.RentalStatus, actual time.Time) error {
	const q = `
		UPDATE rentals
		SET rental_status = $2,
			actual_return_date = $3
		WHERE rental_id = $1`
	_, err := tx.ExecContext(ctx, q, rentalID, status, actual)
	return err
}

func (r *repo) GetByID(ctx context.Context, rentalID int64) (*model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE rental_id = $1`
	var out model.Rental
	if err := r.db.GetContext(ctx, &out, q, rentalID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE customer_id = $1
		ORDER BY borrow_date DESC, rental_id DESC`
	var out []model.Rental
	if err := r.db.SelectContext(ctx, &out, q, customerID); err != nil {
		return nil, err
	}
	return out, nil
}
