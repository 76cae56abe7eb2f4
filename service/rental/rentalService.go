package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"librarydesk/model"
	rentalrepo "librarydesk/repository/rental"
	"librarydesk/service/booking"
)

type CreateReq struct {
	BorrowDate         time.Time
	ExpectedReturnDate time.Time
	CustomerID         int64
	CopyID             int64
}

type Service interface {
	// Create checks out a copy: lock the copy row, verify it is AVAILABLE,
	// insert the BORROWED rental and flip the copy in one transaction.
	Create(ctx context.Context, req CreateReq) (*model.Rental, error)

	// Return closes a rental: lock the rental row, compare the actual and
	// expected return dates in UTC, write RETURNED or LATE, free the copy.
	Return(ctx context.Context, callerID int64, isAdmin bool, rentalID int64, actual time.Time) (*model.Rental, error)

	Get(ctx context.Context, rentalID int64) (*model.Rental, error)
	MyHistory(ctx context.Context, customerID int64) ([]model.Rental, error)
}

type service struct {
	db *sql.DB
	r  rentalrepo.Repo
}

func New(db *sql.DB, r rentalrepo.Repo) Service {
	return &service{db: db, r: r}
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Rental, error) {
	if !req.ExpectedReturnDate.After(req.BorrowDate) {
		return nil, booking.Errf(booking.ErrValidation, "expected_return_date must be after borrow_date")
	}

	var created *model.Rental
	err := booking.Run(ctx, s.db, func(tx *sql.Tx) error {
		c, err := s.r.LockCopyForUpdate(ctx, tx, req.CopyID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return booking.Errf(booking.ErrNotFound, fmt.Sprintf("copy with id %d does not exist", req.CopyID))
			}
			return err
		}
		if err := booking.CheckCopyAvailable(c.Status); err != nil {
			return err
		}

		created, err = s.r.Insert(ctx, tx, &model.Rental{
			Status:             model.RentalBorrowed,
			BorrowDate:         req.BorrowDate.UTC(),
			ExpectedReturnDate: req.ExpectedReturnDate.UTC(),
			CustomerID:         req.CustomerID,
			CopyID:             req.CopyID,
		})
		if err != nil {
			return err
		}
		return s.r.SetCopyStatus(ctx, tx, req.CopyID, model.CopyUnavailable)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) Return(ctx context.Context, callerID int64, isAdmin bool, rentalID int64, actual time.Time) (*model.Rental, error) {
	var out *model.Rental
	err := booking.Run(ctx, s.db, func(tx *sql.Tx) error {
		rec, err := s.r.LockByID(ctx, tx, rentalID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return booking.Errf(booking.ErrNotFound, fmt.Sprintf("rental with id %d does not exist", rentalID))
			}
			return err
		}
		if !isAdmin && rec.CustomerID != callerID {
			return booking.Err(booking.ErrForbidden)
		}
		if rec.Status != model.RentalBorrowed {
			return booking.Errf(booking.ErrConflict, "rental is not active")
		}

		status := Lateness(actual, rec.ExpectedReturnDate)
		at := actual.UTC()
		if err := s.r.SetReturned(ctx, tx, rentalID, status, at); err != nil {
			return err
		}
		if err := s.r.SetCopyStatus(ctx, tx, rec.CopyID, model.CopyAvailable); err != nil {
			return err
		}
		rec.Status = status
		rec.ActualReturnDate = &at
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, rentalID int64) (*model.Rental, error) {
	rec, err := s.r.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.Errf(booking.ErrNotFound, fmt.Sprintf("rental with id %d does not exist", rentalID))
		}
		return nil, err
	}
	return rec, nil
}

func (s *service) MyHistory(ctx context.Context, customerID int64) ([]model.Rental, error) {
	return s.r.ListByCustomer(ctx, customerID)
}

// Lateness compares both timestamps in UTC; a return on the expected instant
// is on time.
func Lateness(actual, expected time.Time) model.RentalStatus {
	if actual.UTC().After(expected.UTC()) {
		return model.RentalLate
	}
	return model.RentalReturned
}
