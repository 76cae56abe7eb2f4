package reservationsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"librarydesk/model"
	reservationrepo "librarydesk/repository/reservation"
	roomrepo "librarydesk/repository/room"
	"librarydesk/service/booking"
)

type CreateReq struct {
	RoomID           int64
	TopicDescription string
	ReserveDate      time.Time
	StartTime        time.Time
	EndTime          time.Time
	GroupSize        int
	LastName         string
	FirstName        string
	CustomerID       int64
}

type Service interface {
	// Create runs the booking attempt: lock room row and ledger rows for the
	// target date, conflict-check, insert, commit. Exactly one of two
	// concurrent overlapping attempts can succeed.
	Create(ctx context.Context, req CreateReq) (*model.Reservation, error)

	ListByRoom(ctx context.Context, roomID int64, date time.Time) ([]model.Reservation, error)
	MyReservations(ctx context.Context, customerID int64) ([]model.Reservation, error)
	Get(ctx context.Context, reservationID int64) (*model.Reservation, error)
	Delete(ctx context.Context, callerID int64, isAdmin bool, reservationID int64) error
}

type service struct {
	db    *sql.DB
	rooms roomrepo.Repo
	resv  reservationrepo.Repo
}

func New(db *sql.DB, rooms roomrepo.Repo, resv reservationrepo.Repo) Service {
	return &service{db: db, rooms: rooms, resv: resv}
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Reservation, error) {
	cand := booking.Interval{Start: req.StartTime.UTC(), End: req.EndTime.UTC()}
	if !cand.Valid() {
		return nil, booking.Errf(booking.ErrValidation, "end_time must be after start_time")
	}
	date := dateOnly(req.ReserveDate)

	var created *model.Reservation
	err := booking.Run(ctx, s.db, func(tx *sql.Tx) error {
		room, err := s.rooms.LockForUpdate(ctx, tx, req.RoomID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return booking.Errf(booking.ErrNotFound, fmt.Sprintf("room with id %d does not exist", req.RoomID))
			}
			return err
		}

		existing, err := s.resv.ListByRoomAndDateForUpdate(ctx, tx, req.RoomID, date)
		if err != nil {
			return err
		}
		intervals := make([]booking.Interval, 0, len(existing))
		for _, ex := range existing {
			intervals = append(intervals, booking.Interval{Start: ex.StartTime.UTC(), End: ex.EndTime.UTC()})
		}
		if err := booking.CheckReservation(cand, req.GroupSize, room.Capacity, intervals); err != nil {
			return err
		}

		customerID := req.CustomerID
		created, err = s.resv.Insert(ctx, tx, &model.Reservation{
			RoomID:           req.RoomID,
			TopicDescription: req.TopicDescription,
			ReserveDate:      date,
			StartTime:        cand.Start,
			EndTime:          cand.End,
			GroupSize:        req.GroupSize,
			LastName:         req.LastName,
			FirstName:        req.FirstName,
			CustomerID:       &customerID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) ListByRoom(ctx context.Context, roomID int64, date time.Time) ([]model.Reservation, error) {
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.Errf(booking.ErrNotFound, fmt.Sprintf("room with id %d does not exist", roomID))
		}
		return nil, err
	}
	return s.resv.ListByRoomAndDate(ctx, roomID, dateOnly(date))
}

func (s *service) MyReservations(ctx context.Context, customerID int64) ([]model.Reservation, error) {
	return s.resv.ListByCustomer(ctx, customerID)
}

func (s *service) Get(ctx context.Context, reservationID int64) (*model.Reservation, error) {
	rec, err := s.resv.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.Err(booking.ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (s *service) Delete(ctx context.Context, callerID int64, isAdmin bool, reservationID int64) error {
	rec, err := s.resv.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.Err(booking.ErrNotFound)
		}
		return err
	}
	if !isAdmin && (rec.CustomerID == nil || *rec.CustomerID != callerID) {
		return booking.Err(booking.ErrForbidden)
	}
	ok, err := s.resv.Delete(ctx, reservationID)
	if err != nil {
		return err
	}
	if !ok {
		return booking.Err(booking.ErrNotFound)
	}
	return nil
}

// dateOnly normalizes a timestamp to its UTC calendar date; reservations on
// the same room conflict only within one date bucket.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
