package roomsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"librarydesk/model"
	roomrepo "librarydesk/repository/room"
	"librarydesk/service/booking"
)

type Service interface {
	List(ctx context.Context) ([]model.StudyRoom, error)
	Get(ctx context.Context, roomID int64) (*model.StudyRoom, error)
	Create(ctx context.Context, capacity int) (*model.StudyRoom, error)
	Delete(ctx context.Context, roomID int64) error
}

type service struct{ r roomrepo.Repo }

func New(r roomrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.StudyRoom, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, roomID int64) (*model.StudyRoom, error) {
	room, err := s.r.Get(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.Errf(booking.ErrNotFound, fmt.Sprintf("room with id %d does not exist", roomID))
		}
		return nil, err
	}
	return room, nil
}

func (s *service) Create(ctx context.Context, capacity int) (*model.StudyRoom, error) {
	if capacity <= 0 {
		return nil, booking.Errf(booking.ErrValidation, "capacity must be positive")
	}
	return s.r.Create(ctx, capacity)
}

func (s *service) Delete(ctx context.Context, roomID int64) error {
	ok, err := s.r.Delete(ctx, roomID)
	if err != nil {
		return booking.Classify(err)
	}
	if !ok {
		return booking.Errf(booking.ErrNotFound, fmt.Sprintf("room with id %d does not exist", roomID))
	}
	return nil
}
