package booksvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"librarydesk/model"
	bookrepo "librarydesk/repository/book"
	"librarydesk/service/booking"
)

type Service interface {
	Create(ctx context.Context, name string, topic *string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, bookID int64) (*model.Book, error)
	AddCopies(ctx context.Context, bookID int64, n int) ([]model.BookCopy, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)
}

type service struct{ r bookrepo.Repo }

func New(r bookrepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name string, topic *string) (*model.Book, error) {
	if name == "" {
		return nil, booking.Errf(booking.ErrValidation, "name is required")
	}
	return s.r.Create(ctx, name, topic)
}

func (s *service) List(ctx context.Context) ([]model.Book, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, bookID int64) (*model.Book, error) {
	b, err := s.r.Get(ctx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.Errf(booking.ErrNotFound, fmt.Sprintf("book with id %d does not exist", bookID))
		}
		return nil, err
	}
	return b, nil
}

func (s *service) AddCopies(ctx context.Context, bookID int64, n int) ([]model.BookCopy, error) {
	if n <= 0 {
		return nil, booking.Errf(booking.ErrValidation, "count must be positive")
	}
	if _, err := s.Get(ctx, bookID); err != nil {
		return nil, err
	}
	copies, err := s.r.AddCopies(ctx, bookID, n)
	if err != nil {
		return nil, booking.Classify(err)
	}
	return copies, nil
}

func (s *service) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	if _, err := s.Get(ctx, bookID); err != nil {
		return nil, err
	}
	return s.r.ListCopies(ctx, bookID)
}
