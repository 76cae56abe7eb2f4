package bookrepo

import (
	"context"
	"errors"

	"librarydesk/model"

	"github.com/jmoiron/sqlx"
)

type Repo interface {
	Create(ctx context.Context, name string, topic *string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, bookID int64) (*model.Book, error)

	AddCopies(ctx context.Context, bookID int64, n int) ([]model.BookCopy, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, name string, topic *string) (*model.Book, error) {
	const q = `
		INSERT INTO books (b_name, topic)
		VALUES ($1,$2)
		RETURNING book_id, b_name, topic`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, name, topic).Scan(&b.ID, &b.Name, &b.Topic); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	const q = `
		SELECT book_id, b_name, topic
		FROM books
		ORDER BY book_id`
	var out []model.Book
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, bookID int64) (*model.Book, error) {
	const q = `
		SELECT book_id, b_name, topic
		FROM books
		WHERE book_id = $1`
	var b model.Book
	if err := r.db.GetContext(ctx, &b, q, bookID); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) AddCopies(ctx context.Context, bookID int64, n int) ([]model.BookCopy, error) {
	if n <= 0 {
		return nil, errors.New("n must be > 0")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const ins = `
		INSERT INTO book_copies (book_id, status)
		VALUES ($1,'AVAILABLE')
		RETURNING copy_id, book_id, status`
	out := make([]model.BookCopy, 0, n)
	for i := 0; i < n; i++ {
		var c model.BookCopy
		if err = tx.QueryRowContext(ctx, ins, bookID).Scan(&c.ID, &c.BookID, &c.Status); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	const q = `
		SELECT copy_id, book_id, status
		FROM book_copies
		WHERE book_id = $1
		ORDER BY copy_id`
	var out []model.BookCopy
	if err := r.db.SelectContext(ctx, &out, q, bookID); err != nil {
		return nil, err
	}
	return out, nil
}
