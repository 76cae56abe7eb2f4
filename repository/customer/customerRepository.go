package customerrepo

import (
	"context"
	"database/sql"
	"errors"

	"librarydesk/model"

	"github.com/jmoiron/sqlx"
)

type Repo interface {
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

const customerCols = `customer_id, f_name, l_name, email, phone, role, password_hash, created_at`

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const q = `
		SELECT ` + customerCols + `
		FROM customers
		WHERE email = $1`
	var c model.Customer
	if err := r.db.GetContext(ctx, &c, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
		SELECT ` + customerCols + `
		FROM customers
		WHERE customer_id = $1`
	var c model.Customer
	if err := r.db.GetContext(ctx, &c, q, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
		INSERT INTO customers (f_name, l_name, email, phone, role, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING customer_id, created_at`
	return r.db.QueryRowContext(ctx, q,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Role, c.PasswordHash,
	).Scan(&c.ID, &c.CreatedAt)
}
