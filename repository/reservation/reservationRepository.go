package reservationrepo

import (
	"context"
	"database/sql"
	"time"

	"librarydesk/model"

	"github.com/jmoiron/sqlx"
)

type Repo interface {
	// ListByRoomAndDateForUpdate reads the room's ledger rows for one date
	// under the same lock mode as the room row, so a concurrent writer cannot
	// insert an overlapping row the current transaction never saw.
	ListByRoomAndDateForUpdate(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error)

	ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]model.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error)

	Insert(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error)

	GetByID(ctx context.Context, reservationID int64) (*model.Reservation, error)
	Delete(ctx context.Context, reservationID int64) (bool, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

const reservationCols = `reservation_id, room_id, topic_description, reserve_date,
	start_time, end_time, group_size, l_name, f_name, customer_id, created_at`

func (r *repo) ListByRoomAndDateForUpdate(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error) {
	const q = `
		SELECT ` + reservationCols + `
		FROM room_reservations
		WHERE room_id = $1
		AND reserve_date = $2
		FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, roomID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *repo) ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]model.Reservation, error) {
	const q = `
		SELECT ` + reservationCols + `
		FROM room_reservations
		WHERE room_id = $1
		AND reserve_date = $2
		ORDER BY start_time`
	var out []model.Reservation
	if err := r.db.SelectContext(ctx, &out, q, roomID, date); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error) {
	const q = `
		SELECT ` + reservationCols + `
		FROM room_reservations
		WHERE customer_id = $1
		ORDER BY reserve_date DESC, start_time`
	var out []model.Reservation
	if err := r.db.SelectContext(ctx, &out, q, customerID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error) {
	const q = `
		INSERT INTO room_reservations
		(room_id, topic_description, reserve_date, start_time, end_time, group_size, l_name, f_name, customer_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING ` + reservationCols
	var out model.Reservation
	err := tx.QueryRowContext(ctx, q,
		rec.RoomID, rec.TopicDescription, rec.ReserveDate, rec.StartTime, rec.EndTime,
		rec.GroupSize, rec.LastName, rec.FirstName, rec.CustomerID,
	).Scan(
		&out.ID, &out.RoomID, &out.TopicDescription, &out.ReserveDate,
		&out.StartTime, &out.EndTime, &out.GroupSize, &out.LastName,
		&out.FirstName, &out.CustomerID, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repo) GetByID(ctx context.Context, reservationID int64) (*model.Reservation, error) {
	const q = `
		SELECT ` + reservationCols + `
		FROM room_reservations
		WHERE reservation_id = $1`
	var out model.Reservation
	if err := r.db.GetContext(ctx, &out, q, reservationID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repo) Delete(ctx context.Context, reservationID int64) (bool, error) {
	const q = `DELETE FROM room_reservations WHERE reservation_id = $1`
	res, err := r.db.ExecContext(ctx, q, reservationID)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func scanReservations(rows *sql.Rows) ([]model.Reservation, error) {
	var out []model.Reservation
	for rows.Next() {
		var rec model.Reservation
		if err := rows.Scan(
			&rec.ID, &rec.RoomID, &rec.TopicDescription, &rec.ReserveDate,
			&rec.StartTime, &rec.EndTime, &rec.GroupSize, &rec.LastName,
			&rec.FirstName, &rec.CustomerID, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
