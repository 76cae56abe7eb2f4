package roomrepo

import (
	"context"
	"database/sql"

	"librarydesk/model"

	"github.com/jmoiron/sqlx"
)

type Repo interface {
	List(ctx context.Context) ([]model.StudyRoom, error)
	Get(ctx context.Context, roomID int64) (*model.StudyRoom, error)

	// LockForUpdate reads the room row under an exclusive row lock. Concurrent
	// booking attempts for the same room serialize here until the owning
	// transaction commits or rolls back.
	LockForUpdate(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error)

	Create(ctx context.Context, capacity int) (*model.StudyRoom, error)
	Delete(ctx context.Context, roomID int64) (bool, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context) ([]model.StudyRoom, error) {
	const q = `
		SELECT room_id, capacity
		FROM study_rooms
		ORDER BY room_id`
	var rooms []model.StudyRoom
	if err := r.db.SelectContext(ctx, &rooms, q); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *repo) Get(ctx context.Context, roomID int64) (*model.StudyRoom, error) {
	const q = `
		SELECT room_id, capacity
		FROM study_rooms
		WHERE room_id = $1`
	var room model.StudyRoom
	if err := r.db.GetContext(ctx, &room, q, roomID); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repo) LockForUpdate(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
	const q = `
		SELECT room_id, capacity
		FROM study_rooms
		WHERE room_id = $1
		FOR UPDATE`
	var room model.StudyRoom
	if err := tx.QueryRowContext(ctx, q, roomID).Scan(&room.ID, &room.Capacity); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repo) Create(ctx context.Context, capacity int) (*model.StudyRoom, error) {
	const q = `
		INSERT INTO study_rooms (capacity)
		VALUES ($1)
		RETURNING room_id, capacity`
	var room model.StudyRoom
	if err := r.db.QueryRowContext(ctx, q, capacity).Scan(&room.ID, &room.Capacity); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repo) Delete(ctx context.Context, roomID int64) (bool, error) {
	const q = `DELETE FROM study_rooms WHERE room_id = $1`
	res, err := r.db.ExecContext(ctx, q, roomID)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
