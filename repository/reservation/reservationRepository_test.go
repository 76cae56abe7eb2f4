package reservationrepo

import (
	"context"
	"testing"
	"time"

	"librarydesk/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

var cols = []string{
	"reservation_id", "room_id", "topic_description", "reserve_date",
	"start_time", "end_time", "group_size", "l_name", "f_name",
	"customer_id", "created_at",
}

func TestListByRoomAndDateForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	r := New(sqlx.NewDb(db, "sqlmock"))

	date := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	start := date.Add(10 * time.Hour)
	end := date.Add(11 * time.Hour)
	cid := int64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT .+ FROM room_reservations\s+WHERE room_id = \$1\s+AND reserve_date = \$2\s+FOR UPDATE`).
		WithArgs(int64(1), date).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(3), int64(1), "Group Study Session", date, start, end, 4, "Smith", "John", cid, date))

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	out, err := r.ListByRoomAndDateForUpdate(context.Background(), tx, 1, date)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	rec := out[0]
	if rec.ID != 3 || rec.RoomID != 1 || !rec.StartTime.Equal(start) || !rec.EndTime.Equal(end) {
		t.Fatalf("scanned row mismatch: %+v", rec)
	}
	if rec.CustomerID == nil || *rec.CustomerID != cid {
		t.Fatalf("customer id mismatch: %+v", rec.CustomerID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	r := New(sqlx.NewDb(db, "sqlmock"))

	date := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	start := date.Add(10 * time.Hour)
	end := date.Add(11 * time.Hour)
	cid := int64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO room_reservations`).
		WithArgs(int64(1), "Group Study Session", date, start, end, 4, "Smith", "John", cid).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(11), int64(1), "Group Study Session", date, start, end, 4, "Smith", "John", cid, date))

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	created, err := r.Insert(context.Background(), tx, &model.Reservation{
		RoomID:           1,
		TopicDescription: "Group Study Session",
		ReserveDate:      date,
		StartTime:        start,
		EndTime:          end,
		GroupSize:        4,
		LastName:         "Smith",
		FirstName:        "John",
		CustomerID:       &cid,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("got id %d, want 11", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
