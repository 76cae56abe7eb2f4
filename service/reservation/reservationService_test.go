package reservationsvc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"librarydesk/model"
	reservationrepo "librarydesk/repository/reservation"
	roomrepo "librarydesk/repository/room"
	"librarydesk/service/booking"

	"github.com/DATA-DOG/go-sqlmock"
)

type roomMock struct {
	lockFn func(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error)
	getFn  func(ctx context.Context, roomID int64) (*model.StudyRoom, error)
}

var _ roomrepo.Repo = (*roomMock)(nil)

func (m *roomMock) List(ctx context.Context) ([]model.StudyRoom, error) { return nil, nil }
func (m *roomMock) Get(ctx context.Context, roomID int64) (*model.StudyRoom, error) {
	return m.getFn(ctx, roomID)
}
func (m *roomMock) LockForUpdate(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
	return m.lockFn(ctx, tx, roomID)
}
func (m *roomMock) Create(ctx context.Context, capacity int) (*model.StudyRoom, error) {
	return nil, nil
}
func (m *roomMock) Delete(ctx context.Context, roomID int64) (bool, error) { return false, nil }

type resvMock struct {
	listLockedFn func(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error)
	insertFn     func(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error)
	getFn        func(ctx context.Context, id int64) (*model.Reservation, error)
	deleteFn     func(ctx context.Context, id int64) (bool, error)
}

var _ reservationrepo.Repo = (*resvMock)(nil)

func (m *resvMock) ListByRoomAndDateForUpdate(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error) {
	return m.listLockedFn(ctx, tx, roomID, date)
}
func (m *resvMock) ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]model.Reservation, error) {
	return nil, nil
}
func (m *resvMock) ListByCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error) {
	return nil, nil
}
func (m *resvMock) Insert(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error) {
	return m.insertFn(ctx, tx, rec)
}
func (m *resvMock) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	return m.getFn(ctx, id)
}
func (m *resvMock) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func ts(hour, min int) time.Time {
	return time.Date(2024, 5, 14, hour, min, 0, 0, time.UTC)
}

func baseReq() CreateReq {
	return CreateReq{
		RoomID:           1,
		TopicDescription: "Group Study Session",
		ReserveDate:      ts(0, 0),
		StartTime:        ts(10, 0),
		EndTime:          ts(11, 0),
		GroupSize:        4,
		LastName:         "Smith",
		FirstName:        "John",
		CustomerID:       7,
	}
}

func existing(start, end time.Time) model.Reservation {
	return model.Reservation{RoomID: 1, StartTime: start, EndTime: end}
}

func TestCreateInvalidInterval(t *testing.T) {
	db, mock := newDB(t)
	s := New(db, &roomMock{}, &resvMock{})

	req := baseReq()
	req.EndTime = req.StartTime
	if _, err := s.Create(context.Background(), req); booking.Code(err) != booking.ErrValidation {
		t.Fatalf("got code %q, want %q", booking.Code(err), booking.ErrValidation)
	}

	req.EndTime = ts(9, 0)
	if _, err := s.Create(context.Background(), req); booking.Code(err) != booking.ErrValidation {
		t.Fatalf("got code %q, want %q", booking.Code(err), booking.ErrValidation)
	}

	// Rejected before any transaction begins.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db activity: %v", err)
	}
}

func TestCreateRoomNotFound(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rooms := &roomMock{
		lockFn: func(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := New(db, rooms, &resvMock{})

	_, err := s.Create(context.Background(), baseReq())
	if booking.Code(err) != booking.ErrNotFound {
		t.Fatalf("got code %q, want %q", booking.Code(err), booking.ErrNotFound)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateCapacityExceeded(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rooms := &roomMock{
		lockFn: func(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
			return &model.StudyRoom{ID: 1, Capacity: 4}, nil
		},
	}
	inserted := false
	resv := &resvMock{
		listLockedFn: func(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error) {
			return nil, nil
		},
		insertFn: func(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error) {
			inserted = true
			return rec, nil
		},
	}
	s := New(db, rooms, resv)

	req := baseReq()
	req.GroupSize = 5
	_, err := s.Create(context.Background(), req)
	if booking.Code(err) != booking.ErrCapacity {
		t.Fatalf("got code %q, want %q", booking.Code(err), booking.ErrCapacity)
	}
	if inserted {
		t.Fatal("no row may be written on capacity violation")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateOverlapConflict(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rooms := &roomMock{
		lockFn: func(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
			return &model.StudyRoom{ID: 1, Capacity: 8}, nil
		},
	}
	resv := &resvMock{
		listLockedFn: func(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error) {
			return []model.Reservation{existing(ts(10, 30), ts(11, 30))}, nil
		},
		insertFn: func(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error) {
			t.Fatal("insert must not run on conflict")
			return nil, nil
		},
	}
	s := New(db, rooms, resv)

	_, err := s.Create(context.Background(), baseReq())
	if booking.Code(err) != booking.ErrConflict {
		t.Fatalf("got code %q, want %q", booking.Code(err), booking.ErrConflict)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAdjacentSlotAccepted(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rooms := &roomMock{
		lockFn: func(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
			return &model.StudyRoom{ID: 1, Capacity: 8}, nil
		},
	}
	resv := &resvMock{
		listLockedFn: func(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error) {
			// Existing booking ends exactly when the candidate starts.
			return []model.Reservation{existing(ts(9, 0), ts(10, 0))}, nil
		},
		insertFn: func(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error) {
			out := *rec
			out.ID = 11
			return &out, nil
		},
	}
	s := New(db, rooms, resv)

	created, err := s.Create(context.Background(), baseReq())
	if err != nil {
		t.Fatalf("adjacent slot rejected: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("got id %d, want 11", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRoundTripFields(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rooms := &roomMock{
		lockFn: func(ctx context.Context, tx *sql.Tx, roomID int64) (*model.StudyRoom, error) {
			return &model.StudyRoom{ID: 1, Capacity: 8}, nil
		},
	}
	resv := &resvMock{
		listLockedFn: func(ctx context.Context, tx *sql.Tx, roomID int64, date time.Time) ([]model.Reservation, error) {
			return nil, nil
		},
		insertFn: func(ctx context.Context, tx *sql.Tx, rec *model.Reservation) (*model.Reservation, error) {
			out := *rec
			out.ID = 3
			return &out, nil
		},
	}
	s := New(db, rooms, resv)

	req := baseReq()
	created, err := s.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.RoomID != req.RoomID ||
		created.TopicDescription != req.TopicDescription ||
		!created.StartTime.Equal(req.StartTime) ||
		!created.EndTime.Equal(req.EndTime) ||
		created.GroupSize != req.GroupSize ||
		created.LastName != req.LastName ||
		created.FirstName != req.FirstName {
		t.Fatalf("created record does not match request: %+v", created)
	}
	if created.CustomerID == nil || *created.CustomerID != req.CustomerID {
		t.Fatalf("customer id not carried: %+v", created.CustomerID)
	}
	// Date bucket normalized to midnight UTC.
	if !created.ReserveDate.Equal(ts(0, 0)) {
		t.Fatalf("reserve date not normalized: %v", created.ReserveDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteAuthorization(t *testing.T) {
	db, _ := newDB(t)

	owner := int64(7)
	resv := &resvMock{
		getFn: func(ctx context.Context, id int64) (*model.Reservation, error) {
			return &model.Reservation{ID: id, CustomerID: &owner}, nil
		},
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
	s := New(db, &roomMock{}, resv)

	// Another customer, not admin.
	if err := s.Delete(context.Background(), 8, false, 1); booking.Code(err) != booking.ErrForbidden {
		t.Fatalf("got code %q, want %q", booking.Code(err), booking.ErrForbidden)
	}
	// Owner.
	if err := s.Delete(context.Background(), 7, false, 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	// Admin deleting someone else's reservation.
	if err := s.Delete(context.Background(), 8, true, 1); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}
