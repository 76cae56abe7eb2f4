package model

import "time"

// Reservation is a room-ledger entry. Rows are never updated in place; a
// change is a delete plus a fresh conflict-checked create.
type Reservation struct {
	ID               int64     `json:"reservation_id" db:"reservation_id"`
	RoomID           int64     `json:"room_id" db:"room_id"`
	TopicDescription string    `json:"topic_description" db:"topic_description"`
	ReserveDate      time.Time `json:"reserve_date" db:"reserve_date"`
	StartTime        time.Time `json:"start_time" db:"start_time"`
	EndTime          time.Time `json:"end_time" db:"end_time"`
	GroupSize        int       `json:"group_size" db:"group_size"`
	LastName         string    `json:"l_name" db:"l_name"`
	FirstName        string    `json:"f_name" db:"f_name"`
	CustomerID       *int64    `json:"customer_id,omitempty" db:"customer_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
