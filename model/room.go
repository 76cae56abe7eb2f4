package model

// StudyRoom is the bookable resource behind room reservations. Capacity is
// checked against the requested group size before a reservation commits.
type StudyRoom struct {
	ID       int64 `json:"room_id" db:"room_id"`
	Capacity int   `json:"capacity" db:"capacity"`
}
