package booking

import (
	"fmt"
	"time"

	"librarydesk/model"
)

// Interval is a half-open [Start, End) time slot.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the slot has positive length. Zero-length and
// inverted slots are rejected before any lock is taken.
func (iv Interval) Valid() bool {
	return iv.End.After(iv.Start)
}

// Overlaps uses the half-open test: touching endpoints are not a conflict,
// so a booking may begin exactly when another ends.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// CheckReservation decides whether a candidate slot may be committed against
// the locked snapshot of a room's ledger. Capacity is checked first, then
// every existing slot; the requester's own bookings get no special treatment.
func CheckReservation(cand Interval, groupSize, capacity int, existing []Interval) error {
	if groupSize > capacity {
		return Errf(ErrCapacity, fmt.Sprintf("room capacity (%d) is less than group size (%d)", capacity, groupSize))
	}
	for _, ex := range existing {
		if Overlaps(cand, ex) {
			return Errf(ErrConflict, "this time slot overlaps with an existing reservation")
		}
	}
	return nil
}

// CheckCopyAvailable decides whether a copy may be checked out.
func CheckCopyAvailable(status model.CopyStatus) error {
	if status != model.CopyAvailable {
		return Errf(ErrConflict, "the book copy is not available for rental")
	}
	return nil
}
