package booking

import (
	"math/rand"
	"testing"
	"time"

	"librarydesk/model"
)

var day = time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

func slot(startHour, endHour int) Interval {
	return Interval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestIntervalValid(t *testing.T) {
	if !slot(10, 11).Valid() {
		t.Fatal("positive-length slot should be valid")
	}
	if slot(10, 10).Valid() {
		t.Fatal("zero-length slot should be invalid")
	}
	if slot(11, 10).Valid() {
		t.Fatal("inverted slot should be invalid")
	}
}

func TestOverlapsAdjacency(t *testing.T) {
	// Touching endpoints are allowed: one booking may start exactly when
	// another ends.
	if Overlaps(slot(10, 11), slot(11, 12)) {
		t.Fatal("adjacent slots must not overlap")
	}
	if Overlaps(slot(11, 12), slot(10, 11)) {
		t.Fatal("adjacent slots must not overlap (reversed)")
	}
	if !Overlaps(slot(10, 11), slot(10, 11)) {
		t.Fatal("identical slots must overlap")
	}
	if !Overlaps(slot(10, 12), slot(11, 13)) {
		t.Fatal("partially overlapping slots must overlap")
	}
	if !Overlaps(slot(9, 14), slot(10, 11)) {
		t.Fatal("contained slot must overlap")
	}
}

// Property: Overlaps is symmetric and matches the half-open definition
// s < e' && e > s' for random slot pairs.
func TestOverlapsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		aStart := rng.Intn(22)
		aEnd := aStart + 1 + rng.Intn(23-aStart)
		bStart := rng.Intn(22)
		bEnd := bStart + 1 + rng.Intn(23-bStart)

		a, b := slot(aStart, aEnd), slot(bStart, bEnd)
		want := aStart < bEnd && aEnd > bStart

		if got := Overlaps(a, b); got != want {
			t.Fatalf("Overlaps(%v,%v)=%v want %v", a, b, got, want)
		}
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("Overlaps not symmetric for %v %v", a, b)
		}
		// Accepting both implies disjointness.
		if !Overlaps(a, b) && !(aEnd <= bStart || bEnd <= aStart) {
			t.Fatalf("non-overlapping pair %v %v is not disjoint", a, b)
		}
	}
}

func TestCheckReservation(t *testing.T) {
	existing := []Interval{slot(10, 11), slot(14, 16)}

	if err := CheckReservation(slot(11, 12), 4, 6, existing); err != nil {
		t.Fatalf("adjacent slot rejected: %v", err)
	}
	if err := CheckReservation(slot(10, 12), 4, 6, existing); Code(err) != ErrConflict {
		t.Fatalf("overlap got code %q, want %q", Code(err), ErrConflict)
	}
	if err := CheckReservation(slot(11, 12), 5, 4, nil); Code(err) != ErrCapacity {
		t.Fatalf("oversize group got code %q, want %q", Code(err), ErrCapacity)
	}
	// Capacity wins over overlap: report the group problem first.
	if err := CheckReservation(slot(10, 12), 7, 4, existing); Code(err) != ErrCapacity {
		t.Fatalf("got code %q, want %q", Code(err), ErrCapacity)
	}
}

func TestCheckCopyAvailable(t *testing.T) {
	if err := CheckCopyAvailable(model.CopyAvailable); err != nil {
		t.Fatalf("available copy rejected: %v", err)
	}
	if err := CheckCopyAvailable(model.CopyUnavailable); Code(err) != ErrConflict {
		t.Fatalf("unavailable copy got code %q, want %q", Code(err), ErrConflict)
	}
}
