package model

import "time"

type RentalStatus string

const (
	RentalBorrowed RentalStatus = "BORROWED"
	RentalReturned RentalStatus = "RETURNED"
	RentalLate     RentalStatus = "LATE"
)

// Rental is a copy-ledger entry; rows are historical and never deleted.
// The copy's status column, not this row, is what gates a new checkout.
type Rental struct {
	ID                 int64        `json:"rental_id" db:"rental_id"`
	Status             RentalStatus `json:"rental_status" db:"rental_status"`
	BorrowDate         time.Time    `json:"borrow_date" db:"borrow_date"`
	ExpectedReturnDate time.Time    `json:"expected_return_date" db:"expected_return_date"`
	ActualReturnDate   *time.Time   `json:"actual_return_date,omitempty" db:"actual_return_date"`
	CustomerID         int64        `json:"customer_id" db:"customer_id"`
	CopyID             int64        `json:"copy_id" db:"copy_id"`
}
