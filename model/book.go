package model

type Book struct {
	ID    int64   `json:"book_id" db:"book_id"`
	Name  string  `json:"b_name" db:"b_name"`
	Topic *string `json:"topic,omitempty" db:"topic"`
}

type CopyStatus string

const (
	CopyAvailable   CopyStatus = "AVAILABLE"
	CopyUnavailable CopyStatus = "UNAVAILABLE"
)

type BookCopy struct {
	ID     int64      `json:"copy_id" db:"copy_id"`
	BookID int64      `json:"book_id" db:"book_id"`
	Status CopyStatus `json:"status" db:"status"`
}
