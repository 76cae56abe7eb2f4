package rental

type CreateRentalReq struct {
	BorrowDate         string `json:"borrow_date" validate:"required"`
	ExpectedReturnDate string `json:"expected_return_date" validate:"required"`
	CustomerID         int64  `json:"customer_id" validate:"omitempty,gt=0"`
	CopyID             int64  `json:"copy_id" validate:"required,gt=0"`
}

type ReturnRentalReq struct {
	ActualReturnDate string `json:"actual_return_date" validate:"required"`
}
