package book

type CreateBookReq struct {
	Name  string  `json:"b_name" validate:"required,max=50"`
	Topic *string `json:"topic" validate:"omitempty,max=20"`
}

type AddCopiesReq struct {
	Count int `json:"count" validate:"required,gt=0"`
}
