package room

type CreateRoomReq struct {
	Capacity int `json:"capacity" validate:"required,gt=0"`
}
