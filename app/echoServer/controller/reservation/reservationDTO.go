package reservation

type CreateReservationReq struct {
	RoomID           int64  `json:"room_id" validate:"required,gt=0"`
	TopicDescription string `json:"topic_description" validate:"required,max=200"`
	ReserveDate      string `json:"reserve_date" validate:"required"`
	StartTime        string `json:"start_time" validate:"required"`
	EndTime          string `json:"end_time" validate:"required"`
	GroupSize        int    `json:"group_size" validate:"required,gt=0"`
	LastName         string `json:"l_name" validate:"required,max=50"`
	FirstName        string `json:"f_name" validate:"required,max=50"`
}
