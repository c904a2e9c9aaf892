package request

type BookingRequest struct {
	HallID           int64   `json:"hall_id" validate:"required,gt=0"`
	RoomTypeID       int64   `json:"room_type_id" validate:"required,gt=0"`
	Status           int64   `json:"status" validate:"omitempty,gt=0"`
	EmpNo            string  `json:"emp_no" validate:"required,max=50"`
	BookingDate      string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Purpose          string  `json:"purpose" validate:"required,max=500"`
	ParticipantCount int     `json:"participant_count" validate:"min=1,max=10000"`
	Remarks          string  `json:"remarks" validate:"max=500"`
	SessionIDs       []int64 `json:"session_ids" validate:"required,min=1,dive,gt=0"`
}

type BookingStatusUpdateRequest struct {
	Status  int64  `json:"status" validate:"required,gt=0"`
	Remarks string `json:"remarks" validate:"max=500"`
}
