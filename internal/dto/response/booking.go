package response

import (
	"conference-hall/internal/data/entity"
)

type BookingResponse struct {
	BookingID        int64                    `json:"booking_id"`
	HallID           int64                    `json:"hall_id"`
	HallName         string                   `json:"hall_name,omitempty"`
	RoomTypeID       int64                    `json:"room_type_id"`
	RoomType         string                   `json:"room_type,omitempty"`
	Status           int64                    `json:"status"`
	StatusName       string                   `json:"status_name,omitempty"`
	EmpNo            string                   `json:"emp_no"`
	BookingDate      string                   `json:"booking_date"`
	Purpose          string                   `json:"purpose"`
	ParticipantCount int                      `json:"participant_count"`
	Remarks          string                   `json:"remarks,omitempty"`
	Sessions         []BookingSessionResponse `json:"sessions"`
	AuditResponse
}

type BookingSessionResponse struct {
	ID          int64  `json:"id"`
	SessionID   int64  `json:"session_id"`
	SessionName string `json:"session_name,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Status      int64  `json:"status"`
	StatusName  string `json:"status_name,omitempty"`
	AuditResponse
}

func BookingToResponse(b *entity.ConferenceHallBooking) BookingResponse {
	resp := BookingResponse{
		BookingID:        b.BookingID,
		HallID:           b.HallID,
		RoomTypeID:       b.RoomTypeID,
		Status:           b.Status,
		EmpNo:            b.EmpNo,
		BookingDate:      b.BookingDate.Format("2006-01-02"),
		Purpose:          b.Purpose,
		ParticipantCount: b.ParticipantCount,
		Remarks:          b.Remarks,
		Sessions:         make([]BookingSessionResponse, 0, len(b.Sessions)),
		AuditResponse:    AuditToResponse(b.Audit),
	}
	if b.Hall != nil {
		resp.HallName = b.Hall.HallName
	}
	if b.RoomType != nil {
		resp.RoomType = b.RoomType.Name
	}
	if b.StatusInfo != nil {
		resp.StatusName = b.StatusInfo.Name
	}
	for _, bs := range b.Sessions {
		resp.Sessions = append(resp.Sessions, BookingSessionToResponse(bs))
	}
	return resp
}

func BookingSessionToResponse(bs *entity.ConferenceHallBookingSession) BookingSessionResponse {
	resp := BookingSessionResponse{
		ID:            bs.ID,
		SessionID:     bs.SessionID,
		Status:        bs.Status,
		AuditResponse: AuditToResponse(bs.Audit),
	}
	if bs.Session != nil {
		resp.SessionName = bs.Session.SessionName
		resp.StartTime = bs.Session.StartTime.String()
		resp.EndTime = bs.Session.EndTime.String()
	}
	if bs.StatusInfo != nil {
		resp.StatusName = bs.StatusInfo.Name
	}
	return resp
}
