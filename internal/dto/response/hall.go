package response

import (
	"conference-hall/internal/data/entity"
)

type HallResponse struct {
	HallID             int64             `json:"hall_id"`
	HallName           string            `json:"hall_name"`
	HallNameEn         string            `json:"hall_name_en,omitempty"`
	HallNameHi         string            `json:"hall_name_hi,omitempty"`
	Capacity           int               `json:"capacity"`
	Location           string            `json:"location"`
	Floor              string            `json:"floor,omitempty"`
	RegionID           int               `json:"region_id"`
	LocationID         int               `json:"location_id"`
	IsApprovalRequired bool              `json:"is_approval_required"`
	IsActive           bool              `json:"is_active"`
	Sessions           []SessionResponse `json:"sessions,omitempty"`
	AuditResponse
}

type SessionResponse struct {
	SessionID   int64   `json:"session_id"`
	HallID      int64   `json:"hall_id"`
	SessionName string  `json:"session_name"`
	SessionEn   string  `json:"session_en,omitempty"`
	SessionHi   string  `json:"session_hi,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"is_active"`
	AuditResponse
}

// Helper converters
func HallToResponse(hall *entity.ConferenceHall) HallResponse {
	resp := HallResponse{
		HallID:             hall.HallID,
		HallName:           hall.HallName,
		HallNameEn:         hall.HallNameEn,
		HallNameHi:         hall.HallNameHi,
		Capacity:           hall.Capacity,
		Location:           hall.Location,
		Floor:              hall.Floor,
		RegionID:           hall.RegionID,
		LocationID:         hall.LocationID,
		IsApprovalRequired: hall.IsApprovalRequired,
		IsActive:           hall.Status,
		AuditResponse:      AuditToResponse(hall.Audit),
	}
	for _, s := range hall.Sessions {
		resp.Sessions = append(resp.Sessions, SessionToResponse(s))
	}
	return resp
}

func SessionToResponse(s *entity.ConferenceHallSession) SessionResponse {
	return SessionResponse{
		SessionID:     s.SessionID,
		HallID:        s.HallID,
		SessionName:   s.SessionName,
		SessionEn:     s.SessionEn,
		SessionHi:     s.SessionHi,
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		Price:         s.Price,
		IsActive:      s.Status,
		AuditResponse: AuditToResponse(s.Audit),
	}
}
