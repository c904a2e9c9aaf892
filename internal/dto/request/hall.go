package request

// HallConfigurationRequest creates a hall together with its sessions.
type HallConfigurationRequest struct {
	HallName           string           `json:"hall_name" validate:"required,max=100"`
	HallNameEn         string           `json:"hall_name_en" validate:"max=100"`
	HallNameHi         string           `json:"hall_name_hi" validate:"max=100"`
	Location           string           `json:"location" validate:"required,max=200"`
	Floor              string           `json:"floor" validate:"max=50"`
	Capacity           int              `json:"capacity" validate:"min=1,max=10000"`
	RegionID           int              `json:"region_id" validate:"gte=0"`
	LocationID         int              `json:"location_id" validate:"gte=0"`
	IsApprovalRequired bool             `json:"is_approval_required"`
	Sessions           []SessionRequest `json:"sessions" validate:"dive"`
}

type HallRequest struct {
	HallName           string `json:"hall_name" validate:"required,max=100"`
	HallNameEn         string `json:"hall_name_en" validate:"max=100"`
	HallNameHi         string `json:"hall_name_hi" validate:"max=100"`
	Location           string `json:"location" validate:"required,max=200"`
	Floor              string `json:"floor" validate:"max=50"`
	Capacity           int    `json:"capacity" validate:"min=1,max=10000"`
	RegionID           int    `json:"region_id" validate:"gte=0"`
	LocationID         int    `json:"location_id" validate:"gte=0"`
	IsApprovalRequired bool   `json:"is_approval_required"`
	IsActive           *bool  `json:"is_active,omitempty"`
}

type SessionRequest struct {
	SessionName string  `json:"session_name" validate:"required,max=100"`
	SessionEn   string  `json:"session_en" validate:"max=100"`
	SessionHi   string  `json:"session_hi" validate:"max=100"`
	StartTime   string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string  `json:"end_time" validate:"required,datetime=15:04"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
