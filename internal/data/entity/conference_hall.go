package entity

type ConferenceHall struct {
	HallID             int64  `db:"hall_id"`
	HallName           string `db:"hall_name"`
	HallNameEn         string `db:"hall_name_en"`
	HallNameHi         string `db:"hall_name_hi"`
	Capacity           int    `db:"capacity"`
	Location           string `db:"location"`
	Floor              string `db:"floor"`
	RegionID           int    `db:"region_id"`
	LocationID         int    `db:"location_id"`
	IsApprovalRequired bool   `db:"is_approval_required"`
	Status             bool   `db:"status"`
	Audit

	Sessions []*ConferenceHallSession `db:"-"`
}

type ConferenceHallSession struct {
	SessionID   int64     `db:"session_id"`
	HallID      int64     `db:"hall_id"`
	SessionName string    `db:"session_name"`
	SessionEn   string    `db:"session_en"`
	SessionHi   string    `db:"session_hi"`
	StartTime   TimeOfDay `db:"start_time"`
	EndTime     TimeOfDay `db:"end_time"`
	Price       float64   `db:"price"`
	Status      bool      `db:"status"`
	Audit
}
