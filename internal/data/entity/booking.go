package entity

import "time"

type ConferenceHallBooking struct {
	BookingID        int64     `db:"booking_id"`
	HallID           int64     `db:"hall_id"`
	RoomTypeID       int64     `db:"room_type_id"`
	Status           int64     `db:"status"` // booking_statuses.id
	EmpNo            string    `db:"emp_no"`
	BookingDate      time.Time `db:"booking_date"`
	Purpose          string    `db:"purpose"`
	ParticipantCount int       `db:"participant_count"`
	Remarks          string    `db:"remarks"`
	Audit

	Hall       *ConferenceHall                 `db:"-"`
	RoomType   *RoomType                       `db:"-"`
	StatusInfo *BookingStatus                  `db:"-"`
	Sessions   []*ConferenceHallBookingSession `db:"-"`
}

// ConferenceHallBookingSession links a booking to one hall session.
type ConferenceHallBookingSession struct {
	ID        int64 `db:"id"`
	BookingID int64 `db:"booking_id"`
	SessionID int64 `db:"session_id"`
	Status    int64 `db:"status"` // booking_statuses.id
	Audit

	Session    *ConferenceHallSession `db:"-"`
	StatusInfo *BookingStatus         `db:"-"`
}
