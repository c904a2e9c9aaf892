package usecase

import (
	"context"
	"slices"
	"time"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/data/repository"
	"conference-hall/internal/dto/request"
	"conference-hall/internal/dto/response"
	"conference-hall/pkg/apperror"

	"go.uber.org/zap"
)

type BookingService interface {
	// AddBooking stores the booking and one booking session per requested
	// hall session in one commit boundary.
	AddBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, id int64, req *request.BookingRequest) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, id int64, req *request.BookingStatusUpdateRequest) (*response.BookingResponse, error)
	UpdateBookingSessionStatus(ctx context.Context, bookingID, sessionID int64, req *request.BookingStatusUpdateRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error)
	GetAllBookings(ctx context.Context, filter BookingFilter) ([]response.BookingResponse, error)
}

// BookingFilter narrows booking listings. The zero value lists everything.
type BookingFilter struct {
	// ExcludeStatuses drops bookings and booking sessions in these statuses.
	ExcludeStatuses []int64
}

func (f BookingFilter) excludes(status int64) bool {
	return slices.Contains(f.ExcludeStatuses, status)
}

type bookingService struct {
	uow   repository.UnitOfWork
	audit auditor
	log   *zap.Logger
}

func NewBookingService(uow repository.UnitOfWork, audit auditor, log *zap.Logger) BookingService {
	return &bookingService{
		uow:   uow,
		audit: audit,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) AddBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("booking is required")
	}
	if err := validate(req, "booking"); err != nil {
		return nil, err
	}
	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		return nil, err
	}

	booking := &entity.ConferenceHallBooking{
		HallID:           req.HallID,
		RoomTypeID:       req.RoomTypeID,
		Status:           req.Status,
		EmpNo:            req.EmpNo,
		BookingDate:      bookingDate,
		Purpose:          req.Purpose,
		ParticipantCount: req.ParticipantCount,
		Remarks:          req.Remarks,
	}
	actor, from, now := s.audit.info(ctx)
	booking.Stamp(actor, from, now)

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		hall, err := s.checkReferences(ctx, booking, req.SessionIDs, nil)
		if err != nil {
			return err
		}
		if booking.Status == 0 {
			booking.Status = defaultBookingStatus(hall)
		} else if err := s.checkStatus(ctx, booking.Status); err != nil {
			return err
		}

		if err := s.uow.Bookings().Add(ctx, booking); err != nil {
			return err
		}
		for _, sessionID := range req.SessionIDs {
			bs := &entity.ConferenceHallBookingSession{
				BookingID: booking.BookingID,
				SessionID: sessionID,
				Status:    booking.Status,
			}
			bs.Stamp(actor, from, now)
			if err := s.uow.BookingSessions().Add(ctx, bs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err, "add booking")
	}

	s.log.Info("Booking added",
		zap.Int64("booking_id", booking.BookingID),
		zap.Int64("hall_id", booking.HallID),
		zap.String("emp_no", booking.EmpNo),
		zap.Int("session_count", len(req.SessionIDs)),
		zap.Int64("status", booking.Status),
	)

	return s.GetBookingByID(ctx, booking.BookingID)
}

// UpdateBooking rewrites the booking. Sessions no longer requested are
// cancelled, requested ones are added or reopened with the booking status.
// A cancelled or rejected booking closes every open session instead.
func (s *bookingService) UpdateBooking(ctx context.Context, id int64, req *request.BookingRequest) (*response.BookingResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("booking is required")
	}
	if err := validate(req, "booking"); err != nil {
		return nil, err
	}
	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		booking, err := s.uow.Bookings().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperror.NotFound("booking %d not found", id)
		}

		booking.HallID = req.HallID
		booking.RoomTypeID = req.RoomTypeID
		booking.EmpNo = req.EmpNo
		booking.BookingDate = bookingDate
		booking.Purpose = req.Purpose
		booking.ParticipantCount = req.ParticipantCount
		booking.Remarks = req.Remarks

		held := make(map[int64]bool, len(booking.Sessions))
		for _, bs := range booking.Sessions {
			held[bs.SessionID] = true
		}
		if _, err := s.checkReferences(ctx, booking, req.SessionIDs, held); err != nil {
			return err
		}
		if req.Status != 0 {
			if err := s.checkStatus(ctx, req.Status); err != nil {
				return err
			}
			booking.Status = req.Status
		}

		actor, from, now := s.audit.info(ctx)
		booking.Touch(actor, from, now)
		if err := s.uow.Bookings().Update(ctx, booking); err != nil {
			return err
		}

		existing := make(map[int64]bool, len(booking.Sessions))
		for _, bs := range booking.Sessions {
			existing[bs.SessionID] = true
			requested := slices.Contains(req.SessionIDs, bs.SessionID)
			switch {
			case isTerminal(booking.Status) && !isTerminal(bs.Status):
				bs.Status = booking.Status
			case isTerminal(booking.Status):
				continue
			case requested && isTerminal(bs.Status):
				bs.Status = booking.Status
			case !requested && !isTerminal(bs.Status):
				bs.Status = entity.BookingStatusCancelled
			default:
				continue
			}
			bs.Touch(actor, from, now)
			if err := s.uow.BookingSessions().Update(ctx, bs); err != nil {
				return err
			}
		}
		for _, sessionID := range req.SessionIDs {
			if existing[sessionID] {
				continue
			}
			bs := &entity.ConferenceHallBookingSession{BookingID: id, SessionID: sessionID, Status: booking.Status}
			bs.Stamp(actor, from, now)
			if err := s.uow.BookingSessions().Add(ctx, bs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err, "update booking")
	}

	s.log.Info("Booking updated", zap.Int64("booking_id", id))
	return s.GetBookingByID(ctx, id)
}

// UpdateBookingStatus sets the booking status. Cancelled and rejected
// cascade to every booking session not already closed. Concurrent updates
// resolve to the last commit.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int64, req *request.BookingStatusUpdateRequest) (*response.BookingResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("booking status is required")
	}
	if err := validate(req, "booking status"); err != nil {
		return nil, err
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.checkStatus(ctx, req.Status); err != nil {
			return err
		}

		booking, err := s.uow.Bookings().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperror.NotFound("booking %d not found", id)
		}

		actor, from, now := s.audit.info(ctx)
		booking.Status = req.Status
		if req.Remarks != "" {
			booking.Remarks = req.Remarks
		}
		booking.Touch(actor, from, now)
		if err := s.uow.Bookings().Update(ctx, booking); err != nil {
			return err
		}

		if !isTerminal(req.Status) {
			return nil
		}
		for _, bs := range booking.Sessions {
			if isTerminal(bs.Status) {
				continue
			}
			bs.Status = req.Status
			bs.Touch(actor, from, now)
			if err := s.uow.BookingSessions().Update(ctx, bs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err, "update booking status")
	}

	s.log.Info("Booking status updated", zap.Int64("booking_id", id), zap.Int64("status", req.Status))
	return s.GetBookingByID(ctx, id)
}

// UpdateBookingSessionStatus sets the status of one booked hall session.
func (s *bookingService) UpdateBookingSessionStatus(ctx context.Context, bookingID, sessionID int64, req *request.BookingStatusUpdateRequest) (*response.BookingResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("booking status is required")
	}
	if err := validate(req, "booking status"); err != nil {
		return nil, err
	}

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.checkStatus(ctx, req.Status); err != nil {
			return err
		}

		booking, err := s.uow.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperror.NotFound("booking %d not found", bookingID)
		}

		sessions, err := s.uow.BookingSessions().ListByBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(sessions, func(bs *entity.ConferenceHallBookingSession) bool {
			return bs.SessionID == sessionID
		})
		if i < 0 {
			return apperror.NotFound("session %d is not part of booking %d", sessionID, bookingID)
		}

		bs := sessions[i]
		bs.Status = req.Status
		s.audit.touch(ctx, &bs.Audit)
		return s.uow.BookingSessions().Update(ctx, bs)
	})
	if err != nil {
		return nil, wrapErr(err, "update booking session status")
	}

	s.log.Info("Booking session status updated",
		zap.Int64("booking_id", bookingID),
		zap.Int64("session_id", sessionID),
		zap.Int64("status", req.Status),
	)
	return s.GetBookingByID(ctx, bookingID)
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.uow.Bookings().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "get booking")
	}
	if booking == nil {
		return nil, apperror.NotFound("booking %d not found", id)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, filter BookingFilter) ([]response.BookingResponse, error) {
	bookings, err := s.uow.Bookings().GetAll(ctx)
	if err != nil {
		return nil, wrapErr(err, "list bookings")
	}

	out := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if filter.excludes(booking.Status) {
			continue
		}
		booking.Sessions = slices.DeleteFunc(booking.Sessions, func(bs *entity.ConferenceHallBookingSession) bool {
			return filter.excludes(bs.Status)
		})
		out = append(out, response.BookingToResponse(booking))
	}
	return out, nil
}

// checkReferences verifies hall, room type and sessions for a booking and
// returns the hall. Sessions in held are already booked and may have been
// deactivated since.
func (s *bookingService) checkReferences(ctx context.Context, booking *entity.ConferenceHallBooking, sessionIDs []int64, held map[int64]bool) (*entity.ConferenceHall, error) {
	hall, err := s.uow.ConferenceHalls().GetByID(ctx, booking.HallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, apperror.Invalid("hall %d does not exist", booking.HallID)
	}
	if !hall.Status {
		return nil, apperror.Invalid("hall %d is not active", booking.HallID)
	}
	if booking.ParticipantCount > hall.Capacity {
		return nil, apperror.Validation("booking validation failed", map[string]string{
			"participant_count": "participant_count exceeds hall capacity",
		})
	}

	roomType, err := s.uow.RoomTypes().GetByID(ctx, booking.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil || !roomType.Status {
		return nil, apperror.Invalid("room type %d does not exist", booking.RoomTypeID)
	}

	seen := make(map[int64]bool, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		if seen[sessionID] {
			return nil, apperror.Invalid("session %d is requested twice", sessionID)
		}
		seen[sessionID] = true

		session, err := s.uow.HallSessions().GetByID(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if session == nil || session.HallID != hall.HallID {
			return nil, apperror.Invalid("session %d does not belong to hall %d", sessionID, hall.HallID)
		}
		if !session.Status && !held[sessionID] {
			return nil, apperror.Invalid("session %d is not active", sessionID)
		}
	}
	return hall, nil
}

func (s *bookingService) checkStatus(ctx context.Context, status int64) error {
	st, err := s.uow.BookingStatuses().GetByID(ctx, status)
	if err != nil {
		return err
	}
	if st == nil || !st.Status {
		return apperror.Invalid("booking status %d does not exist", status)
	}
	return nil
}

func defaultBookingStatus(hall *entity.ConferenceHall) int64 {
	if hall.IsApprovalRequired {
		return entity.BookingStatusPending
	}
	return entity.BookingStatusApproved
}

func isTerminal(status int64) bool {
	return status == entity.BookingStatusCancelled || status == entity.BookingStatusRejected
}

func parseBookingDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperror.Validation("booking validation failed", map[string]string{
			"booking_date": "booking_date must be in 2006-01-02 format",
		})
	}
	return d, nil
}
