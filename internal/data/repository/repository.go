package repository

import (
	"context"

	"conference-hall/internal/data/entity"
	"conference-hall/pkg/database"

	"go.uber.org/zap"
)

// UnitOfWork groups one repository per entity with a single commit boundary.
type UnitOfWork interface {
	ConferenceHalls() ConferenceHallRepository
	HallSessions() SessionRepository
	Bookings() BookingRepository
	BookingSessions() BookingSessionRepository
	TempEmployeeRoles() TempEmployeeRoleRepository
	RoomTypes() Repository[entity.RoomType]
	BookingStatuses() Repository[entity.BookingStatus]

	// Do runs fn as one commit boundary. Repository calls must use the ctx
	// passed to fn to be part of it. Returning nil saves the changes, any
	// error discards them. An ambient transaction in ctx is joined and left
	// to its owner.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type unitOfWork struct {
	db  database.PgxIface
	log *zap.Logger

	halls           ConferenceHallRepository
	sessions        SessionRepository
	bookings        BookingRepository
	bookingSessions BookingSessionRepository
	tempRoles       TempEmployeeRoleRepository
	roomTypes       Repository[entity.RoomType]
	bookingStatuses Repository[entity.BookingStatus]
}

func NewUnitOfWork(db database.PgxIface, log *zap.Logger) UnitOfWork {
	sessions := NewSessionRepository(db, log)
	return &unitOfWork{
		db:              db,
		log:             log.With(zap.String("component", "unit_of_work")),
		halls:           NewConferenceHallRepository(db, sessions, log),
		sessions:        sessions,
		bookings:        NewBookingRepository(db, log),
		bookingSessions: NewBookingSessionRepository(db, log),
		tempRoles:       NewTempEmployeeRoleRepository(db, log),
		roomTypes:       NewRoomTypeRepository(db, log),
		bookingStatuses: NewBookingStatusRepository(db, log),
	}
}

func (u *unitOfWork) ConferenceHalls() ConferenceHallRepository     { return u.halls }
func (u *unitOfWork) HallSessions() SessionRepository               { return u.sessions }
func (u *unitOfWork) Bookings() BookingRepository                   { return u.bookings }
func (u *unitOfWork) BookingSessions() BookingSessionRepository     { return u.bookingSessions }
func (u *unitOfWork) TempEmployeeRoles() TempEmployeeRoleRepository { return u.tempRoles }
func (u *unitOfWork) RoomTypes() Repository[entity.RoomType]        { return u.roomTypes }
func (u *unitOfWork) BookingStatuses() Repository[entity.BookingStatus] {
	return u.bookingStatuses
}

func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := database.WithinTx(ctx, u.db, fn); err != nil {
		u.log.Debug("Unit of work discarded", zap.Error(err))
		return err
	}
	return nil
}
