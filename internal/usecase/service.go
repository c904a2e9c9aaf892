package usecase

import (
	"context"
	"errors"
	"time"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/data/repository"
	"conference-hall/pkg/apperror"
	"conference-hall/pkg/cache"
	"conference-hall/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Service struct {
	Hall             HallService
	Session          SessionService
	Booking          BookingService
	TempEmployeeRole TempEmployeeRoleService
	RoomType         MasterDataService
	BookingStatus    MasterDataService
	Auth             AuthService
}

func NewService(
	uow repository.UnitOfWork,
	directory repository.EmployeeDirectory,
	c cache.Cache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	a := auditor{source: config.App.AuditSource, now: time.Now}

	return &Service{
		Hall:             NewHallService(uow, a, log),
		Session:          NewSessionService(uow, a, log),
		Booking:          NewBookingService(uow, a, log),
		TempEmployeeRole: NewTempEmployeeRoleService(uow, a, log),
		RoomType:         NewMasterDataService("room_types", uow, uow.RoomTypes(), c, a, log),
		BookingStatus:    NewMasterDataService("booking_statuses", uow, uow.BookingStatuses(), c, a, log),
		Auth:             NewAuthService(directory, config.JWT, log),
	}
}

// auditor resolves who and where a write comes from.
type auditor struct {
	source string
	now    func() time.Time
}

// info returns the actor, source and a single timestamp for one operation.
func (a auditor) info(ctx context.Context) (actor, from string, now time.Time) {
	actor, from = utils.AuditActor(ctx, a.source)
	return actor, from, a.now().UTC()
}

func (a auditor) stamp(ctx context.Context, audit *entity.Audit) {
	actor, from, now := a.info(ctx)
	audit.Stamp(actor, from, now)
}

func (a auditor) touch(ctx context.Context, audit *entity.Audit) {
	actor, from, now := a.info(ctx)
	audit.Touch(actor, from, now)
}

// validate runs the struct constraints of a request payload.
func validate(req any, what string) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation(what+" validation failed", errs)
	}
	return nil
}

// wrapErr keeps typed errors as they are and classifies the rest.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return &apperror.Error{Kind: apperror.KindNotFound, Message: op + ": record not found", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &apperror.Error{Kind: apperror.KindConflict, Message: op + ": duplicate record", Err: err}
		case "23503":
			return &apperror.Error{Kind: apperror.KindInvalid, Message: op + ": referenced record does not exist", Err: err}
		case "23514":
			return &apperror.Error{Kind: apperror.KindInvalid, Message: op + ": value out of allowed range", Err: err}
		}
	}

	return apperror.Internal(err, "%s", op)
}

func activeOr(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}
