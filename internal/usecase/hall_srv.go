package usecase

import (
	"context"
	"fmt"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/data/repository"
	"conference-hall/internal/dto/request"
	"conference-hall/internal/dto/response"
	"conference-hall/pkg/apperror"

	"go.uber.org/zap"
)

type HallService interface {
	// ConfigureHall creates a hall and its sessions in one commit boundary.
	ConfigureHall(ctx context.Context, req *request.HallConfigurationRequest) (*response.HallResponse, error)
	AddHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error)
	UpdateHall(ctx context.Context, id int64, req *request.HallRequest) (*response.HallResponse, error)
	GetHallByID(ctx context.Context, id int64) (*response.HallResponse, error)
	GetAllHalls(ctx context.Context) ([]response.HallResponse, error)
	DeleteHall(ctx context.Context, id int64) error
}

type hallService struct {
	uow   repository.UnitOfWork
	audit auditor
	log   *zap.Logger
}

func NewHallService(uow repository.UnitOfWork, audit auditor, log *zap.Logger) HallService {
	return &hallService{
		uow:   uow,
		audit: audit,
		log:   log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) ConfigureHall(ctx context.Context, req *request.HallConfigurationRequest) (*response.HallResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("hall configuration is required")
	}
	if err := validate(req, "hall configuration"); err != nil {
		return nil, err
	}

	hall := &entity.ConferenceHall{
		HallName:           req.HallName,
		HallNameEn:         req.HallNameEn,
		HallNameHi:         req.HallNameHi,
		Capacity:           req.Capacity,
		Location:           req.Location,
		Floor:              req.Floor,
		RegionID:           req.RegionID,
		LocationID:         req.LocationID,
		IsApprovalRequired: req.IsApprovalRequired,
		Status:             true,
	}

	for i := range req.Sessions {
		session, err := buildSession(&req.Sessions[i], fmt.Sprintf("sessions[%d].", i))
		if err != nil {
			return nil, err
		}
		hall.Sessions = append(hall.Sessions, session)
	}

	// one timestamp for the hall and every session
	actor, from, now := s.audit.info(ctx)
	hall.Stamp(actor, from, now)
	for _, session := range hall.Sessions {
		session.Stamp(actor, from, now)
	}

	if err := s.uow.ConferenceHalls().CreateWithSessions(ctx, hall); err != nil {
		return nil, wrapErr(err, "configure hall")
	}

	s.log.Info("Hall configured",
		zap.Int64("hall_id", hall.HallID),
		zap.String("hall_name", hall.HallName),
		zap.Int("session_count", len(hall.Sessions)),
		zap.String("actor", actor),
	)

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) AddHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("hall is required")
	}
	if err := validate(req, "hall"); err != nil {
		return nil, err
	}

	hall := &entity.ConferenceHall{Status: activeOr(req.IsActive, true)}
	applyHall(hall, req)
	s.audit.stamp(ctx, &hall.Audit)

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		return s.uow.ConferenceHalls().Add(ctx, hall)
	})
	if err != nil {
		return nil, wrapErr(err, "add hall")
	}

	s.log.Info("Hall added", zap.Int64("hall_id", hall.HallID), zap.String("hall_name", hall.HallName))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) UpdateHall(ctx context.Context, id int64, req *request.HallRequest) (*response.HallResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("hall is required")
	}
	if err := validate(req, "hall"); err != nil {
		return nil, err
	}

	var hall *entity.ConferenceHall
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		hall, err = s.uow.ConferenceHalls().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if hall == nil {
			return apperror.NotFound("hall %d not found", id)
		}

		applyHall(hall, req)
		hall.Status = activeOr(req.IsActive, hall.Status)
		s.audit.touch(ctx, &hall.Audit)
		return s.uow.ConferenceHalls().Update(ctx, hall)
	})
	if err != nil {
		return nil, wrapErr(err, "update hall")
	}

	s.log.Info("Hall updated", zap.Int64("hall_id", id))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

// GetHallByID returns the hall with all of its sessions, active or not.
func (s *hallService) GetHallByID(ctx context.Context, id int64) (*response.HallResponse, error) {
	hall, err := s.uow.ConferenceHalls().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "get hall")
	}
	if hall == nil {
		return nil, apperror.NotFound("hall %d not found", id)
	}

	hall.Sessions, err = s.uow.HallSessions().ListByHall(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "get hall sessions")
	}

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) GetAllHalls(ctx context.Context) ([]response.HallResponse, error) {
	halls, err := s.uow.ConferenceHalls().GetAll(ctx)
	if err != nil {
		return nil, wrapErr(err, "list halls")
	}

	out := make([]response.HallResponse, 0, len(halls))
	for _, hall := range halls {
		if hall.Status {
			out = append(out, response.HallToResponse(hall))
		}
	}
	return out, nil
}

// DeleteHall marks the hall inactive. The row and its sessions stay.
func (s *hallService) DeleteHall(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		hall, err := s.uow.ConferenceHalls().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if hall == nil {
			return apperror.NotFound("hall %d not found", id)
		}

		hall.Status = false
		s.audit.touch(ctx, &hall.Audit)
		return s.uow.ConferenceHalls().Update(ctx, hall)
	})
	if err != nil {
		return wrapErr(err, "delete hall")
	}

	s.log.Info("Hall deactivated", zap.Int64("hall_id", id))
	return nil
}

func applyHall(hall *entity.ConferenceHall, req *request.HallRequest) {
	hall.HallName = req.HallName
	hall.HallNameEn = req.HallNameEn
	hall.HallNameHi = req.HallNameHi
	hall.Capacity = req.Capacity
	hall.Location = req.Location
	hall.Floor = req.Floor
	hall.RegionID = req.RegionID
	hall.LocationID = req.LocationID
	hall.IsApprovalRequired = req.IsApprovalRequired
}

// buildSession converts a validated session payload. field prefixes the
// field names reported on error.
func buildSession(req *request.SessionRequest, field string) (*entity.ConferenceHallSession, error) {
	session := &entity.ConferenceHallSession{Status: activeOr(req.IsActive, true)}
	if err := applySession(session, req, field); err != nil {
		return nil, err
	}
	return session, nil
}

func applySession(session *entity.ConferenceHallSession, req *request.SessionRequest, field string) error {
	start, err := entity.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return apperror.Validation("session validation failed", map[string]string{field + "start_time": err.Error()})
	}
	end, err := entity.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return apperror.Validation("session validation failed", map[string]string{field + "end_time": err.Error()})
	}
	if end <= start {
		return apperror.Validation("session validation failed", map[string]string{
			field + "end_time": "end_time must be after start_time",
		})
	}

	session.SessionName = req.SessionName
	session.SessionEn = req.SessionEn
	session.SessionHi = req.SessionHi
	session.StartTime = start
	session.EndTime = end
	session.Price = req.Price
	return nil
}
