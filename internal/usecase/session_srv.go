package usecase

import (
	"context"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/data/repository"
	"conference-hall/internal/dto/request"
	"conference-hall/internal/dto/response"
	"conference-hall/pkg/apperror"

	"go.uber.org/zap"
)

type SessionService interface {
	AddSession(ctx context.Context, hallID int64, req *request.SessionRequest) (*response.SessionResponse, error)
	UpdateSession(ctx context.Context, id int64, req *request.SessionRequest) (*response.SessionResponse, error)
	GetSessionByID(ctx context.Context, id int64) (*response.SessionResponse, error)
	// ListHallSessions returns the active sessions of a hall by start time.
	ListHallSessions(ctx context.Context, hallID int64) ([]response.SessionResponse, error)
	DeleteSession(ctx context.Context, id int64) error
}

type sessionService struct {
	uow   repository.UnitOfWork
	audit auditor
	log   *zap.Logger
}

func NewSessionService(uow repository.UnitOfWork, audit auditor, log *zap.Logger) SessionService {
	return &sessionService{
		uow:   uow,
		audit: audit,
		log:   log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) AddSession(ctx context.Context, hallID int64, req *request.SessionRequest) (*response.SessionResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("session is required")
	}
	if err := validate(req, "session"); err != nil {
		return nil, err
	}

	session, err := buildSession(req, "")
	if err != nil {
		return nil, err
	}
	session.HallID = hallID
	s.audit.stamp(ctx, &session.Audit)

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		hall, err := s.uow.ConferenceHalls().GetByID(ctx, hallID)
		if err != nil {
			return err
		}
		if hall == nil {
			return apperror.NotFound("hall %d not found", hallID)
		}
		return s.uow.HallSessions().Add(ctx, session)
	})
	if err != nil {
		return nil, wrapErr(err, "add session")
	}

	s.log.Info("Session added", zap.Int64("hall_id", hallID), zap.Int64("session_id", session.SessionID))

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id int64, req *request.SessionRequest) (*response.SessionResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("session is required")
	}
	if err := validate(req, "session"); err != nil {
		return nil, err
	}

	var session *entity.ConferenceHallSession
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		session, err = s.uow.HallSessions().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if session == nil {
			return apperror.NotFound("session %d not found", id)
		}

		if err := applySession(session, req, ""); err != nil {
			return err
		}
		session.Status = activeOr(req.IsActive, session.Status)
		s.audit.touch(ctx, &session.Audit)
		return s.uow.HallSessions().Update(ctx, session)
	})
	if err != nil {
		return nil, wrapErr(err, "update session")
	}

	s.log.Info("Session updated", zap.Int64("session_id", id))

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id int64) (*response.SessionResponse, error) {
	session, err := s.uow.HallSessions().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "get session")
	}
	if session == nil {
		return nil, apperror.NotFound("session %d not found", id)
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) ListHallSessions(ctx context.Context, hallID int64) ([]response.SessionResponse, error) {
	hall, err := s.uow.ConferenceHalls().GetByID(ctx, hallID)
	if err != nil {
		return nil, wrapErr(err, "list sessions")
	}
	if hall == nil {
		return nil, apperror.NotFound("hall %d not found", hallID)
	}

	sessions, err := s.uow.HallSessions().ListByHall(ctx, hallID)
	if err != nil {
		return nil, wrapErr(err, "list sessions")
	}

	out := make([]response.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		if session.Status {
			out = append(out, response.SessionToResponse(session))
		}
	}
	return out, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		session, err := s.uow.HallSessions().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if session == nil {
			return apperror.NotFound("session %d not found", id)
		}

		session.Status = false
		s.audit.touch(ctx, &session.Audit)
		return s.uow.HallSessions().Update(ctx, session)
	})
	if err != nil {
		return wrapErr(err, "delete session")
	}

	s.log.Info("Session deactivated", zap.Int64("session_id", id))
	return nil
}
