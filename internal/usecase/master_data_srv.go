package usecase

import (
	"context"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/data/repository"
	"conference-hall/internal/dto/request"
	"conference-hall/internal/dto/response"
	"conference-hall/pkg/apperror"
	"conference-hall/pkg/cache"

	"go.uber.org/zap"
)

// MasterDataService manages one lookup table (room types, booking statuses).
type MasterDataService interface {
	// List returns active entries. Results are cached until the next write.
	List(ctx context.Context) ([]response.LookupResponse, error)
	GetByID(ctx context.Context, id int64) (*response.LookupResponse, error)
	Create(ctx context.Context, req *request.LookupRequest) (*response.LookupResponse, error)
	Update(ctx context.Context, id int64, req *request.LookupRequest) (*response.LookupResponse, error)
	Delete(ctx context.Context, id int64) error
}

type masterDataService[T any, P entity.LookupRecord[T]] struct {
	name  string
	uow   repository.UnitOfWork
	repo  repository.Repository[T]
	cache cache.Cache
	audit auditor
	log   *zap.Logger
}

func NewMasterDataService[T any, P entity.LookupRecord[T]](
	name string,
	uow repository.UnitOfWork,
	repo repository.Repository[T],
	c cache.Cache,
	audit auditor,
	log *zap.Logger,
) MasterDataService {
	return &masterDataService[T, P]{
		name:  name,
		uow:   uow,
		repo:  repo,
		cache: c,
		audit: audit,
		log:   log.With(zap.String("service", name)),
	}
}

func (s *masterDataService[T, P]) listKey() string {
	return s.name + ":active"
}

func (s *masterDataService[T, P]) List(ctx context.Context) ([]response.LookupResponse, error) {
	var cached []response.LookupResponse
	found, err := s.cache.Get(ctx, s.listKey(), &cached)
	if err != nil {
		s.log.Warn("Cache read failed", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, wrapErr(err, "list "+s.name)
	}

	out := make([]response.LookupResponse, 0, len(rows))
	for _, row := range rows {
		base := P(row).Base()
		if base.Status {
			out = append(out, response.LookupToResponse(base))
		}
	}

	if err := s.cache.Set(ctx, s.listKey(), out); err != nil {
		s.log.Warn("Cache write failed", zap.Error(err))
	}
	return out, nil
}

func (s *masterDataService[T, P]) GetByID(ctx context.Context, id int64) (*response.LookupResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "get "+s.name)
	}
	if row == nil {
		return nil, apperror.NotFound("%s %d not found", s.name, id)
	}

	resp := response.LookupToResponse(P(row).Base())
	return &resp, nil
}

func (s *masterDataService[T, P]) Create(ctx context.Context, req *request.LookupRequest) (*response.LookupResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("%s entry is required", s.name)
	}
	if err := validate(req, s.name); err != nil {
		return nil, err
	}

	row := new(T)
	base := P(row).Base()
	base.Name = req.Name
	base.Status = activeOr(req.IsActive, true)
	s.audit.stamp(ctx, &base.Audit)

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		return s.repo.Add(ctx, row)
	})
	if err != nil {
		return nil, wrapErr(err, "create "+s.name)
	}
	s.invalidate(ctx)

	s.log.Info("Master data created", zap.Int64("id", base.ID), zap.String("name", base.Name))

	resp := response.LookupToResponse(base)
	return &resp, nil
}

func (s *masterDataService[T, P]) Update(ctx context.Context, id int64, req *request.LookupRequest) (*response.LookupResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("%s entry is required", s.name)
	}
	if err := validate(req, s.name); err != nil {
		return nil, err
	}

	var base *entity.Lookup
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		row, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return apperror.NotFound("%s %d not found", s.name, id)
		}

		base = P(row).Base()
		base.Name = req.Name
		base.Status = activeOr(req.IsActive, base.Status)
		s.audit.touch(ctx, &base.Audit)
		return s.repo.Update(ctx, row)
	})
	if err != nil {
		return nil, wrapErr(err, "update "+s.name)
	}
	s.invalidate(ctx)

	s.log.Info("Master data updated", zap.Int64("id", id))

	resp := response.LookupToResponse(base)
	return &resp, nil
}

func (s *masterDataService[T, P]) Delete(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		row, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return apperror.NotFound("%s %d not found", s.name, id)
		}

		base := P(row).Base()
		base.Status = false
		s.audit.touch(ctx, &base.Audit)
		return s.repo.Update(ctx, row)
	})
	if err != nil {
		return wrapErr(err, "delete "+s.name)
	}
	s.invalidate(ctx)

	s.log.Info("Master data deactivated", zap.Int64("id", id))
	return nil
}

func (s *masterDataService[T, P]) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, s.listKey()); err != nil {
		s.log.Warn("Cache invalidation failed", zap.Error(err))
	}
}
