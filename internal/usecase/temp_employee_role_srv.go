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

type TempEmployeeRoleService interface {
	// GetAll lists active roles, newest first.
	GetAll(ctx context.Context) ([]response.TempEmployeeRoleResponse, error)
	Search(ctx context.Context, term string) ([]response.TempEmployeeRoleResponse, error)
	GetByID(ctx context.Context, id int64) (*response.TempEmployeeRoleResponse, error)
	Create(ctx context.Context, req *request.TempEmployeeRoleRequest) (*response.TempEmployeeRoleResponse, error)
	Update(ctx context.Context, id int64, req *request.TempEmployeeRoleRequest) (*response.TempEmployeeRoleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type tempEmployeeRoleService struct {
	uow   repository.UnitOfWork
	audit auditor
	log   *zap.Logger
}

func NewTempEmployeeRoleService(uow repository.UnitOfWork, audit auditor, log *zap.Logger) TempEmployeeRoleService {
	return &tempEmployeeRoleService{
		uow:   uow,
		audit: audit,
		log:   log.With(zap.String("service", "temp_employee_role")),
	}
}

func (s *tempEmployeeRoleService) GetAll(ctx context.Context) ([]response.TempEmployeeRoleResponse, error) {
	return s.Search(ctx, "")
}

func (s *tempEmployeeRoleService) Search(ctx context.Context, term string) ([]response.TempEmployeeRoleResponse, error) {
	roles, err := s.uow.TempEmployeeRoles().Search(ctx, term)
	if err != nil {
		return nil, wrapErr(err, "search temp employee roles")
	}

	out := make([]response.TempEmployeeRoleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, response.TempEmployeeRoleToResponse(role))
	}
	return out, nil
}

func (s *tempEmployeeRoleService) GetByID(ctx context.Context, id int64) (*response.TempEmployeeRoleResponse, error) {
	role, err := s.uow.TempEmployeeRoles().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "get temp employee role")
	}
	if role == nil {
		return nil, apperror.NotFound("temp employee role %d not found", id)
	}

	resp := response.TempEmployeeRoleToResponse(role)
	return &resp, nil
}

func (s *tempEmployeeRoleService) Create(ctx context.Context, req *request.TempEmployeeRoleRequest) (*response.TempEmployeeRoleResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("temp employee role is required")
	}
	if err := validate(req, "temp employee role"); err != nil {
		return nil, err
	}

	role := &entity.TempEmployeeRole{Status: activeOr(req.IsActive, true)}
	applyTempEmployeeRole(role, req)
	s.audit.stamp(ctx, &role.Audit)

	err := s.uow.Do(ctx, func(ctx context.Context) error {
		return s.uow.TempEmployeeRoles().Add(ctx, role)
	})
	if err != nil {
		return nil, wrapErr(err, "create temp employee role")
	}

	s.log.Info("Temp employee role created", zap.Int64("id", role.ID), zap.String("emp_no", role.EmpNo))

	resp := response.TempEmployeeRoleToResponse(role)
	return &resp, nil
}

func (s *tempEmployeeRoleService) Update(ctx context.Context, id int64, req *request.TempEmployeeRoleRequest) (*response.TempEmployeeRoleResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("temp employee role is required")
	}
	if err := validate(req, "temp employee role"); err != nil {
		return nil, err
	}

	var role *entity.TempEmployeeRole
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		role, err = s.uow.TempEmployeeRoles().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			return apperror.NotFound("temp employee role %d not found", id)
		}

		applyTempEmployeeRole(role, req)
		role.Status = activeOr(req.IsActive, role.Status)
		s.audit.touch(ctx, &role.Audit)
		return s.uow.TempEmployeeRoles().Update(ctx, role)
	})
	if err != nil {
		return nil, wrapErr(err, "update temp employee role")
	}

	s.log.Info("Temp employee role updated", zap.Int64("id", id))

	resp := response.TempEmployeeRoleToResponse(role)
	return &resp, nil
}

func (s *tempEmployeeRoleService) Delete(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		role, err := s.uow.TempEmployeeRoles().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			return apperror.NotFound("temp employee role %d not found", id)
		}

		role.Status = false
		s.audit.touch(ctx, &role.Audit)
		return s.uow.TempEmployeeRoles().Update(ctx, role)
	})
	if err != nil {
		return wrapErr(err, "delete temp employee role")
	}

	s.log.Info("Temp employee role deactivated", zap.Int64("id", id))
	return nil
}

func applyTempEmployeeRole(role *entity.TempEmployeeRole, req *request.TempEmployeeRoleRequest) {
	role.EmpNo = req.EmpNo
	role.ApplicationID = req.ApplicationID
	role.RegionID = req.RegionID
	role.LocationID = req.LocationID
	role.DepartmentID = req.DepartmentID
	role.RoleID = req.RoleID
	role.IsAllowWrite = req.IsAllowWrite
}
