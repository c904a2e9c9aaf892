package usecase

import (
	"context"
	"time"

	"conference-hall/internal/data/repository"
	"conference-hall/internal/dto/request"
	"conference-hall/internal/dto/response"
	"conference-hall/pkg/apperror"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Profile(ctx context.Context, empNo string) (*response.ProfileResponse, error)
}

type authService struct {
	directory repository.EmployeeDirectory
	config    utils.JWTConfig
	now       func() time.Time
	log       *zap.Logger
}

func NewAuthService(directory repository.EmployeeDirectory, config utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		directory: directory,
		config:    config,
		now:       time.Now,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if req == nil {
		return nil, apperror.Invalid("login request is required")
	}
	if err := validate(req, "login"); err != nil {
		return nil, err
	}

	emp, err := s.directory.LookupEmployee(ctx, req.UserName)
	if err != nil {
		return nil, wrapErr(err, "lookup employee")
	}
	if emp == nil {
		s.log.Warn("Login failed - unknown user", zap.String("user_name", req.UserName))
		return nil, apperror.Unauthorized("invalid user name or password")
	}

	ok, err := s.directory.Authenticate(ctx, req.UserName, req.Password)
	if err != nil {
		return nil, wrapErr(err, "authenticate employee")
	}
	if !ok {
		s.log.Warn("Login failed - wrong password", zap.String("emp_no", emp.EightDigitEmpNo))
		return nil, apperror.Unauthorized("invalid user name or password")
	}

	ttl := time.Duration(s.config.ExpiryHours) * time.Hour
	token, exp, err := utils.GenerateToken(s.config.Secret, emp.EightDigitEmpNo, emp.Name, ttl, s.now())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err))
		return nil, apperror.Internal(err, "issue token")
	}

	s.log.Info("Employee logged in", zap.String("emp_no", emp.EightDigitEmpNo))

	return &response.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Employee:  response.EmployeeToResponse(emp),
	}, nil
}

func (s *authService) Profile(ctx context.Context, empNo string) (*response.ProfileResponse, error) {
	if empNo == "" {
		return nil, apperror.Unauthorized("authentication required")
	}

	emp, err := s.directory.LookupEmployee(ctx, empNo)
	if err != nil {
		return nil, wrapErr(err, "lookup employee")
	}
	if emp == nil {
		return nil, apperror.NotFound("employee %s not found", empNo)
	}

	roles, err := s.directory.ListRoles(ctx, emp.EightDigitEmpNo)
	if err != nil {
		return nil, wrapErr(err, "list employee roles")
	}

	resp := &response.ProfileResponse{
		Employee: response.EmployeeToResponse(emp),
		RoleIDs:  make([]int, 0, len(roles)),
	}
	for _, role := range roles {
		resp.RoleIDs = append(resp.RoleIDs, role.RoleID)
	}
	return resp, nil
}
