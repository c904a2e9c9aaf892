package repository

import (
	"context"
	"fmt"
	"strings"

	"conference-hall/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeDirectory is the identity source for employees. Callers depend on
// this interface only, so a real directory can replace the demo one.
type EmployeeDirectory interface {
	// LookupEmployee finds an employee by employee number or email. Returns
	// nil, nil when nobody matches.
	LookupEmployee(ctx context.Context, userName string) (*entity.Employee, error)
	Authenticate(ctx context.Context, userName, password string) (bool, error)
	ListRoles(ctx context.Context, empNo string) ([]*entity.TempEmployeeRole, error)
}

const (
	demoEmpNo    = "60020656"
	demoEmail    = "demo@powergrid.in"
	demoPassword = "test123"
)

var demoRoleIDs = []int{1234, 4321}

type demoDirectory struct {
	employee     entity.Employee
	passwordHash []byte
	log          *zap.Logger
}

// NewDemoEmployeeDirectory returns the placeholder directory: one fixed
// employee, one shared password, two fixed roles.
func NewDemoEmployeeDirectory(log *zap.Logger) (EmployeeDirectory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	return &demoDirectory{
		employee: entity.Employee{
			EightDigitEmpNo: demoEmpNo,
			Name:            "Demo Employee",
			Email:           demoEmail,
			CellNo:          "9876543210",
			ImageGUID:       uuid.MustParse("12345678-1234-1234-1234-123456789012"),
		},
		passwordHash: hash,
		log:          log.With(zap.String("repository", "employee_directory")),
	}, nil
}

func (d *demoDirectory) LookupEmployee(ctx context.Context, userName string) (*entity.Employee, error) {
	switch strings.ToLower(strings.TrimSpace(userName)) {
	case demoEmpNo, demoEmail:
		emp := d.employee
		return &emp, nil
	}
	return nil, nil
}

// Authenticate accepts the demo password for any user name.
func (d *demoDirectory) Authenticate(ctx context.Context, userName, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(d.passwordHash, []byte(password))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		d.log.Debug("Password mismatch", zap.String("user_name", userName))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password: %w", err)
	}
	return true, nil
}

func (d *demoDirectory) ListRoles(ctx context.Context, empNo string) ([]*entity.TempEmployeeRole, error) {
	roles := make([]*entity.TempEmployeeRole, 0, len(demoRoleIDs))
	for _, roleID := range demoRoleIDs {
		roles = append(roles, &entity.TempEmployeeRole{EmpNo: empNo, RoleID: roleID})
	}
	return roles, nil
}
