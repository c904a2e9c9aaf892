package repository

import (
	"context"
	"strings"

	"conference-hall/internal/data/entity"
	"conference-hall/pkg/database"

	"go.uber.org/zap"
)

type TempEmployeeRoleRepository interface {
	Repository[entity.TempEmployeeRole]
	// Search matches active roles whose employee number contains term, newest first.
	Search(ctx context.Context, term string) ([]*entity.TempEmployeeRole, error)
}

type tempEmployeeRoleRepository struct {
	*crudRepository[entity.TempEmployeeRole]
}

func NewTempEmployeeRoleRepository(db database.PgxIface, log *zap.Logger) TempEmployeeRoleRepository {
	return &tempEmployeeRoleRepository{
		crudRepository: newCrudRepository(db, log, tempEmployeeRoleTable),
	}
}

func (r *tempEmployeeRoleRepository) Search(ctx context.Context, term string) ([]*entity.TempEmployeeRole, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.list(ctx, "status = TRUE", "id DESC")
	}
	return r.list(ctx, "status = TRUE AND emp_no ILIKE $1", "id DESC", "%"+escapeLike(term)+"%")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var tempEmployeeRoleTable = table[entity.TempEmployeeRole]{
	name: "temp_employee_roles",
	key:  "id",
	columns: withAudit(
		"emp_no", "application_id", "region_id", "location_id",
		"department_id", "role_id", "is_allow_write", "status",
	),
	values: func(t *entity.TempEmployeeRole) []any {
		return append([]any{
			t.EmpNo, t.ApplicationID, t.RegionID, t.LocationID,
			t.DepartmentID, t.RoleID, t.IsAllowWrite, t.Status,
		}, auditValues(&t.Audit)...)
	},
	scan: func(row scanner) (*entity.TempEmployeeRole, error) {
		var t entity.TempEmployeeRole
		dest := append([]any{
			&t.ID, &t.EmpNo, &t.ApplicationID, &t.RegionID, &t.LocationID,
			&t.DepartmentID, &t.RoleID, &t.IsAllowWrite, &t.Status,
		}, auditDest(&t.Audit)...)
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		return &t, nil
	},
	id:    func(t *entity.TempEmployeeRole) int64 { return t.ID },
	setID: func(t *entity.TempEmployeeRole, id int64) { t.ID = id },
}
