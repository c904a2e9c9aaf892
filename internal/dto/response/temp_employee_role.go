package response

import (
	"conference-hall/internal/data/entity"
)

type TempEmployeeRoleResponse struct {
	ID            int64  `json:"id"`
	EmpNo         string `json:"emp_no"`
	ApplicationID int    `json:"application_id"`
	RegionID      int    `json:"region_id"`
	LocationID    int    `json:"location_id"`
	DepartmentID  int    `json:"department_id"`
	RoleID        int    `json:"role_id"`
	IsAllowWrite  bool   `json:"is_allow_write"`
	IsActive      bool   `json:"is_active"`
	AuditResponse
}

func TempEmployeeRoleToResponse(t *entity.TempEmployeeRole) TempEmployeeRoleResponse {
	return TempEmployeeRoleResponse{
		ID:            t.ID,
		EmpNo:         t.EmpNo,
		ApplicationID: t.ApplicationID,
		RegionID:      t.RegionID,
		LocationID:    t.LocationID,
		DepartmentID:  t.DepartmentID,
		RoleID:        t.RoleID,
		IsAllowWrite:  t.IsAllowWrite,
		IsActive:      t.Status,
		AuditResponse: AuditToResponse(t.Audit),
	}
}
