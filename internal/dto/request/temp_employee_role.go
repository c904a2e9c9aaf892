package request

type TempEmployeeRoleRequest struct {
	EmpNo         string `json:"emp_no" validate:"required,max=50"`
	ApplicationID int    `json:"application_id" validate:"gte=0"`
	RegionID      int    `json:"region_id" validate:"gte=0"`
	LocationID    int    `json:"location_id" validate:"gte=0"`
	DepartmentID  int    `json:"department_id" validate:"gte=0"`
	RoleID        int    `json:"role_id" validate:"gte=0"`
	IsAllowWrite  bool   `json:"is_allow_write"`
	IsActive      *bool  `json:"is_active,omitempty"`
}
