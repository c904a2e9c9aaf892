package entity

type TempEmployeeRole struct {
	ID            int64  `db:"id"`
	EmpNo         string `db:"emp_no"`
	ApplicationID int    `db:"application_id"`
	RegionID      int    `db:"region_id"`
	LocationID    int    `db:"location_id"`
	DepartmentID  int    `db:"department_id"`
	RoleID        int    `db:"role_id"`
	IsAllowWrite  bool   `db:"is_allow_write"`
	Status        bool   `db:"status"`
	Audit
}
