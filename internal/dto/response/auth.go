package response

import (
	"conference-hall/internal/data/entity"
	"time"
)

type EmployeeResponse struct {
	EmpNo     string `json:"emp_no"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CellNo    string `json:"cell_no,omitempty"`
	ImageGUID string `json:"image_guid,omitempty"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Employee  EmployeeResponse `json:"employee"`
}

type ProfileResponse struct {
	Employee EmployeeResponse `json:"employee"`
	RoleIDs  []int            `json:"role_ids"`
}

// Helper converters
func EmployeeToResponse(emp *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpNo:     emp.EightDigitEmpNo,
		Name:      emp.Name,
		Email:     emp.Email,
		CellNo:    emp.CellNo,
		ImageGUID: emp.ImageGUID.String(),
	}
}
