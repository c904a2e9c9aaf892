package response

import (
	"conference-hall/internal/data/entity"
	"time"
)

type AuditResponse struct {
	CreatedBy   string    `json:"created_by"`
	CreatedOn   time.Time `json:"created_on"`
	CreatedFrom string    `json:"created_from"`
	UpdatedBy   string    `json:"updated_by"`
	UpdatedOn   time.Time `json:"updated_on"`
	UpdatedFrom string    `json:"updated_from"`
}

func AuditToResponse(a entity.Audit) AuditResponse {
	return AuditResponse{
		CreatedBy:   a.CreatedBy,
		CreatedOn:   a.CreatedOn,
		CreatedFrom: a.CreatedFrom,
		UpdatedBy:   a.UpdatedBy,
		UpdatedOn:   a.UpdatedOn,
		UpdatedFrom: a.UpdatedFrom,
	}
}
