package response

import (
	"conference-hall/internal/data/entity"
)

// LookupResponse is shared by room types and booking statuses.
type LookupResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	AuditResponse
}

func LookupToResponse(l *entity.Lookup) LookupResponse {
	return LookupResponse{
		ID:            l.ID,
		Name:          l.Name,
		IsActive:      l.Status,
		AuditResponse: AuditToResponse(l.Audit),
	}
}
