package request

// LookupRequest creates or renames a master data entry (room type, booking status).
type LookupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}
