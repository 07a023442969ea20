package dto

import "time"

// CreateAccessLogRequest entrada para registrar un acceso.
type CreateAccessLogRequest struct {
	Action    string `json:"action" validate:"required,max=60"`
	IP        string `json:"ip" validate:"omitempty,ip"`
	UserAgent string `json:"user_agent" validate:"max=500"`
}

// AccessLogResponse salida de un registro de acceso.
type AccessLogResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Action         string    `json:"action"`
	IP             string    `json:"ip"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at"`
}
