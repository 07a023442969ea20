package dto

import "time"

// CreateSuggestionRequest entrada para enviar una sugerencia.
type CreateSuggestionRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
}

// SuggestionResponse salida de una sugerencia.
type SuggestionResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}
