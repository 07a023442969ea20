package dto

import "time"

// CreateOrganizationRequest entrada para crear una organización (password en texto, se hashea en el caso de uso).
type CreateOrganizationRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

// OrganizationResponse salida de una organización (sin password).
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateOrganizationResponse Created es true tanto si se insertó como si ya existía con ese email.
type CreateOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Created      bool                 `json:"created"`
}
