package dto

import "time"

// CreateUserRequest entrada para agregar un miembro a la organización.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=owner member viewer"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserListResponse lista de usuarios de la organización.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
