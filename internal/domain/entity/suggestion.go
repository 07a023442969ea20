package entity

import "time"

// Suggestion sugerencia enviada por una organización.
type Suggestion struct {
	ID             string
	OrganizationID string
	Title          string
	Description    string
	CreatedAt      time.Time
}
