package models

import "time"

// UserProfile is the identity record provisioned on first app launch.
// The ID is the identifier supplied by the mobile client, not generated
// server-side.
type UserProfile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
