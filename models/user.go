package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created from the identity provider's login on first
// sign-in. Name mirrors the provider login and is unique.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IconURL   string    `json:"icon_url"`
	Profile   string    `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
