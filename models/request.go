package models

import (
	"time"

	"github.com/google/uuid"
)

// Request is a pending, unconfirmed ask by a user to join a team.
type Request struct {
	TeamID    uuid.UUID `json:"team_id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
