package models

import (
	"time"

	"github.com/google/uuid"
)

// Join is a confirmed membership of a user in a team, keyed by the
// (team_id, user_id) pair.
type Join struct {
	TeamID    uuid.UUID `json:"team_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
