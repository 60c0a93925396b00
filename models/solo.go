package models

import (
	"time"

	"github.com/google/uuid"
)

// Solo records a user's intent to participate in an event without a team.
// The (event_id, user_id) pair is the primary key.
type Solo struct {
	EventID   uuid.UUID `json:"event_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
