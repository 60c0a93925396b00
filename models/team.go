package models

import (
	"time"

	"github.com/google/uuid"
)

// Team belongs to one Event and is led by one User (the reader).
type Team struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	ReaderID  uuid.UUID `json:"reader_id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
