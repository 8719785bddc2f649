package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a station/convenience-store location.
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
