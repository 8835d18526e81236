package entity

import (
	"time"

	"github.com/google/uuid"
)

// Story represents a story for data transfer between layers.
type Story struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	ThumbnailID *string   `json:"thumbnail_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
