package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is the stored grammar feedback text for one chapter.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	ChapterID uuid.UUID `json:"chapter_id"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
