package entity

import (
	"time"

	"github.com/google/uuid"
)

// Keyword is one tagged word occurrence within a chapter. Position is the
// UTF-16 offset of the word's first character in the chapter plain text.
type Keyword struct {
	ID        uuid.UUID `json:"id"`
	ChapterID uuid.UUID `json:"chapter_id"`
	Keyword   string    `json:"keyword"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
