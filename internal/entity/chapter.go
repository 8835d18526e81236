package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Chapter represents one chapter of a story. Body is the editor document as
// stored, verbatim.
type Chapter struct {
	ID         uuid.UUID       `json:"id"`
	StoryID    uuid.UUID       `json:"story_id"`
	ChapterNum int             `json:"chapter_num"`
	Body       json.RawMessage `json:"body"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
