// Package utils maps generated ent rows onto the transfer structs the rest
// of the application passes around.
package utils

import (
	"github.com/tempsotsusei/kotobanotane/gen/ent"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
)

func ToStory(s *ent.Story) *entity.Story {
	return &entity.Story{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		ThumbnailID: s.ThumbnailID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToChapter(c *ent.Chapter) *entity.Chapter {
	return &entity.Chapter{
		ID:         c.ID,
		StoryID:    c.StoryID,
		ChapterNum: c.ChapterNum,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func ToKeyword(k *ent.Keyword) *entity.Keyword {
	return &entity.Keyword{
		ID:        k.ID,
		ChapterID: k.ChapterID,
		Keyword:   k.Keyword,
		Position:  k.Position,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

func ToFeedback(f *ent.Feedback) *entity.Feedback {
	return &entity.Feedback{
		ID:        f.ID,
		ChapterID: f.ChapterID,
		Feedback:  f.Feedback,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
