package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tempsotsusei/kotobanotane/internal/async"
	"github.com/tempsotsusei/kotobanotane/internal/story"
)

type chapterPayload struct {
	ChapterNum  int             `json:"chapterNum"`
	ChapterJSON json.RawMessage `json:"chapterJson"`
}

type createStoryRequest struct {
	StoryTitle  string           `json:"storyTitle"`
	ThumbnailID *string          `json:"thumbnailId"`
	Chapters    []chapterPayload `json:"chapters"`
}

type createStoryResponse struct {
	StoryID string `json:"storyId"`
}

// handleCreateStory stores a story with its chapters and fires one feedback
// job per chapter. Job submission failures do not fail the request; the
// story is already saved.
func (s *Server) handleCreateStory(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		jsonError(w, "user id is required", http.StatusBadRequest)
		return
	}

	var req createStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	chapters := make([]story.ChapterInput, len(req.Chapters))
	for i, ch := range req.Chapters {
		chapters[i] = story.ChapterInput{ChapterNum: ch.ChapterNum, Body: ch.ChapterJSON}
	}

	result, err := s.stories.CreateStory(r.Context(), story.CreateStoryInput{
		UserID:      userID,
		Title:       req.StoryTitle,
		ThumbnailID: req.ThumbnailID,
		Chapters:    chapters,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	for _, target := range result.FeedbackTargets {
		job := async.Job{
			ChapterID:   target.ChapterID,
			PlainText:   target.PlainText,
			SubmittedAt: time.Now(),
		}
		if err := s.queue.Enqueue(r.Context(), job); err != nil {
			s.log.Warn("feedback job not queued", "chapter_id", target.ChapterID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, createStoryResponse{StoryID: result.StoryID.String()})
}
