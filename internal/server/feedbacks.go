package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type feedbackResponse struct {
	ID        string `json:"id"`
	ChapterID string `json:"chapterId"`
	Feedback  string `json:"feedback"`
	CreatedAt string `json:"createdAt"`
}

// handleListFeedbacks returns the stored feedback rows for one chapter,
// oldest first. An empty list means the job has not finished yet.
func (s *Server) handleListFeedbacks(w http.ResponseWriter, r *http.Request) {
	chapterID, err := uuid.Parse(chi.URLParam(r, "chapterID"))
	if err != nil {
		jsonError(w, "invalid chapter id", http.StatusBadRequest)
		return
	}

	rows, err := s.feedbacks.ListByChapter(r.Context(), chapterID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := make([]feedbackResponse, len(rows))
	for i, fb := range rows {
		resp[i] = feedbackResponse{
			ID:        fb.ID.String(),
			ChapterID: fb.ChapterID.String(),
			Feedback:  fb.Feedback,
			CreatedAt: fb.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"feedbacks": resp})
}
