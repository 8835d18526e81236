package server

import (
	"encoding/json"
	"io"
	"net/http"
)

type keywordsResponse struct {
	Keywords [][]string `json:"keywords"`
}

// handleNextChapterKeywords takes a chapter document as the request body and
// returns keyword suggestion sets for the next chapter.
func (s *Server) handleNextChapterKeywords(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		jsonError(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		jsonError(w, "request body must be valid JSON", http.StatusBadRequest)
		return
	}

	keywords, err := s.stories.NextChapterKeywords(r.Context(), body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, keywordsResponse{Keywords: keywords})
}

// handleInitialKeywords returns seed suggestions for a writer with no
// chapter text yet.
func (s *Server) handleInitialKeywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := s.stories.InitialKeywords(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, keywordsResponse{Keywords: keywords})
}
