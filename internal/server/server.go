// Package server exposes the HTTP API: story creation, keyword suggestions,
// stored feedback, and the workbook export.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tempsotsusei/kotobanotane/internal/async"
	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/export"
	"github.com/tempsotsusei/kotobanotane/internal/llm"
	"github.com/tempsotsusei/kotobanotane/internal/repository"
	"github.com/tempsotsusei/kotobanotane/internal/story"
)

// userIDHeader carries the writer identity. Token verification happens
// upstream of this service.
const userIDHeader = "X-User-Id"

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	stories   *story.Service
	exporter  *export.Service
	feedbacks repository.FeedbackRepository
	queue     async.Queue
	log       *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(
	stories *story.Service,
	exporter *export.Service,
	feedbacks repository.FeedbackRepository,
	queue async.Queue,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		stories:   stories,
		exporter:  exporter,
		feedbacks: feedbacks,
		queue:     queue,
		log:       log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/story", s.handleCreateStory)
	r.Post("/api/story/chapter/next", s.handleNextChapterKeywords)
	r.Get("/api/story/chapter/keywords", s.handleInitialKeywords)
	r.Get("/api/chapters/{chapterID}/feedbacks", s.handleListFeedbacks)
	r.Get("/api/export/stories.xlsx", s.handleExportStories)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeError maps application errors onto HTTP statuses: bad input is 400,
// missing rows 404, retryable model failures 503, malformed model payloads
// 502, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var clientErr *llm.ClientError
	var invalidResp *llm.InvalidResponseError

	switch {
	case errors.Is(err, common.ErrInvalidInput):
		jsonError(w, userMessage(err), http.StatusBadRequest)
	case errors.Is(err, common.ErrNotFound):
		jsonError(w, "resource not found", http.StatusNotFound)
	case errors.Is(err, llm.ErrBlankInput):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &clientErr):
		s.log.Error("model call failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":     "keyword generation is temporarily unavailable",
			"retryable": true,
		})
	case errors.As(err, &invalidResp):
		s.log.Error("model returned unusable payload", "error", err)
		jsonError(w, "keyword generation returned an unusable result", http.StatusBadGateway)
	default:
		s.log.Error("request failed", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

// userMessage unwraps an AppError so the client sees the validation message
// without internal code prefixes.
func userMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
