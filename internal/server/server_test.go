package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempsotsusei/kotobanotane/internal/async"
	"github.com/tempsotsusei/kotobanotane/internal/doctext"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/export"
	"github.com/tempsotsusei/kotobanotane/internal/llm"
	"github.com/tempsotsusei/kotobanotane/internal/story"
)

type fakeStories struct{}

func (fakeStories) Create(_ context.Context, userID, title string, thumbnailID *string) (*entity.Story, error) {
	return &entity.Story{ID: uuid.New(), UserID: userID, Title: title, ThumbnailID: thumbnailID}, nil
}
func (fakeStories) Get(context.Context, uuid.UUID) (*entity.Story, error)       { return nil, nil }
func (fakeStories) ListByUser(context.Context, string) ([]*entity.Story, error) { return nil, nil }
func (fakeStories) ListAll(context.Context) ([]*entity.Story, error)            { return nil, nil }
func (fakeStories) Delete(context.Context, uuid.UUID) error                     { return nil }

type fakeChapters struct{}

func (fakeChapters) Create(_ context.Context, storyID uuid.UUID, chapterNum int, body json.RawMessage) (*entity.Chapter, error) {
	return &entity.Chapter{ID: uuid.New(), StoryID: storyID, ChapterNum: chapterNum, Body: body}, nil
}
func (fakeChapters) Get(context.Context, uuid.UUID) (*entity.Chapter, error) { return nil, nil }
func (fakeChapters) ListByStory(context.Context, uuid.UUID) ([]*entity.Chapter, error) {
	return nil, nil
}

type fakeKeywords struct{}

func (fakeKeywords) CreateBatch(context.Context, uuid.UUID, []doctext.KeywordPosition) ([]*entity.Keyword, error) {
	return nil, nil
}
func (fakeKeywords) ListByChapter(context.Context, uuid.UUID) ([]*entity.Keyword, error) {
	return nil, nil
}

type fakeFeedbacks struct {
	rows []*entity.Feedback
}

func (f *fakeFeedbacks) Create(_ context.Context, chapterID uuid.UUID, text string) (*entity.Feedback, error) {
	return &entity.Feedback{ID: uuid.New(), ChapterID: chapterID, Feedback: text}, nil
}
func (f *fakeFeedbacks) ListByChapter(context.Context, uuid.UUID) ([]*entity.Feedback, error) {
	return f.rows, nil
}
func (f *fakeFeedbacks) ListByChapters(context.Context, []uuid.UUID) ([]*entity.Feedback, error) {
	return f.rows, nil
}

type fakeSuggester struct {
	sets [][]string
	err  error
}

func (s *fakeSuggester) Generate(context.Context, string) ([][]string, error) {
	return s.sets, s.err
}
func (s *fakeSuggester) GenerateInitial(context.Context) ([][]string, error) {
	return s.sets, s.err
}

type capturingQueue struct {
	jobs []async.Job
	err  error
}

func (q *capturingQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}
func (q *capturingQueue) Shutdown(context.Context) {}

func newTestServer(suggest story.KeywordSuggester, feedbacks *fakeFeedbacks, queue async.Queue) *Server {
	stories := story.NewService(fakeStories{}, fakeChapters{}, fakeKeywords{}, suggest, nil)
	exporter := export.NewService(fakeStories{}, fakeChapters{}, feedbacks, nil)
	return NewServer(stories, exporter, feedbacks, queue, nil)
}

const validStoryBody = `{
	"storyTitle": "ぼうけん",
	"chapters": [
		{"chapterNum": 1, "chapterJson": {"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"はじまり"}]}]}}
	]
}`

func TestCreateStoryEndpoint(t *testing.T) {
	queue := &capturingQueue{}
	srv := newTestServer(&fakeSuggester{}, &fakeFeedbacks{}, queue)

	req := httptest.NewRequest(http.MethodPost, "/api/story", strings.NewReader(validStoryBody))
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["storyId"])
	assert.Len(t, queue.jobs, 1)
	assert.Equal(t, "はじまり", queue.jobs[0].PlainText)
}

func TestCreateStoryRequiresUserID(t *testing.T) {
	srv := newTestServer(&fakeSuggester{}, &fakeFeedbacks{}, &capturingQueue{})

	req := httptest.NewRequest(http.MethodPost, "/api/story", strings.NewReader(validStoryBody))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateStoryValidationFailure(t *testing.T) {
	srv := newTestServer(&fakeSuggester{}, &fakeFeedbacks{}, &capturingQueue{})

	body := `{"storyTitle": "", "chapters": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/story", strings.NewReader(body))
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateStoryQueueFullStillSucceeds(t *testing.T) {
	queue := &capturingQueue{err: async.ErrQueueFull}
	srv := newTestServer(&fakeSuggester{}, &fakeFeedbacks{}, queue)

	req := httptest.NewRequest(http.MethodPost, "/api/story", strings.NewReader(validStoryBody))
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNextChapterKeywordsEndpoint(t *testing.T) {
	suggest := &fakeSuggester{sets: [][]string{{"a", "b", "c", "d"}}}
	srv := newTestServer(suggest, &fakeFeedbacks{}, &capturingQueue{})

	body := `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"つぎのはなし"}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/story/chapter/next", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp keywordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, suggest.sets, resp.Keywords)
}

func TestNextChapterKeywordsModelUnavailable(t *testing.T) {
	suggest := &fakeSuggester{err: &llm.ClientError{Kind: llm.KindTimeout, Message: "timed out"}}
	srv := newTestServer(suggest, &fakeFeedbacks{}, &capturingQueue{})

	body := `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"x"}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/story/chapter/next", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["retryable"])
}

func TestNextChapterKeywordsInvalidDocument(t *testing.T) {
	srv := newTestServer(&fakeSuggester{}, &fakeFeedbacks{}, &capturingQueue{})

	req := httptest.NewRequest(http.MethodPost, "/api/story/chapter/next", strings.NewReader(`{"type":"note"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitialKeywordsEndpoint(t *testing.T) {
	suggest := &fakeSuggester{sets: [][]string{{"は", "る", "な", "つ"}}}
	srv := newTestServer(suggest, &fakeFeedbacks{}, &capturingQueue{})

	req := httptest.NewRequest(http.MethodGet, "/api/story/chapter/keywords", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp keywordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, suggest.sets, resp.Keywords)
}

func TestListFeedbacksEndpoint(t *testing.T) {
	chapterID := uuid.New()
	feedbacks := &fakeFeedbacks{rows: []*entity.Feedback{
		{ID: uuid.New(), ChapterID: chapterID, Feedback: "なおすところはなかったよ。", CreatedAt: time.Now()},
	}}
	srv := newTestServer(&fakeSuggester{}, feedbacks, &capturingQueue{})

	req := httptest.NewRequest(http.MethodGet, "/api/chapters/"+chapterID.String()+"/feedbacks", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Feedbacks []feedbackResponse `json:"feedbacks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Feedbacks, 1)
	assert.Equal(t, "なおすところはなかったよ。", resp.Feedbacks[0].Feedback)
}

func TestListFeedbacksInvalidID(t *testing.T) {
	srv := newTestServer(&fakeSuggester{}, &fakeFeedbacks{}, &capturingQueue{})

	req := httptest.NewRequest(http.MethodGet, "/api/chapters/not-a-uuid/feedbacks", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
