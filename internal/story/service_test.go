package story

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/doctext"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
)

type memStories struct {
	created []*entity.Story
}

func (m *memStories) Create(_ context.Context, userID, title string, thumbnailID *string) (*entity.Story, error) {
	st := &entity.Story{ID: uuid.New(), UserID: userID, Title: title, ThumbnailID: thumbnailID}
	m.created = append(m.created, st)
	return st, nil
}
func (m *memStories) Get(context.Context, uuid.UUID) (*entity.Story, error) {
	return nil, common.ErrNotFound
}
func (m *memStories) ListByUser(context.Context, string) ([]*entity.Story, error) { return nil, nil }
func (m *memStories) ListAll(context.Context) ([]*entity.Story, error)            { return nil, nil }
func (m *memStories) Delete(context.Context, uuid.UUID) error                     { return nil }

type memChapters struct {
	created []*entity.Chapter
}

func (m *memChapters) Create(_ context.Context, storyID uuid.UUID, chapterNum int, body json.RawMessage) (*entity.Chapter, error) {
	ch := &entity.Chapter{ID: uuid.New(), StoryID: storyID, ChapterNum: chapterNum, Body: body}
	m.created = append(m.created, ch)
	return ch, nil
}
func (m *memChapters) Get(context.Context, uuid.UUID) (*entity.Chapter, error) {
	return nil, common.ErrNotFound
}
func (m *memChapters) ListByStory(context.Context, uuid.UUID) ([]*entity.Chapter, error) {
	return m.created, nil
}

type memKeywords struct {
	batches map[uuid.UUID][]doctext.KeywordPosition
}

func (m *memKeywords) CreateBatch(_ context.Context, chapterID uuid.UUID, positions []doctext.KeywordPosition) ([]*entity.Keyword, error) {
	if m.batches == nil {
		m.batches = make(map[uuid.UUID][]doctext.KeywordPosition)
	}
	m.batches[chapterID] = positions
	return nil, nil
}
func (m *memKeywords) ListByChapter(context.Context, uuid.UUID) ([]*entity.Keyword, error) {
	return nil, nil
}

type stubSuggester struct {
	sets    [][]string
	err     error
	lastCtx string
	initial bool
}

func (s *stubSuggester) Generate(_ context.Context, chapterText string) ([][]string, error) {
	s.lastCtx = chapterText
	return s.sets, s.err
}
func (s *stubSuggester) GenerateInitial(context.Context) ([][]string, error) {
	s.initial = true
	return s.sets, s.err
}

func chapterDoc(text string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":%q}]}]}`, text))
}

func newTestService() (*Service, *memStories, *memChapters, *memKeywords, *stubSuggester) {
	stories := &memStories{}
	chapters := &memChapters{}
	keywords := &memKeywords{}
	suggest := &stubSuggester{sets: [][]string{{"a", "b", "c", "d"}}}
	return NewService(stories, chapters, keywords, suggest, nil), stories, chapters, keywords, suggest
}

func TestCreateStory(t *testing.T) {
	svc, stories, chapters, _, _ := newTestService()

	result, err := svc.CreateStory(context.Background(), CreateStoryInput{
		UserID: "user-1",
		Title:  "ぼうけん",
		Chapters: []ChapterInput{
			{ChapterNum: 2, Body: chapterDoc("にばんめ")},
			{ChapterNum: 1, Body: chapterDoc("いちばんめ")},
		},
	})
	require.NoError(t, err)
	require.Len(t, stories.created, 1)
	require.Len(t, chapters.created, 2)

	// chapters persisted in chapter number order
	assert.Equal(t, 1, chapters.created[0].ChapterNum)
	assert.Equal(t, 2, chapters.created[1].ChapterNum)

	require.Len(t, result.FeedbackTargets, 2)
	assert.Equal(t, "いちばんめ", result.FeedbackTargets[0].PlainText)
	assert.Equal(t, "にばんめ", result.FeedbackTargets[1].PlainText)
}

func TestCreateStoryPersistsKeywords(t *testing.T) {
	svc, _, chapters, keywords, _ := newTestService()

	body := json.RawMessage(`{"type":"doc","content":[{"type":"paragraph","content":[
		{"type":"text","text":"い"},
		{"type":"customWord","attrs":{"text":"ふね"}}
	]}]}`)

	_, err := svc.CreateStory(context.Background(), CreateStoryInput{
		UserID:   "user-1",
		Title:    "たび",
		Chapters: []ChapterInput{{ChapterNum: 1, Body: body}},
	})
	require.NoError(t, err)
	require.Len(t, chapters.created, 1)

	batch := keywords.batches[chapters.created[0].ID]
	require.Len(t, batch, 1)
	assert.Equal(t, "ふね", batch[0].Keyword)
	assert.Equal(t, 1, batch[0].Offset)
}

func TestCreateStoryValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateStoryInput
	}{
		{"blank title", CreateStoryInput{UserID: "u", Title: "  ", Chapters: []ChapterInput{{ChapterNum: 1, Body: chapterDoc("x")}}}},
		{"title too long", CreateStoryInput{UserID: "u", Title: strings.Repeat("あ", 16), Chapters: []ChapterInput{{ChapterNum: 1, Body: chapterDoc("x")}}}},
		{"no chapters", CreateStoryInput{UserID: "u", Title: "t"}},
		{"too many chapters", CreateStoryInput{UserID: "u", Title: "t", Chapters: []ChapterInput{
			{ChapterNum: 1, Body: chapterDoc("x")}, {ChapterNum: 2, Body: chapterDoc("x")},
			{ChapterNum: 3, Body: chapterDoc("x")}, {ChapterNum: 4, Body: chapterDoc("x")},
			{ChapterNum: 5, Body: chapterDoc("x")}, {ChapterNum: 6, Body: chapterDoc("x")},
		}}},
		{"chapter num zero", CreateStoryInput{UserID: "u", Title: "t", Chapters: []ChapterInput{{ChapterNum: 0, Body: chapterDoc("x")}}}},
		{"duplicate chapter num", CreateStoryInput{UserID: "u", Title: "t", Chapters: []ChapterInput{
			{ChapterNum: 1, Body: chapterDoc("x")}, {ChapterNum: 1, Body: chapterDoc("y")},
		}}},
		{"invalid chapter json", CreateStoryInput{UserID: "u", Title: "t", Chapters: []ChapterInput{
			{ChapterNum: 1, Body: json.RawMessage(`{"type":"paragraph"}`)},
		}}},
		{"chapter text too long", CreateStoryInput{UserID: "u", Title: "t", Chapters: []ChapterInput{
			{ChapterNum: 1, Body: chapterDoc(strings.Repeat("あ", 201))},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, stories, _, _, _ := newTestService()
			_, err := svc.CreateStory(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			assert.Empty(t, stories.created, "nothing should be persisted on validation failure")
		})
	}
}

func TestNextChapterKeywords(t *testing.T) {
	svc, _, _, _, suggest := newTestService()

	got, err := svc.NextChapterKeywords(context.Background(), chapterDoc("きょうのおはなし"))
	require.NoError(t, err)
	assert.Equal(t, suggest.sets, got)
	assert.Equal(t, "きょうのおはなし", suggest.lastCtx)
}

func TestNextChapterKeywordsRejectsLongText(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.NextChapterKeywords(context.Background(), chapterDoc(strings.Repeat("あ", 201)))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestNextChapterKeywordsRejectsInvalidDocument(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.NextChapterKeywords(context.Background(), json.RawMessage(`"just a string"`))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestInitialKeywords(t *testing.T) {
	svc, _, _, _, suggest := newTestService()

	got, err := svc.InitialKeywords(context.Background())
	require.NoError(t, err)
	assert.True(t, suggest.initial)
	assert.Equal(t, suggest.sets, got)
}
