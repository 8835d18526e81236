package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/llm"
)

type stubGenerator struct {
	items []llm.FeedbackItem
	err   error
}

func (s *stubGenerator) Generate(context.Context, string) ([]llm.FeedbackItem, error) {
	return s.items, s.err
}

type recordingStore struct {
	chapterID uuid.UUID
	text      string
	err       error
	calls     int
}

func (s *recordingStore) Create(_ context.Context, chapterID uuid.UUID, text string) (*entity.Feedback, error) {
	s.calls++
	s.chapterID = chapterID
	s.text = text
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Feedback{ID: uuid.New(), ChapterID: chapterID, Feedback: text}, nil
}

func TestGenerateAndSaveStoresFormattedText(t *testing.T) {
	gen := &stubGenerator{items: []llm.FeedbackItem{
		{Original: "a", Corrected: "b", Reason: "c"},
	}}
	store := &recordingStore{}
	chapterID := uuid.New()

	NewRunner(gen, store, nil).GenerateAndSave(context.Background(), chapterID, "text")

	require.Equal(t, 1, store.calls)
	assert.Equal(t, chapterID, store.chapterID)
	assert.Equal(t, "［ことばそのまま］\na\n［なおしたぶん］\nb\n［どうして？］\nc", store.text)
}

func TestGenerateAndSaveFailureWritesFixedMessage(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model down")}
	store := &recordingStore{}

	NewRunner(gen, store, nil).GenerateAndSave(context.Background(), uuid.New(), "text")

	require.Equal(t, 1, store.calls)
	assert.Equal(t, "フィードバック生成に失敗しました。", store.text)
}

func TestGenerateAndSaveNoIssues(t *testing.T) {
	store := &recordingStore{}

	NewRunner(&stubGenerator{}, store, nil).GenerateAndSave(context.Background(), uuid.New(), "text")

	require.Equal(t, 1, store.calls)
	assert.Equal(t, "なおすところはなかったよ。", store.text)
}

func TestGenerateAndSaveStoreErrorDoesNotPanic(t *testing.T) {
	store := &recordingStore{err: errors.New("db down")}

	NewRunner(&stubGenerator{}, store, nil).GenerateAndSave(context.Background(), uuid.New(), "text")

	assert.Equal(t, 1, store.calls)
}

func TestFormatItems(t *testing.T) {
	assert.Equal(t, "なおすところはなかったよ。", FormatItems(nil))

	got := FormatItems([]llm.FeedbackItem{
		{Original: "o1", Corrected: "c1", Reason: "r1"},
		{Original: "o2", Corrected: "c2", Reason: "r2"},
	})
	want := "［ことばそのまま］\no1\n［なおしたぶん］\nc1\n［どうして？］\nr1" +
		"\n\n" +
		"［ことばそのまま］\no2\n［なおしたぶん］\nc2\n［どうして？］\nr2"
	assert.Equal(t, want, got)
}
