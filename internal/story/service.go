// Package story implements the story use cases: creating a story with its
// chapters and producing keyword suggestions for the next chapter.
package story

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/doctext"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/repository"
)

const (
	maxTitleLength = 15
	maxChapters    = 5
	maxTextLength  = 200
)

// KeywordSuggester produces keyword suggestion sets.
type KeywordSuggester interface {
	Generate(ctx context.Context, chapterText string) ([][]string, error)
	GenerateInitial(ctx context.Context) ([][]string, error)
}

// ChapterInput is one chapter in a creation request.
type ChapterInput struct {
	ChapterNum int
	Body       json.RawMessage
}

// FeedbackTarget names a stored chapter and the flattened text a feedback job
// should run on.
type FeedbackTarget struct {
	ChapterID uuid.UUID
	PlainText string
}

// CreateStoryInput carries a full story creation request.
type CreateStoryInput struct {
	UserID      string
	Title       string
	ThumbnailID *string
	Chapters    []ChapterInput
}

// CreateStoryResult is the creation outcome plus the chapters that still need
// feedback generated.
type CreateStoryResult struct {
	StoryID         uuid.UUID
	FeedbackTargets []FeedbackTarget
}

type Service struct {
	stories  repository.StoryRepository
	chapters repository.ChapterRepository
	keywords repository.KeywordRepository
	suggest  KeywordSuggester
	logger   *slog.Logger
}

func NewService(
	stories repository.StoryRepository,
	chapters repository.ChapterRepository,
	keywords repository.KeywordRepository,
	suggest KeywordSuggester,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		stories:  stories,
		chapters: chapters,
		keywords: keywords,
		suggest:  suggest,
		logger:   logger,
	}
}

type chapterDraft struct {
	num       int
	body      json.RawMessage
	plainText string
	keywords  []doctext.KeywordPosition
}

// CreateStory validates the request, persists the story with its chapters in
// chapter number order, stores the tagged keyword occurrences, and returns
// the chapters that need feedback jobs.
func (s *Service) CreateStory(ctx context.Context, in CreateStoryInput) (*CreateStoryResult, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	drafts, err := buildDrafts(in.Chapters)
	if err != nil {
		return nil, err
	}

	st, err := s.stories.Create(ctx, in.UserID, in.Title, in.ThumbnailID)
	if err != nil {
		return nil, err
	}

	targets := make([]FeedbackTarget, 0, len(drafts))
	for _, d := range drafts {
		ch, err := s.chapters.Create(ctx, st.ID, d.num, d.body)
		if err != nil {
			return nil, err
		}
		if _, err := s.keywords.CreateBatch(ctx, ch.ID, d.keywords); err != nil {
			return nil, err
		}
		targets = append(targets, FeedbackTarget{ChapterID: ch.ID, PlainText: d.plainText})
	}

	s.logger.Info("story.created", "story_id", st.ID, "chapters", len(drafts))
	return &CreateStoryResult{StoryID: st.ID, FeedbackTargets: targets}, nil
}

// NextChapterKeywords flattens the chapter document, checks its length, and
// asks the suggester for keyword sets.
func (s *Service) NextChapterKeywords(ctx context.Context, chapterJSON json.RawMessage) ([][]string, error) {
	analysis, err := doctext.Analyze(chapterJSON)
	if err != nil {
		return nil, common.NewAppError("VALIDATION_ERROR", err.Error(), common.ErrInvalidInput)
	}
	if err := validateTextLength(analysis.PlainText); err != nil {
		return nil, err
	}
	return s.suggest.Generate(ctx, analysis.PlainText)
}

// InitialKeywords produces suggestions when no chapter text exists yet.
func (s *Service) InitialKeywords(ctx context.Context) ([][]string, error) {
	return s.suggest.GenerateInitial(ctx)
}

// GetStory returns one story by id.
func (s *Service) GetStory(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	return s.stories.Get(ctx, id)
}

// ListChapters returns a story's chapters in chapter number order.
func (s *Service) ListChapters(ctx context.Context, storyID uuid.UUID) ([]*entity.Chapter, error) {
	return s.chapters.ListByStory(ctx, storyID)
}

func buildDrafts(chapters []ChapterInput) ([]chapterDraft, error) {
	if len(chapters) == 0 {
		return nil, common.ValidationError("chapters must not be empty")
	}
	if len(chapters) > maxChapters {
		return nil, common.ValidationError("chapters must not exceed 5 items")
	}

	seen := make(map[int]struct{}, len(chapters))
	drafts := make([]chapterDraft, 0, len(chapters))
	for _, in := range chapters {
		if in.ChapterNum < 1 {
			return nil, common.ValidationError("chapterNum must be greater than or equal to 1")
		}
		if _, dup := seen[in.ChapterNum]; dup {
			return nil, common.ValidationError("chapterNum must be unique")
		}
		seen[in.ChapterNum] = struct{}{}

		analysis, err := doctext.Analyze(in.Body)
		if err != nil {
			return nil, common.NewAppError("VALIDATION_ERROR", err.Error(), common.ErrInvalidInput)
		}
		if err := validateTextLength(analysis.PlainText); err != nil {
			return nil, err
		}
		drafts = append(drafts, chapterDraft{
			num:       in.ChapterNum,
			body:      in.Body,
			plainText: analysis.PlainText,
			keywords:  analysis.Keywords,
		})
	}

	sort.Slice(drafts, func(i, j int) bool { return drafts[i].num < drafts[j].num })
	return drafts, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return common.ValidationError("storyTitle must not be blank")
	}
	if doctext.UTF16Len(title) > maxTitleLength {
		return common.ValidationError("storyTitle must be 15 characters or less")
	}
	return nil
}

// validateTextLength bounds the flattened chapter body. Length counts UTF-16
// units, the same measure the frontend editor reports.
func validateTextLength(text string) error {
	if strings.TrimSpace(text) == "" || doctext.UTF16Len(text) > maxTextLength {
		return common.ValidationError("chapterJson text length must be between 1 and 200")
	}
	return nil
}
