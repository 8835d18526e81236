package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tempsotsusei/kotobanotane/gen/ent"
	"github.com/tempsotsusei/kotobanotane/gen/ent/chapter"
	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/utils"
)

type ChapterRepository interface {
	Create(ctx context.Context, storyID uuid.UUID, chapterNum int, body json.RawMessage) (*entity.Chapter, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Chapter, error)
	ListByStory(ctx context.Context, storyID uuid.UUID) ([]*entity.Chapter, error)
}

type chapterRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewChapterRepository(client *ent.Client, logger *slog.Logger) ChapterRepository {
	return &chapterRepository{
		client: client,
		logger: logger,
	}
}

func (r *chapterRepository) Create(ctx context.Context, storyID uuid.UUID, chapterNum int, body json.RawMessage) (*entity.Chapter, error) {
	ch, err := r.client.Chapter.Create().
		SetStoryID(storyID).
		SetChapterNum(chapterNum).
		SetBody(body).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create chapter", "story_id", storyID, "chapter_num", chapterNum, "error", err)
		return nil, common.WrapError(err, "create chapter")
	}
	return utils.ToChapter(ch), nil
}

func (r *chapterRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Chapter, error) {
	ch, err := r.client.Chapter.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get chapter")
	}
	return utils.ToChapter(ch), nil
}

// ListByStory returns the story's chapters in chapter number order.
func (r *chapterRepository) ListByStory(ctx context.Context, storyID uuid.UUID) ([]*entity.Chapter, error) {
	rows, err := r.client.Chapter.Query().
		Where(chapter.StoryID(storyID)).
		Order(ent.Asc(chapter.FieldChapterNum)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list chapters")
	}

	result := make([]*entity.Chapter, len(rows))
	for i, ch := range rows {
		result[i] = utils.ToChapter(ch)
	}
	return result, nil
}
