package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tempsotsusei/kotobanotane/gen/ent"
	"github.com/tempsotsusei/kotobanotane/gen/ent/story"
	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/utils"
)

type StoryRepository interface {
	Create(ctx context.Context, userID, title string, thumbnailID *string) (*entity.Story, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Story, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Story, error)
	ListAll(ctx context.Context) ([]*entity.Story, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStoryRepository(client *ent.Client, logger *slog.Logger) StoryRepository {
	return &storyRepository{
		client: client,
		logger: logger,
	}
}

func (r *storyRepository) Create(ctx context.Context, userID, title string, thumbnailID *string) (*entity.Story, error) {
	builder := r.client.Story.Create().
		SetUserID(userID).
		SetTitle(title).
		SetNillableThumbnailID(thumbnailID)

	st, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create story", "user_id", userID, "error", err)
		return nil, common.WrapError(err, "create story")
	}
	return utils.ToStory(st), nil
}

func (r *storyRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	st, err := r.client.Story.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get story")
	}
	return utils.ToStory(st), nil
}

// ListByUser returns the user's stories, newest first.
func (r *storyRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Story, error) {
	rows, err := r.client.Story.Query().
		Where(story.UserID(userID)).
		Order(ent.Desc(story.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list stories", "user_id", userID, "error", err)
		return nil, common.WrapError(err, "list stories")
	}

	result := make([]*entity.Story, len(rows))
	for i, st := range rows {
		result[i] = utils.ToStory(st)
	}
	return result, nil
}

func (r *storyRepository) ListAll(ctx context.Context) ([]*entity.Story, error) {
	rows, err := r.client.Story.Query().
		Order(ent.Asc(story.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list stories")
	}

	result := make([]*entity.Story, len(rows))
	for i, st := range rows {
		result[i] = utils.ToStory(st)
	}
	return result, nil
}

func (r *storyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Story.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(err, "delete story")
	}
	return nil
}
