package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tempsotsusei/kotobanotane/gen/ent"
	"github.com/tempsotsusei/kotobanotane/gen/ent/feedback"
	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/utils"
)

type FeedbackRepository interface {
	Create(ctx context.Context, chapterID uuid.UUID, text string) (*entity.Feedback, error)
	ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]*entity.Feedback, error)
	ListByChapters(ctx context.Context, chapterIDs []uuid.UUID) ([]*entity.Feedback, error)
}

type feedbackRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFeedbackRepository(client *ent.Client, logger *slog.Logger) FeedbackRepository {
	return &feedbackRepository{
		client: client,
		logger: logger,
	}
}

func (r *feedbackRepository) Create(ctx context.Context, chapterID uuid.UUID, text string) (*entity.Feedback, error) {
	fb, err := r.client.Feedback.Create().
		SetChapterID(chapterID).
		SetFeedback(text).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create feedback", "chapter_id", chapterID, "error", err)
		return nil, common.WrapError(err, "create feedback")
	}
	return utils.ToFeedback(fb), nil
}

func (r *feedbackRepository) ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]*entity.Feedback, error) {
	rows, err := r.client.Feedback.Query().
		Where(feedback.ChapterID(chapterID)).
		Order(ent.Asc(feedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list feedbacks")
	}

	result := make([]*entity.Feedback, len(rows))
	for i, fb := range rows {
		result[i] = utils.ToFeedback(fb)
	}
	return result, nil
}

func (r *feedbackRepository) ListByChapters(ctx context.Context, chapterIDs []uuid.UUID) ([]*entity.Feedback, error) {
	if len(chapterIDs) == 0 {
		return nil, nil
	}
	rows, err := r.client.Feedback.Query().
		Where(feedback.ChapterIDIn(chapterIDs...)).
		Order(ent.Asc(feedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list feedbacks")
	}

	result := make([]*entity.Feedback, len(rows))
	for i, fb := range rows {
		result[i] = utils.ToFeedback(fb)
	}
	return result, nil
}
