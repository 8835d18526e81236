package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tempsotsusei/kotobanotane/gen/ent"
	"github.com/tempsotsusei/kotobanotane/gen/ent/keyword"
	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/doctext"
	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/utils"
)

type KeywordRepository interface {
	CreateBatch(ctx context.Context, chapterID uuid.UUID, positions []doctext.KeywordPosition) ([]*entity.Keyword, error)
	ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]*entity.Keyword, error)
}

type keywordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewKeywordRepository(client *ent.Client, logger *slog.Logger) KeywordRepository {
	return &keywordRepository{
		client: client,
		logger: logger,
	}
}

// CreateBatch stores every keyword occurrence of one chapter in a single bulk
// insert, preserving extraction order.
func (r *keywordRepository) CreateBatch(ctx context.Context, chapterID uuid.UUID, positions []doctext.KeywordPosition) ([]*entity.Keyword, error) {
	if len(positions) == 0 {
		return nil, nil
	}

	builders := make([]*ent.KeywordCreate, len(positions))
	for i, p := range positions {
		builders[i] = r.client.Keyword.Create().
			SetChapterID(chapterID).
			SetKeyword(p.Keyword).
			SetPosition(p.Offset)
	}
	rows, err := r.client.Keyword.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create keywords", "chapter_id", chapterID, "count", len(positions), "error", err)
		return nil, common.WrapError(err, "create keywords")
	}

	result := make([]*entity.Keyword, len(rows))
	for i, kw := range rows {
		result[i] = utils.ToKeyword(kw)
	}
	return result, nil
}

func (r *keywordRepository) ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]*entity.Keyword, error) {
	rows, err := r.client.Keyword.Query().
		Where(keyword.ChapterID(chapterID)).
		Order(ent.Asc(keyword.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list keywords")
	}

	result := make([]*entity.Keyword, len(rows))
	for i, kw := range rows {
		result[i] = utils.ToKeyword(kw)
	}
	return result, nil
}
