package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tempsotsusei/kotobanotane/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	storiesRepo   repository.StoryRepository
	chaptersRepo  repository.ChapterRepository
	feedbacksRepo repository.FeedbackRepository
	logger        *slog.Logger
}

func NewService(
	stories repository.StoryRepository,
	chapters repository.ChapterRepository,
	feedbacks repository.FeedbackRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		storiesRepo:   stories,
		chaptersRepo:  chapters,
		feedbacksRepo: feedbacks,
		logger:        logger,
	}
}

// ExportStoriesXLSX returns an XLSX workbook (as bytes) with one row per
// chapter: story metadata, chapter number, and the latest stored feedback.
func (s *Service) ExportStoriesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	stories, err := s.storiesRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Stories"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Story ID",
		"User ID",
		"Title",
		"Created At",
		"Chapter",
		"Feedback",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	chapterCount := 0
	for _, st := range stories {
		chapters, err := s.chaptersRepo.ListByStory(ctx, st.ID)
		if err != nil {
			return nil, fmt.Errorf("query chapters: %w", err)
		}

		ids := make([]uuid.UUID, len(chapters))
		for i, ch := range chapters {
			ids[i] = ch.ID
		}
		feedbacks, err := s.feedbacksRepo.ListByChapters(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("query feedbacks: %w", err)
		}
		// latest feedback per chapter wins
		latest := make(map[uuid.UUID]string, len(feedbacks))
		for _, fb := range feedbacks {
			latest[fb.ChapterID] = fb.Feedback
		}

		for _, ch := range chapters {
			write(1, row, st.ID.String())
			write(2, row, st.UserID)
			write(3, row, st.Title)
			write(4, row, st.CreatedAt.UTC().Format(time.RFC3339))
			write(5, row, ch.ChapterNum)
			write(6, row, latest[ch.ID])
			row++
			chapterCount++
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 38)
	_ = f.SetColWidth(sheet, "C", "C", 20)
	_ = f.SetColWidth(sheet, "D", "D", 22)
	_ = f.SetColWidth(sheet, "E", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"stories", len(stories),
		"chapters", chapterCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
