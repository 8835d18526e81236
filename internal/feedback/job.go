// Package feedback runs the generate-and-save job that turns chapter text
// into stored grammar feedback.
package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tempsotsusei/kotobanotane/internal/entity"
	"github.com/tempsotsusei/kotobanotane/internal/llm"
)

// Fixed messages stored when generation fails or finds nothing to fix. The
// row always gets written so the reader never sees a blank.
const (
	failureMessage = "フィードバック生成に失敗しました。"
	noIssueMessage = "なおすところはなかったよ。"
)

// Generator produces grammar corrections for chapter text.
type Generator interface {
	Generate(ctx context.Context, chapterText string) ([]llm.FeedbackItem, error)
}

// Store persists one feedback row per job.
type Store interface {
	Create(ctx context.Context, chapterID uuid.UUID, text string) (*entity.Feedback, error)
}

// Runner executes feedback jobs. A generation failure is absorbed into the
// fixed failure message; only the persistence write itself can fail the job.
type Runner struct {
	gen    Generator
	store  Store
	logger *slog.Logger
}

func NewRunner(gen Generator, store Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{gen: gen, store: store, logger: logger}
}

// GenerateAndSave generates feedback for the chapter and writes exactly one
// row, falling back to the failure message when generation errors out.
func (r *Runner) GenerateAndSave(ctx context.Context, chapterID uuid.UUID, chapterText string) {
	text := failureMessage
	items, err := r.gen.Generate(ctx, chapterText)
	if err != nil {
		r.logger.Warn("job.feedback.generate_failed", "chapter_id", chapterID, "error", err)
	} else {
		text = FormatItems(items)
	}

	if _, serr := r.store.Create(ctx, chapterID, text); serr != nil {
		r.logger.Error("job.feedback.save_failed", "chapter_id", chapterID, "error", serr)
		return
	}
	r.logger.Info("job.feedback.saved", "chapter_id", chapterID, "items", len(items))
}

// FormatItems renders corrections as labeled blocks separated by blank lines,
// in the order the generator returned them.
func FormatItems(items []llm.FeedbackItem) string {
	if len(items) == 0 {
		return noIssueMessage
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("［ことばそのまま］\n")
		b.WriteString(item.Original)
		b.WriteString("\n［なおしたぶん］\n")
		b.WriteString(item.Corrected)
		b.WriteString("\n［どうして？］\n")
		b.WriteString(item.Reason)
	}
	return b.String()
}
