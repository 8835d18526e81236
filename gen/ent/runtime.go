// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tempsotsusei/kotobanotane/db/ent/schema"
	"github.com/tempsotsusei/kotobanotane/gen/ent/chapter"
	"github.com/tempsotsusei/kotobanotane/gen/ent/feedback"
	"github.com/tempsotsusei/kotobanotane/gen/ent/keyword"
	"github.com/tempsotsusei/kotobanotane/gen/ent/story"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescChapterNum is the schema descriptor for chapter_num field.
	chapterDescChapterNum := chapterFields[2].Descriptor()
	// chapter.ChapterNumValidator is a validator for the "chapter_num" field. It is called by the builders before save.
	chapter.ChapterNumValidator = chapterDescChapterNum.Validators[0].(func(int) error)
	// chapterDescCreatedAt is the schema descriptor for created_at field.
	chapterDescCreatedAt := chapterFields[4].Descriptor()
	// chapter.DefaultCreatedAt holds the default value on creation for the created_at field.
	chapter.DefaultCreatedAt = chapterDescCreatedAt.Default.(func() time.Time)
	// chapterDescUpdatedAt is the schema descriptor for updated_at field.
	chapterDescUpdatedAt := chapterFields[5].Descriptor()
	// chapter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chapter.DefaultUpdatedAt = chapterDescUpdatedAt.Default.(func() time.Time)
	// chapter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chapter.UpdateDefaultUpdatedAt = chapterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chapterDescID is the schema descriptor for id field.
	chapterDescID := chapterFields[0].Descriptor()
	// chapter.DefaultID holds the default value on creation for the id field.
	chapter.DefaultID = chapterDescID.Default.(func() uuid.UUID)
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescFeedback is the schema descriptor for feedback field.
	feedbackDescFeedback := feedbackFields[2].Descriptor()
	// feedback.FeedbackValidator is a validator for the "feedback" field. It is called by the builders before save.
	feedback.FeedbackValidator = feedbackDescFeedback.Validators[0].(func(string) error)
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[3].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	// feedbackDescUpdatedAt is the schema descriptor for updated_at field.
	feedbackDescUpdatedAt := feedbackFields[4].Descriptor()
	// feedback.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feedback.DefaultUpdatedAt = feedbackDescUpdatedAt.Default.(func() time.Time)
	// feedback.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feedback.UpdateDefaultUpdatedAt = feedbackDescUpdatedAt.UpdateDefault.(func() time.Time)
	// feedbackDescID is the schema descriptor for id field.
	feedbackDescID := feedbackFields[0].Descriptor()
	// feedback.DefaultID holds the default value on creation for the id field.
	feedback.DefaultID = feedbackDescID.Default.(func() uuid.UUID)
	keywordFields := schema.Keyword{}.Fields()
	_ = keywordFields
	// keywordDescKeyword is the schema descriptor for keyword field.
	keywordDescKeyword := keywordFields[2].Descriptor()
	// keyword.KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	keyword.KeywordValidator = keywordDescKeyword.Validators[0].(func(string) error)
	// keywordDescPosition is the schema descriptor for position field.
	keywordDescPosition := keywordFields[3].Descriptor()
	// keyword.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	keyword.PositionValidator = keywordDescPosition.Validators[0].(func(int) error)
	// keywordDescCreatedAt is the schema descriptor for created_at field.
	keywordDescCreatedAt := keywordFields[4].Descriptor()
	// keyword.DefaultCreatedAt holds the default value on creation for the created_at field.
	keyword.DefaultCreatedAt = keywordDescCreatedAt.Default.(func() time.Time)
	// keywordDescUpdatedAt is the schema descriptor for updated_at field.
	keywordDescUpdatedAt := keywordFields[5].Descriptor()
	// keyword.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	keyword.DefaultUpdatedAt = keywordDescUpdatedAt.Default.(func() time.Time)
	// keyword.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	keyword.UpdateDefaultUpdatedAt = keywordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// keywordDescID is the schema descriptor for id field.
	keywordDescID := keywordFields[0].Descriptor()
	// keyword.DefaultID holds the default value on creation for the id field.
	keyword.DefaultID = keywordDescID.Default.(func() uuid.UUID)
	storyFields := schema.Story{}.Fields()
	_ = storyFields
	// storyDescUserID is the schema descriptor for user_id field.
	storyDescUserID := storyFields[1].Descriptor()
	// story.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	story.UserIDValidator = storyDescUserID.Validators[0].(func(string) error)
	// storyDescTitle is the schema descriptor for title field.
	storyDescTitle := storyFields[2].Descriptor()
	// story.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	story.TitleValidator = func() func(string) error {
		validators := storyDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// storyDescCreatedAt is the schema descriptor for created_at field.
	storyDescCreatedAt := storyFields[4].Descriptor()
	// story.DefaultCreatedAt holds the default value on creation for the created_at field.
	story.DefaultCreatedAt = storyDescCreatedAt.Default.(func() time.Time)
	// storyDescUpdatedAt is the schema descriptor for updated_at field.
	storyDescUpdatedAt := storyFields[5].Descriptor()
	// story.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	story.DefaultUpdatedAt = storyDescUpdatedAt.Default.(func() time.Time)
	// story.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	story.UpdateDefaultUpdatedAt = storyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// storyDescID is the schema descriptor for id field.
	storyDescID := storyFields[0].Descriptor()
	// story.DefaultID holds the default value on creation for the id field.
	story.DefaultID = storyDescID.Default.(func() uuid.UUID)
}
