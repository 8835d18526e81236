// Code generated by ent, DO NOT EDIT.

package chapter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tempsotsusei/kotobanotane/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldID, id))
}

// StoryID applies equality check predicate on the "story_id" field. It's identical to StoryIDEQ.
func StoryID(v uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldStoryID, v))
}

// ChapterNum applies equality check predicate on the "chapter_num" field. It's identical to ChapterNumEQ.
func ChapterNum(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldChapterNum, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldUpdatedAt, v))
}

// StoryIDEQ applies the EQ predicate on the "story_id" field.
func StoryIDEQ(v uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldStoryID, v))
}

// StoryIDNEQ applies the NEQ predicate on the "story_id" field.
func StoryIDNEQ(v uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldStoryID, v))
}

// StoryIDIn applies the In predicate on the "story_id" field.
func StoryIDIn(vs ...uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldStoryID, vs...))
}

// StoryIDNotIn applies the NotIn predicate on the "story_id" field.
func StoryIDNotIn(vs ...uuid.UUID) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldStoryID, vs...))
}

// ChapterNumEQ applies the EQ predicate on the "chapter_num" field.
func ChapterNumEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldChapterNum, v))
}

// ChapterNumNEQ applies the NEQ predicate on the "chapter_num" field.
func ChapterNumNEQ(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldChapterNum, v))
}

// ChapterNumIn applies the In predicate on the "chapter_num" field.
func ChapterNumIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldChapterNum, vs...))
}

// ChapterNumNotIn applies the NotIn predicate on the "chapter_num" field.
func ChapterNumNotIn(vs ...int) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldChapterNum, vs...))
}

// ChapterNumGT applies the GT predicate on the "chapter_num" field.
func ChapterNumGT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldChapterNum, v))
}

// ChapterNumGTE applies the GTE predicate on the "chapter_num" field.
func ChapterNumGTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldChapterNum, v))
}

// ChapterNumLT applies the LT predicate on the "chapter_num" field.
func ChapterNumLT(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldChapterNum, v))
}

// ChapterNumLTE applies the LTE predicate on the "chapter_num" field.
func ChapterNumLTE(v int) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldChapterNum, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Chapter {
	return predicate.Chapter(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStory applies the HasEdge predicate on the "story" edge.
func HasStory() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StoryTable, StoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoryWith applies the HasEdge predicate on the "story" edge with a given conditions (other predicates).
func HasStoryWith(preds ...predicate.Story) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newStoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasKeywords applies the HasEdge predicate on the "keywords" edge.
func HasKeywords() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KeywordsTable, KeywordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKeywordsWith applies the HasEdge predicate on the "keywords" edge with a given conditions (other predicates).
func HasKeywordsWith(preds ...predicate.Keyword) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newKeywordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedbacks applies the HasEdge predicate on the "feedbacks" edge.
func HasFeedbacks() predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbacksTable, FeedbacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbacksWith applies the HasEdge predicate on the "feedbacks" edge with a given conditions (other predicates).
func HasFeedbacksWith(preds ...predicate.Feedback) predicate.Chapter {
	return predicate.Chapter(func(s *sql.Selector) {
		step := newFeedbacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chapter) predicate.Chapter {
	return predicate.Chapter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chapter) predicate.Chapter {
	return predicate.Chapter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chapter) predicate.Chapter {
	return predicate.Chapter(sql.NotPredicates(p))
}
