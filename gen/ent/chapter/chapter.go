// Code generated by ent, DO NOT EDIT.

package chapter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the chapter type in the database.
	Label = "chapter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStoryID holds the string denoting the story_id field in the database.
	FieldStoryID = "story_id"
	// FieldChapterNum holds the string denoting the chapter_num field in the database.
	FieldChapterNum = "chapter_num"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStory holds the string denoting the story edge name in mutations.
	EdgeStory = "story"
	// EdgeKeywords holds the string denoting the keywords edge name in mutations.
	EdgeKeywords = "keywords"
	// EdgeFeedbacks holds the string denoting the feedbacks edge name in mutations.
	EdgeFeedbacks = "feedbacks"
	// Table holds the table name of the chapter in the database.
	Table = "chapters"
	// StoryTable is the table that holds the story relation/edge.
	StoryTable = "chapters"
	// StoryInverseTable is the table name for the Story entity.
	// It exists in this package in order to avoid circular dependency with the "story" package.
	StoryInverseTable = "stories"
	// StoryColumn is the table column denoting the story relation/edge.
	StoryColumn = "story_id"
	// KeywordsTable is the table that holds the keywords relation/edge.
	KeywordsTable = "keywords"
	// KeywordsInverseTable is the table name for the Keyword entity.
	// It exists in this package in order to avoid circular dependency with the "keyword" package.
	KeywordsInverseTable = "keywords"
	// KeywordsColumn is the table column denoting the keywords relation/edge.
	KeywordsColumn = "chapter_id"
	// FeedbacksTable is the table that holds the feedbacks relation/edge.
	FeedbacksTable = "feedbacks"
	// FeedbacksInverseTable is the table name for the Feedback entity.
	// It exists in this package in order to avoid circular dependency with the "feedback" package.
	FeedbacksInverseTable = "feedbacks"
	// FeedbacksColumn is the table column denoting the feedbacks relation/edge.
	FeedbacksColumn = "chapter_id"
)

// Columns holds all SQL columns for chapter fields.
var Columns = []string{
	FieldID,
	FieldStoryID,
	FieldChapterNum,
	FieldBody,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ChapterNumValidator is a validator for the "chapter_num" field. It is called by the builders before save.
	ChapterNumValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Chapter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStoryID orders the results by the story_id field.
func ByStoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryID, opts...).ToFunc()
}

// ByChapterNum orders the results by the chapter_num field.
func ByChapterNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterNum, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStoryField orders the results by story field.
func ByStoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByKeywordsCount orders the results by keywords count.
func ByKeywordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKeywordsStep(), opts...)
	}
}

// ByKeywords orders the results by keywords terms.
func ByKeywords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKeywordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeedbacksCount orders the results by feedbacks count.
func ByFeedbacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeedbacksStep(), opts...)
	}
}

// ByFeedbacks orders the results by feedbacks terms.
func ByFeedbacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StoryTable, StoryColumn),
	)
}
func newKeywordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KeywordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KeywordsTable, KeywordsColumn),
	)
}
func newFeedbacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbacksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeedbacksTable, FeedbacksColumn),
	)
}
