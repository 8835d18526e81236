// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tempsotsusei/kotobanotane/gen/ent/chapter"
	"github.com/tempsotsusei/kotobanotane/gen/ent/story"
)

// Chapter is the model entity for the Chapter schema.
type Chapter struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StoryID holds the value of the "story_id" field.
	StoryID uuid.UUID `json:"story_id,omitempty"`
	// ChapterNum holds the value of the "chapter_num" field.
	ChapterNum int `json:"chapter_num,omitempty"`
	// Body holds the value of the "body" field.
	Body json.RawMessage `json:"body,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChapterQuery when eager-loading is set.
	Edges        ChapterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChapterEdges holds the relations/edges for other nodes in the graph.
type ChapterEdges struct {
	// Story holds the value of the story edge.
	Story *Story `json:"story,omitempty"`
	// Keywords holds the value of the keywords edge.
	Keywords []*Keyword `json:"keywords,omitempty"`
	// Feedbacks holds the value of the feedbacks edge.
	Feedbacks []*Feedback `json:"feedbacks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StoryOrErr returns the Story value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChapterEdges) StoryOrErr() (*Story, error) {
	if e.Story != nil {
		return e.Story, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: story.Label}
	}
	return nil, &NotLoadedError{edge: "story"}
}

// KeywordsOrErr returns the Keywords value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) KeywordsOrErr() ([]*Keyword, error) {
	if e.loadedTypes[1] {
		return e.Keywords, nil
	}
	return nil, &NotLoadedError{edge: "keywords"}
}

// FeedbacksOrErr returns the Feedbacks value or an error if the edge
// was not loaded in eager-loading.
func (e ChapterEdges) FeedbacksOrErr() ([]*Feedback, error) {
	if e.loadedTypes[2] {
		return e.Feedbacks, nil
	}
	return nil, &NotLoadedError{edge: "feedbacks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chapter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chapter.FieldBody:
			values[i] = new([]byte)
		case chapter.FieldChapterNum:
			values[i] = new(sql.NullInt64)
		case chapter.FieldCreatedAt, chapter.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case chapter.FieldID, chapter.FieldStoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chapter fields.
func (_m *Chapter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chapter.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case chapter.FieldStoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field story_id", values[i])
			} else if value != nil {
				_m.StoryID = *value
			}
		case chapter.FieldChapterNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_num", values[i])
			} else if value.Valid {
				_m.ChapterNum = int(value.Int64)
			}
		case chapter.FieldBody:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Body); err != nil {
					return fmt.Errorf("unmarshal field body: %w", err)
				}
			}
		case chapter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chapter.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Chapter.
// This includes values selected through modifiers, order, etc.
func (_m *Chapter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStory queries the "story" edge of the Chapter entity.
func (_m *Chapter) QueryStory() *StoryQuery {
	return NewChapterClient(_m.config).QueryStory(_m)
}

// QueryKeywords queries the "keywords" edge of the Chapter entity.
func (_m *Chapter) QueryKeywords() *KeywordQuery {
	return NewChapterClient(_m.config).QueryKeywords(_m)
}

// QueryFeedbacks queries the "feedbacks" edge of the Chapter entity.
func (_m *Chapter) QueryFeedbacks() *FeedbackQuery {
	return NewChapterClient(_m.config).QueryFeedbacks(_m)
}

// Update returns a builder for updating this Chapter.
// Note that you need to call Chapter.Unwrap() before calling this method if this Chapter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chapter) Update() *ChapterUpdateOne {
	return NewChapterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chapter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chapter) Unwrap() *Chapter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chapter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chapter) String() string {
	var builder strings.Builder
	builder.WriteString("Chapter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("story_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoryID))
	builder.WriteString(", ")
	builder.WriteString("chapter_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterNum))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(fmt.Sprintf("%v", _m.Body))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Chapters is a parsable slice of Chapter.
type Chapters []*Chapter
