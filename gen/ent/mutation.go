// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tempsotsusei/kotobanotane/gen/ent/chapter"
	"github.com/tempsotsusei/kotobanotane/gen/ent/feedback"
	"github.com/tempsotsusei/kotobanotane/gen/ent/keyword"
	"github.com/tempsotsusei/kotobanotane/gen/ent/predicate"
	"github.com/tempsotsusei/kotobanotane/gen/ent/story"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChapter  = "Chapter"
	TypeFeedback = "Feedback"
	TypeKeyword  = "Keyword"
	TypeStory    = "Story"
)

// ChapterMutation represents an operation that mutates the Chapter nodes in the graph.
type ChapterMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	chapter_num      *int
	addchapter_num   *int
	body             *json.RawMessage
	appendbody       json.RawMessage
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	story            *uuid.UUID
	clearedstory     bool
	keywords         map[uuid.UUID]struct{}
	removedkeywords  map[uuid.UUID]struct{}
	clearedkeywords  bool
	feedbacks        map[uuid.UUID]struct{}
	removedfeedbacks map[uuid.UUID]struct{}
	clearedfeedbacks bool
	done             bool
	oldValue         func(context.Context) (*Chapter, error)
	predicates       []predicate.Chapter
}

var _ ent.Mutation = (*ChapterMutation)(nil)

// chapterOption allows management of the mutation configuration using functional options.
type chapterOption func(*ChapterMutation)

// newChapterMutation creates new mutation for the Chapter entity.
func newChapterMutation(c config, op Op, opts ...chapterOption) *ChapterMutation {
	m := &ChapterMutation{
		config:        c,
		op:            op,
		typ:           TypeChapter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChapterID sets the ID field of the mutation.
func withChapterID(id uuid.UUID) chapterOption {
	return func(m *ChapterMutation) {
		var (
			err   error
			once  sync.Once
			value *Chapter
		)
		m.oldValue = func(ctx context.Context) (*Chapter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chapter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChapter sets the old Chapter of the mutation.
func withChapter(node *Chapter) chapterOption {
	return func(m *ChapterMutation) {
		m.oldValue = func(context.Context) (*Chapter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChapterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChapterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chapter entities.
func (m *ChapterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChapterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChapterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chapter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoryID sets the "story_id" field.
func (m *ChapterMutation) SetStoryID(u uuid.UUID) {
	m.story = &u
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *ChapterMutation) StoryID() (r uuid.UUID, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldStoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *ChapterMutation) ResetStoryID() {
	m.story = nil
}

// SetChapterNum sets the "chapter_num" field.
func (m *ChapterMutation) SetChapterNum(i int) {
	m.chapter_num = &i
	m.addchapter_num = nil
}

// ChapterNum returns the value of the "chapter_num" field in the mutation.
func (m *ChapterMutation) ChapterNum() (r int, exists bool) {
	v := m.chapter_num
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterNum returns the old "chapter_num" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldChapterNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterNum: %w", err)
	}
	return oldValue.ChapterNum, nil
}

// AddChapterNum adds i to the "chapter_num" field.
func (m *ChapterMutation) AddChapterNum(i int) {
	if m.addchapter_num != nil {
		*m.addchapter_num += i
	} else {
		m.addchapter_num = &i
	}
}

// AddedChapterNum returns the value that was added to the "chapter_num" field in this mutation.
func (m *ChapterMutation) AddedChapterNum() (r int, exists bool) {
	v := m.addchapter_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapterNum resets all changes to the "chapter_num" field.
func (m *ChapterMutation) ResetChapterNum() {
	m.chapter_num = nil
	m.addchapter_num = nil
}

// SetBody sets the "body" field.
func (m *ChapterMutation) SetBody(jm json.RawMessage) {
	m.body = &jm
	m.appendbody = nil
}

// Body returns the value of the "body" field in the mutation.
func (m *ChapterMutation) Body() (r json.RawMessage, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldBody(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// AppendBody adds jm to the "body" field.
func (m *ChapterMutation) AppendBody(jm json.RawMessage) {
	m.appendbody = append(m.appendbody, jm...)
}

// AppendedBody returns the list of values that were appended to the "body" field in this mutation.
func (m *ChapterMutation) AppendedBody() (json.RawMessage, bool) {
	if len(m.appendbody) == 0 {
		return nil, false
	}
	return m.appendbody, true
}

// ResetBody resets all changes to the "body" field.
func (m *ChapterMutation) ResetBody() {
	m.body = nil
	m.appendbody = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChapterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChapterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChapterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChapterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChapterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChapterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStory clears the "story" edge to the Story entity.
func (m *ChapterMutation) ClearStory() {
	m.clearedstory = true
	m.clearedFields[chapter.FieldStoryID] = struct{}{}
}

// StoryCleared reports if the "story" edge to the Story entity was cleared.
func (m *ChapterMutation) StoryCleared() bool {
	return m.clearedstory
}

// StoryIDs returns the "story" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StoryID instead. It exists only for internal usage by the builders.
func (m *ChapterMutation) StoryIDs() (ids []uuid.UUID) {
	if id := m.story; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStory resets all changes to the "story" edge.
func (m *ChapterMutation) ResetStory() {
	m.story = nil
	m.clearedstory = false
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by ids.
func (m *ChapterMutation) AddKeywordIDs(ids ...uuid.UUID) {
	if m.keywords == nil {
		m.keywords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.keywords[ids[i]] = struct{}{}
	}
}

// ClearKeywords clears the "keywords" edge to the Keyword entity.
func (m *ChapterMutation) ClearKeywords() {
	m.clearedkeywords = true
}

// KeywordsCleared reports if the "keywords" edge to the Keyword entity was cleared.
func (m *ChapterMutation) KeywordsCleared() bool {
	return m.clearedkeywords
}

// RemoveKeywordIDs removes the "keywords" edge to the Keyword entity by IDs.
func (m *ChapterMutation) RemoveKeywordIDs(ids ...uuid.UUID) {
	if m.removedkeywords == nil {
		m.removedkeywords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.keywords, ids[i])
		m.removedkeywords[ids[i]] = struct{}{}
	}
}

// RemovedKeywords returns the removed IDs of the "keywords" edge to the Keyword entity.
func (m *ChapterMutation) RemovedKeywordsIDs() (ids []uuid.UUID) {
	for id := range m.removedkeywords {
		ids = append(ids, id)
	}
	return
}

// KeywordsIDs returns the "keywords" edge IDs in the mutation.
func (m *ChapterMutation) KeywordsIDs() (ids []uuid.UUID) {
	for id := range m.keywords {
		ids = append(ids, id)
	}
	return
}

// ResetKeywords resets all changes to the "keywords" edge.
func (m *ChapterMutation) ResetKeywords() {
	m.keywords = nil
	m.clearedkeywords = false
	m.removedkeywords = nil
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by ids.
func (m *ChapterMutation) AddFeedbackIDs(ids ...uuid.UUID) {
	if m.feedbacks == nil {
		m.feedbacks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.feedbacks[ids[i]] = struct{}{}
	}
}

// ClearFeedbacks clears the "feedbacks" edge to the Feedback entity.
func (m *ChapterMutation) ClearFeedbacks() {
	m.clearedfeedbacks = true
}

// FeedbacksCleared reports if the "feedbacks" edge to the Feedback entity was cleared.
func (m *ChapterMutation) FeedbacksCleared() bool {
	return m.clearedfeedbacks
}

// RemoveFeedbackIDs removes the "feedbacks" edge to the Feedback entity by IDs.
func (m *ChapterMutation) RemoveFeedbackIDs(ids ...uuid.UUID) {
	if m.removedfeedbacks == nil {
		m.removedfeedbacks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.feedbacks, ids[i])
		m.removedfeedbacks[ids[i]] = struct{}{}
	}
}

// RemovedFeedbacks returns the removed IDs of the "feedbacks" edge to the Feedback entity.
func (m *ChapterMutation) RemovedFeedbacksIDs() (ids []uuid.UUID) {
	for id := range m.removedfeedbacks {
		ids = append(ids, id)
	}
	return
}

// FeedbacksIDs returns the "feedbacks" edge IDs in the mutation.
func (m *ChapterMutation) FeedbacksIDs() (ids []uuid.UUID) {
	for id := range m.feedbacks {
		ids = append(ids, id)
	}
	return
}

// ResetFeedbacks resets all changes to the "feedbacks" edge.
func (m *ChapterMutation) ResetFeedbacks() {
	m.feedbacks = nil
	m.clearedfeedbacks = false
	m.removedfeedbacks = nil
}

// Where appends a list predicates to the ChapterMutation builder.
func (m *ChapterMutation) Where(ps ...predicate.Chapter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChapterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChapterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chapter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChapterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChapterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chapter).
func (m *ChapterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChapterMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.story != nil {
		fields = append(fields, chapter.FieldStoryID)
	}
	if m.chapter_num != nil {
		fields = append(fields, chapter.FieldChapterNum)
	}
	if m.body != nil {
		fields = append(fields, chapter.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, chapter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chapter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChapterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldStoryID:
		return m.StoryID()
	case chapter.FieldChapterNum:
		return m.ChapterNum()
	case chapter.FieldBody:
		return m.Body()
	case chapter.FieldCreatedAt:
		return m.CreatedAt()
	case chapter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChapterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chapter.FieldStoryID:
		return m.OldStoryID(ctx)
	case chapter.FieldChapterNum:
		return m.OldChapterNum(ctx)
	case chapter.FieldBody:
		return m.OldBody(ctx)
	case chapter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chapter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chapter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldStoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case chapter.FieldChapterNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterNum(v)
		return nil
	case chapter.FieldBody:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case chapter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chapter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChapterMutation) AddedFields() []string {
	var fields []string
	if m.addchapter_num != nil {
		fields = append(fields, chapter.FieldChapterNum)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChapterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldChapterNum:
		return m.AddedChapterNum()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldChapterNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapterNum(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChapterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChapterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChapterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Chapter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChapterMutation) ResetField(name string) error {
	switch name {
	case chapter.FieldStoryID:
		m.ResetStoryID()
		return nil
	case chapter.FieldChapterNum:
		m.ResetChapterNum()
		return nil
	case chapter.FieldBody:
		m.ResetBody()
		return nil
	case chapter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chapter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChapterMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.story != nil {
		edges = append(edges, chapter.EdgeStory)
	}
	if m.keywords != nil {
		edges = append(edges, chapter.EdgeKeywords)
	}
	if m.feedbacks != nil {
		edges = append(edges, chapter.EdgeFeedbacks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChapterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeStory:
		if id := m.story; id != nil {
			return []ent.Value{*id}
		}
	case chapter.EdgeKeywords:
		ids := make([]ent.Value, 0, len(m.keywords))
		for id := range m.keywords {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeFeedbacks:
		ids := make([]ent.Value, 0, len(m.feedbacks))
		for id := range m.feedbacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChapterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedkeywords != nil {
		edges = append(edges, chapter.EdgeKeywords)
	}
	if m.removedfeedbacks != nil {
		edges = append(edges, chapter.EdgeFeedbacks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChapterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeKeywords:
		ids := make([]ent.Value, 0, len(m.removedkeywords))
		for id := range m.removedkeywords {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeFeedbacks:
		ids := make([]ent.Value, 0, len(m.removedfeedbacks))
		for id := range m.removedfeedbacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChapterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedstory {
		edges = append(edges, chapter.EdgeStory)
	}
	if m.clearedkeywords {
		edges = append(edges, chapter.EdgeKeywords)
	}
	if m.clearedfeedbacks {
		edges = append(edges, chapter.EdgeFeedbacks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChapterMutation) EdgeCleared(name string) bool {
	switch name {
	case chapter.EdgeStory:
		return m.clearedstory
	case chapter.EdgeKeywords:
		return m.clearedkeywords
	case chapter.EdgeFeedbacks:
		return m.clearedfeedbacks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChapterMutation) ClearEdge(name string) error {
	switch name {
	case chapter.EdgeStory:
		m.ClearStory()
		return nil
	}
	return fmt.Errorf("unknown Chapter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChapterMutation) ResetEdge(name string) error {
	switch name {
	case chapter.EdgeStory:
		m.ResetStory()
		return nil
	case chapter.EdgeKeywords:
		m.ResetKeywords()
		return nil
	case chapter.EdgeFeedbacks:
		m.ResetFeedbacks()
		return nil
	}
	return fmt.Errorf("unknown Chapter edge %s", name)
}

// FeedbackMutation represents an operation that mutates the Feedback nodes in the graph.
type FeedbackMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	feedback       *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	chapter        *uuid.UUID
	clearedchapter bool
	done           bool
	oldValue       func(context.Context) (*Feedback, error)
	predicates     []predicate.Feedback
}

var _ ent.Mutation = (*FeedbackMutation)(nil)

// feedbackOption allows management of the mutation configuration using functional options.
type feedbackOption func(*FeedbackMutation)

// newFeedbackMutation creates new mutation for the Feedback entity.
func newFeedbackMutation(c config, op Op, opts ...feedbackOption) *FeedbackMutation {
	m := &FeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackID sets the ID field of the mutation.
func withFeedbackID(id uuid.UUID) feedbackOption {
	return func(m *FeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Feedback
		)
		m.oldValue = func(ctx context.Context) (*Feedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedback sets the old Feedback of the mutation.
func withFeedback(node *Feedback) feedbackOption {
	return func(m *FeedbackMutation) {
		m.oldValue = func(context.Context) (*Feedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feedback entities.
func (m *FeedbackMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChapterID sets the "chapter_id" field.
func (m *FeedbackMutation) SetChapterID(u uuid.UUID) {
	m.chapter = &u
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *FeedbackMutation) ChapterID() (r uuid.UUID, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldChapterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *FeedbackMutation) ResetChapterID() {
	m.chapter = nil
}

// SetFeedback sets the "feedback" field.
func (m *FeedbackMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *FeedbackMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *FeedbackMutation) ResetFeedback() {
	m.feedback = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeedbackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeedbackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeedbackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *FeedbackMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[feedback.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *FeedbackMutation) ChapterCleared() bool {
	return m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) ChapterIDs() (ids []uuid.UUID) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *FeedbackMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// Where appends a list predicates to the FeedbackMutation builder.
func (m *FeedbackMutation) Where(ps ...predicate.Feedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feedback).
func (m *FeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.chapter != nil {
		fields = append(fields, feedback.FieldChapterID)
	}
	if m.feedback != nil {
		fields = append(fields, feedback.FieldFeedback)
	}
	if m.created_at != nil {
		fields = append(fields, feedback.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, feedback.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldChapterID:
		return m.ChapterID()
	case feedback.FieldFeedback:
		return m.Feedback()
	case feedback.FieldCreatedAt:
		return m.CreatedAt()
	case feedback.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedback.FieldChapterID:
		return m.OldChapterID(ctx)
	case feedback.FieldFeedback:
		return m.OldFeedback(ctx)
	case feedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feedback.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldChapterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case feedback.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case feedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feedback.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Feedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Feedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackMutation) ResetField(name string) error {
	switch name {
	case feedback.FieldChapterID:
		m.ResetChapterID()
		return nil
	case feedback.FieldFeedback:
		m.ResetFeedback()
		return nil
	case feedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feedback.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chapter != nil {
		edges = append(edges, feedback.EdgeChapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedback.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchapter {
		edges = append(edges, feedback.EdgeChapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case feedback.EdgeChapter:
		return m.clearedchapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackMutation) ClearEdge(name string) error {
	switch name {
	case feedback.EdgeChapter:
		m.ClearChapter()
		return nil
	}
	return fmt.Errorf("unknown Feedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackMutation) ResetEdge(name string) error {
	switch name {
	case feedback.EdgeChapter:
		m.ResetChapter()
		return nil
	}
	return fmt.Errorf("unknown Feedback edge %s", name)
}

// KeywordMutation represents an operation that mutates the Keyword nodes in the graph.
type KeywordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	keyword        *string
	position       *int
	addposition    *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	chapter        *uuid.UUID
	clearedchapter bool
	done           bool
	oldValue       func(context.Context) (*Keyword, error)
	predicates     []predicate.Keyword
}

var _ ent.Mutation = (*KeywordMutation)(nil)

// keywordOption allows management of the mutation configuration using functional options.
type keywordOption func(*KeywordMutation)

// newKeywordMutation creates new mutation for the Keyword entity.
func newKeywordMutation(c config, op Op, opts ...keywordOption) *KeywordMutation {
	m := &KeywordMutation{
		config:        c,
		op:            op,
		typ:           TypeKeyword,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKeywordID sets the ID field of the mutation.
func withKeywordID(id uuid.UUID) keywordOption {
	return func(m *KeywordMutation) {
		var (
			err   error
			once  sync.Once
			value *Keyword
		)
		m.oldValue = func(ctx context.Context) (*Keyword, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Keyword.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKeyword sets the old Keyword of the mutation.
func withKeyword(node *Keyword) keywordOption {
	return func(m *KeywordMutation) {
		m.oldValue = func(context.Context) (*Keyword, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KeywordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KeywordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Keyword entities.
func (m *KeywordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KeywordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KeywordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Keyword.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChapterID sets the "chapter_id" field.
func (m *KeywordMutation) SetChapterID(u uuid.UUID) {
	m.chapter = &u
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *KeywordMutation) ChapterID() (r uuid.UUID, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldChapterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *KeywordMutation) ResetChapterID() {
	m.chapter = nil
}

// SetKeyword sets the "keyword" field.
func (m *KeywordMutation) SetKeyword(s string) {
	m.keyword = &s
}

// Keyword returns the value of the "keyword" field in the mutation.
func (m *KeywordMutation) Keyword() (r string, exists bool) {
	v := m.keyword
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyword returns the old "keyword" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldKeyword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyword: %w", err)
	}
	return oldValue.Keyword, nil
}

// ResetKeyword resets all changes to the "keyword" field.
func (m *KeywordMutation) ResetKeyword() {
	m.keyword = nil
}

// SetPosition sets the "position" field.
func (m *KeywordMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *KeywordMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *KeywordMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *KeywordMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *KeywordMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KeywordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KeywordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KeywordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KeywordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KeywordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KeywordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *KeywordMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[keyword.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *KeywordMutation) ChapterCleared() bool {
	return m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *KeywordMutation) ChapterIDs() (ids []uuid.UUID) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *KeywordMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// Where appends a list predicates to the KeywordMutation builder.
func (m *KeywordMutation) Where(ps ...predicate.Keyword) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KeywordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KeywordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Keyword, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KeywordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KeywordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Keyword).
func (m *KeywordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KeywordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.chapter != nil {
		fields = append(fields, keyword.FieldChapterID)
	}
	if m.keyword != nil {
		fields = append(fields, keyword.FieldKeyword)
	}
	if m.position != nil {
		fields = append(fields, keyword.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, keyword.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, keyword.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KeywordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case keyword.FieldChapterID:
		return m.ChapterID()
	case keyword.FieldKeyword:
		return m.Keyword()
	case keyword.FieldPosition:
		return m.Position()
	case keyword.FieldCreatedAt:
		return m.CreatedAt()
	case keyword.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KeywordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case keyword.FieldChapterID:
		return m.OldChapterID(ctx)
	case keyword.FieldKeyword:
		return m.OldKeyword(ctx)
	case keyword.FieldPosition:
		return m.OldPosition(ctx)
	case keyword.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case keyword.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Keyword field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case keyword.FieldChapterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case keyword.FieldKeyword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyword(v)
		return nil
	case keyword.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case keyword.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case keyword.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Keyword field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KeywordMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, keyword.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KeywordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case keyword.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case keyword.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Keyword numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KeywordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KeywordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KeywordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Keyword nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KeywordMutation) ResetField(name string) error {
	switch name {
	case keyword.FieldChapterID:
		m.ResetChapterID()
		return nil
	case keyword.FieldKeyword:
		m.ResetKeyword()
		return nil
	case keyword.FieldPosition:
		m.ResetPosition()
		return nil
	case keyword.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case keyword.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Keyword field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KeywordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chapter != nil {
		edges = append(edges, keyword.EdgeChapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KeywordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case keyword.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KeywordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KeywordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KeywordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchapter {
		edges = append(edges, keyword.EdgeChapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KeywordMutation) EdgeCleared(name string) bool {
	switch name {
	case keyword.EdgeChapter:
		return m.clearedchapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KeywordMutation) ClearEdge(name string) error {
	switch name {
	case keyword.EdgeChapter:
		m.ClearChapter()
		return nil
	}
	return fmt.Errorf("unknown Keyword unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KeywordMutation) ResetEdge(name string) error {
	switch name {
	case keyword.EdgeChapter:
		m.ResetChapter()
		return nil
	}
	return fmt.Errorf("unknown Keyword edge %s", name)
}

// StoryMutation represents an operation that mutates the Story nodes in the graph.
type StoryMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	user_id         *string
	title           *string
	thumbnail_id    *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	chapters        map[uuid.UUID]struct{}
	removedchapters map[uuid.UUID]struct{}
	clearedchapters bool
	done            bool
	oldValue        func(context.Context) (*Story, error)
	predicates      []predicate.Story
}

var _ ent.Mutation = (*StoryMutation)(nil)

// storyOption allows management of the mutation configuration using functional options.
type storyOption func(*StoryMutation)

// newStoryMutation creates new mutation for the Story entity.
func newStoryMutation(c config, op Op, opts ...storyOption) *StoryMutation {
	m := &StoryMutation{
		config:        c,
		op:            op,
		typ:           TypeStory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryID sets the ID field of the mutation.
func withStoryID(id uuid.UUID) storyOption {
	return func(m *StoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Story
		)
		m.oldValue = func(ctx context.Context) (*Story, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Story.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStory sets the old Story of the mutation.
func withStory(node *Story) storyOption {
	return func(m *StoryMutation) {
		m.oldValue = func(context.Context) (*Story, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Story entities.
func (m *StoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Story.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *StoryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StoryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StoryMutation) ResetTitle() {
	m.title = nil
}

// SetThumbnailID sets the "thumbnail_id" field.
func (m *StoryMutation) SetThumbnailID(s string) {
	m.thumbnail_id = &s
}

// ThumbnailID returns the value of the "thumbnail_id" field in the mutation.
func (m *StoryMutation) ThumbnailID() (r string, exists bool) {
	v := m.thumbnail_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailID returns the old "thumbnail_id" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldThumbnailID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailID: %w", err)
	}
	return oldValue.ThumbnailID, nil
}

// ClearThumbnailID clears the value of the "thumbnail_id" field.
func (m *StoryMutation) ClearThumbnailID() {
	m.thumbnail_id = nil
	m.clearedFields[story.FieldThumbnailID] = struct{}{}
}

// ThumbnailIDCleared returns if the "thumbnail_id" field was cleared in this mutation.
func (m *StoryMutation) ThumbnailIDCleared() bool {
	_, ok := m.clearedFields[story.FieldThumbnailID]
	return ok
}

// ResetThumbnailID resets all changes to the "thumbnail_id" field.
func (m *StoryMutation) ResetThumbnailID() {
	m.thumbnail_id = nil
	delete(m.clearedFields, story.FieldThumbnailID)
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by ids.
func (m *StoryMutation) AddChapterIDs(ids ...uuid.UUID) {
	if m.chapters == nil {
		m.chapters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.chapters[ids[i]] = struct{}{}
	}
}

// ClearChapters clears the "chapters" edge to the Chapter entity.
func (m *StoryMutation) ClearChapters() {
	m.clearedchapters = true
}

// ChaptersCleared reports if the "chapters" edge to the Chapter entity was cleared.
func (m *StoryMutation) ChaptersCleared() bool {
	return m.clearedchapters
}

// RemoveChapterIDs removes the "chapters" edge to the Chapter entity by IDs.
func (m *StoryMutation) RemoveChapterIDs(ids ...uuid.UUID) {
	if m.removedchapters == nil {
		m.removedchapters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.chapters, ids[i])
		m.removedchapters[ids[i]] = struct{}{}
	}
}

// RemovedChapters returns the removed IDs of the "chapters" edge to the Chapter entity.
func (m *StoryMutation) RemovedChaptersIDs() (ids []uuid.UUID) {
	for id := range m.removedchapters {
		ids = append(ids, id)
	}
	return
}

// ChaptersIDs returns the "chapters" edge IDs in the mutation.
func (m *StoryMutation) ChaptersIDs() (ids []uuid.UUID) {
	for id := range m.chapters {
		ids = append(ids, id)
	}
	return
}

// ResetChapters resets all changes to the "chapters" edge.
func (m *StoryMutation) ResetChapters() {
	m.chapters = nil
	m.clearedchapters = false
	m.removedchapters = nil
}

// Where appends a list predicates to the StoryMutation builder.
func (m *StoryMutation) Where(ps ...predicate.Story) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Story, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Story).
func (m *StoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, story.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, story.FieldTitle)
	}
	if m.thumbnail_id != nil {
		fields = append(fields, story.FieldThumbnailID)
	}
	if m.created_at != nil {
		fields = append(fields, story.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, story.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case story.FieldUserID:
		return m.UserID()
	case story.FieldTitle:
		return m.Title()
	case story.FieldThumbnailID:
		return m.ThumbnailID()
	case story.FieldCreatedAt:
		return m.CreatedAt()
	case story.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case story.FieldUserID:
		return m.OldUserID(ctx)
	case story.FieldTitle:
		return m.OldTitle(ctx)
	case story.FieldThumbnailID:
		return m.OldThumbnailID(ctx)
	case story.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case story.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Story field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case story.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case story.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case story.FieldThumbnailID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailID(v)
		return nil
	case story.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case story.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Story field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Story numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(story.FieldThumbnailID) {
		fields = append(fields, story.FieldThumbnailID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryMutation) ClearField(name string) error {
	switch name {
	case story.FieldThumbnailID:
		m.ClearThumbnailID()
		return nil
	}
	return fmt.Errorf("unknown Story nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryMutation) ResetField(name string) error {
	switch name {
	case story.FieldUserID:
		m.ResetUserID()
		return nil
	case story.FieldTitle:
		m.ResetTitle()
		return nil
	case story.FieldThumbnailID:
		m.ResetThumbnailID()
		return nil
	case story.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case story.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Story field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chapters != nil {
		edges = append(edges, story.EdgeChapters)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case story.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.chapters))
		for id := range m.chapters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchapters != nil {
		edges = append(edges, story.EdgeChapters)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case story.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.removedchapters))
		for id := range m.removedchapters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchapters {
		edges = append(edges, story.EdgeChapters)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryMutation) EdgeCleared(name string) bool {
	switch name {
	case story.EdgeChapters:
		return m.clearedchapters
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Story unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryMutation) ResetEdge(name string) error {
	switch name {
	case story.EdgeChapters:
		m.ResetChapters()
		return nil
	}
	return fmt.Errorf("unknown Story edge %s", name)
}
