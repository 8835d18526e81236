// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tempsotsusei/kotobanotane/gen/ent/chapter"
	"github.com/tempsotsusei/kotobanotane/gen/ent/feedback"
	"github.com/tempsotsusei/kotobanotane/gen/ent/keyword"
	"github.com/tempsotsusei/kotobanotane/gen/ent/predicate"
	"github.com/tempsotsusei/kotobanotane/gen/ent/story"
)

// ChapterUpdate is the builder for updating Chapter entities.
type ChapterUpdate struct {
	config
	hooks    []Hook
	mutation *ChapterMutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdate) Where(ps ...predicate.Chapter) *ChapterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *ChapterUpdate) SetStoryID(v uuid.UUID) *ChapterUpdate {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableStoryID(v *uuid.UUID) *ChapterUpdate {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetChapterNum sets the "chapter_num" field.
func (_u *ChapterUpdate) SetChapterNum(v int) *ChapterUpdate {
	_u.mutation.ResetChapterNum()
	_u.mutation.SetChapterNum(v)
	return _u
}

// SetNillableChapterNum sets the "chapter_num" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableChapterNum(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetChapterNum(*v)
	}
	return _u
}

// AddChapterNum adds value to the "chapter_num" field.
func (_u *ChapterUpdate) AddChapterNum(v int) *ChapterUpdate {
	_u.mutation.AddChapterNum(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *ChapterUpdate) SetBody(v json.RawMessage) *ChapterUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// AppendBody appends value to the "body" field.
func (_u *ChapterUpdate) AppendBody(v json.RawMessage) *ChapterUpdate {
	_u.mutation.AppendBody(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChapterUpdate) SetCreatedAt(v time.Time) *ChapterUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableCreatedAt(v *time.Time) *ChapterUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChapterUpdate) SetUpdatedAt(v time.Time) *ChapterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStory sets the "story" edge to the Story entity.
func (_u *ChapterUpdate) SetStory(v *Story) *ChapterUpdate {
	return _u.SetStoryID(v.ID)
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by IDs.
func (_u *ChapterUpdate) AddKeywordIDs(ids ...uuid.UUID) *ChapterUpdate {
	_u.mutation.AddKeywordIDs(ids...)
	return _u
}

// AddKeywords adds the "keywords" edges to the Keyword entity.
func (_u *ChapterUpdate) AddKeywords(v ...*Keyword) *ChapterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKeywordIDs(ids...)
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by IDs.
func (_u *ChapterUpdate) AddFeedbackIDs(ids ...uuid.UUID) *ChapterUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedbacks adds the "feedbacks" edges to the Feedback entity.
func (_u *ChapterUpdate) AddFeedbacks(v ...*Feedback) *ChapterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdate) Mutation() *ChapterMutation {
	return _u.mutation
}

// ClearStory clears the "story" edge to the Story entity.
func (_u *ChapterUpdate) ClearStory() *ChapterUpdate {
	_u.mutation.ClearStory()
	return _u
}

// ClearKeywords clears all "keywords" edges to the Keyword entity.
func (_u *ChapterUpdate) ClearKeywords() *ChapterUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// RemoveKeywordIDs removes the "keywords" edge to Keyword entities by IDs.
func (_u *ChapterUpdate) RemoveKeywordIDs(ids ...uuid.UUID) *ChapterUpdate {
	_u.mutation.RemoveKeywordIDs(ids...)
	return _u
}

// RemoveKeywords removes "keywords" edges to Keyword entities.
func (_u *ChapterUpdate) RemoveKeywords(v ...*Keyword) *ChapterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKeywordIDs(ids...)
}

// ClearFeedbacks clears all "feedbacks" edges to the Feedback entity.
func (_u *ChapterUpdate) ClearFeedbacks() *ChapterUpdate {
	_u.mutation.ClearFeedbacks()
	return _u
}

// RemoveFeedbackIDs removes the "feedbacks" edge to Feedback entities by IDs.
func (_u *ChapterUpdate) RemoveFeedbackIDs(ids ...uuid.UUID) *ChapterUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedbacks removes "feedbacks" edges to Feedback entities.
func (_u *ChapterUpdate) RemoveFeedbacks(v ...*Feedback) *ChapterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChapterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChapterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChapterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdate) check() error {
	if v, ok := _u.mutation.ChapterNum(); ok {
		if err := chapter.ChapterNumValidator(v); err != nil {
			return &ValidationError{Name: "chapter_num", err: fmt.Errorf(`ent: validator failed for field "Chapter.chapter_num": %w`, err)}
		}
	}
	if _u.mutation.StoryCleared() && len(_u.mutation.StoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.story"`)
	}
	return nil
}

func (_u *ChapterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChapterNum(); ok {
		_spec.SetField(chapter.FieldChapterNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterNum(); ok {
		_spec.AddField(chapter.FieldChapterNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(chapter.FieldBody, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBody(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chapter.FieldBody, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chapter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.StoryTable,
			Columns: []string{chapter.StoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.StoryTable,
			Columns: []string{chapter.StoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KeywordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.KeywordsTable,
			Columns: []string{chapter.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKeywordsIDs(); len(nodes) > 0 && !_u.mutation.KeywordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.KeywordsTable,
			Columns: []string{chapter.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeywordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.KeywordsTable,
			Columns: []string{chapter.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.FeedbacksTable,
			Columns: []string{chapter.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbacksIDs(); len(nodes) > 0 && !_u.mutation.FeedbacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.FeedbacksTable,
			Columns: []string{chapter.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.FeedbacksTable,
			Columns: []string{chapter.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChapterUpdateOne is the builder for updating a single Chapter entity.
type ChapterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChapterMutation
}

// SetStoryID sets the "story_id" field.
func (_u *ChapterUpdateOne) SetStoryID(v uuid.UUID) *ChapterUpdateOne {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableStoryID(v *uuid.UUID) *ChapterUpdateOne {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetChapterNum sets the "chapter_num" field.
func (_u *ChapterUpdateOne) SetChapterNum(v int) *ChapterUpdateOne {
	_u.mutation.ResetChapterNum()
	_u.mutation.SetChapterNum(v)
	return _u
}

// SetNillableChapterNum sets the "chapter_num" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableChapterNum(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetChapterNum(*v)
	}
	return _u
}

// AddChapterNum adds value to the "chapter_num" field.
func (_u *ChapterUpdateOne) AddChapterNum(v int) *ChapterUpdateOne {
	_u.mutation.AddChapterNum(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *ChapterUpdateOne) SetBody(v json.RawMessage) *ChapterUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// AppendBody appends value to the "body" field.
func (_u *ChapterUpdateOne) AppendBody(v json.RawMessage) *ChapterUpdateOne {
	_u.mutation.AppendBody(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChapterUpdateOne) SetCreatedAt(v time.Time) *ChapterUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableCreatedAt(v *time.Time) *ChapterUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChapterUpdateOne) SetUpdatedAt(v time.Time) *ChapterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStory sets the "story" edge to the Story entity.
func (_u *ChapterUpdateOne) SetStory(v *Story) *ChapterUpdateOne {
	return _u.SetStoryID(v.ID)
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by IDs.
func (_u *ChapterUpdateOne) AddKeywordIDs(ids ...uuid.UUID) *ChapterUpdateOne {
	_u.mutation.AddKeywordIDs(ids...)
	return _u
}

// AddKeywords adds the "keywords" edges to the Keyword entity.
func (_u *ChapterUpdateOne) AddKeywords(v ...*Keyword) *ChapterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKeywordIDs(ids...)
}

// AddFeedbackIDs adds the "feedbacks" edge to the Feedback entity by IDs.
func (_u *ChapterUpdateOne) AddFeedbackIDs(ids ...uuid.UUID) *ChapterUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedbacks adds the "feedbacks" edges to the Feedback entity.
func (_u *ChapterUpdateOne) AddFeedbacks(v ...*Feedback) *ChapterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdateOne) Mutation() *ChapterMutation {
	return _u.mutation
}

// ClearStory clears the "story" edge to the Story entity.
func (_u *ChapterUpdateOne) ClearStory() *ChapterUpdateOne {
	_u.mutation.ClearStory()
	return _u
}

// ClearKeywords clears all "keywords" edges to the Keyword entity.
func (_u *ChapterUpdateOne) ClearKeywords() *ChapterUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// RemoveKeywordIDs removes the "keywords" edge to Keyword entities by IDs.
func (_u *ChapterUpdateOne) RemoveKeywordIDs(ids ...uuid.UUID) *ChapterUpdateOne {
	_u.mutation.RemoveKeywordIDs(ids...)
	return _u
}

// RemoveKeywords removes "keywords" edges to Keyword entities.
func (_u *ChapterUpdateOne) RemoveKeywords(v ...*Keyword) *ChapterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKeywordIDs(ids...)
}

// ClearFeedbacks clears all "feedbacks" edges to the Feedback entity.
func (_u *ChapterUpdateOne) ClearFeedbacks() *ChapterUpdateOne {
	_u.mutation.ClearFeedbacks()
	return _u
}

// RemoveFeedbackIDs removes the "feedbacks" edge to Feedback entities by IDs.
func (_u *ChapterUpdateOne) RemoveFeedbackIDs(ids ...uuid.UUID) *ChapterUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedbacks removes "feedbacks" edges to Feedback entities.
func (_u *ChapterUpdateOne) RemoveFeedbacks(v ...*Feedback) *ChapterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdateOne) Where(ps ...predicate.Chapter) *ChapterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChapterUpdateOne) Select(field string, fields ...string) *ChapterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chapter entity.
func (_u *ChapterUpdateOne) Save(ctx context.Context) (*Chapter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdateOne) SaveX(ctx context.Context) *Chapter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChapterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChapterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdateOne) check() error {
	if v, ok := _u.mutation.ChapterNum(); ok {
		if err := chapter.ChapterNumValidator(v); err != nil {
			return &ValidationError{Name: "chapter_num", err: fmt.Errorf(`ent: validator failed for field "Chapter.chapter_num": %w`, err)}
		}
	}
	if _u.mutation.StoryCleared() && len(_u.mutation.StoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.story"`)
	}
	return nil
}

func (_u *ChapterUpdateOne) sqlSave(ctx context.Context) (_node *Chapter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chapter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapter.FieldID)
		for _, f := range fields {
			if !chapter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chapter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChapterNum(); ok {
		_spec.SetField(chapter.FieldChapterNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterNum(); ok {
		_spec.AddField(chapter.FieldChapterNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(chapter.FieldBody, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBody(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chapter.FieldBody, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chapter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.StoryTable,
			Columns: []string{chapter.StoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chapter.StoryTable,
			Columns: []string{chapter.StoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KeywordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.KeywordsTable,
			Columns: []string{chapter.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKeywordsIDs(); len(nodes) > 0 && !_u.mutation.KeywordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.KeywordsTable,
			Columns: []string{chapter.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeywordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.KeywordsTable,
			Columns: []string{chapter.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.FeedbacksTable,
			Columns: []string{chapter.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbacksIDs(); len(nodes) > 0 && !_u.mutation.FeedbacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.FeedbacksTable,
			Columns: []string{chapter.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chapter.FeedbacksTable,
			Columns: []string{chapter.FeedbacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Chapter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
