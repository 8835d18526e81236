// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tempsotsusei/kotobanotane/gen/ent/chapter"
	"github.com/tempsotsusei/kotobanotane/gen/ent/feedback"
	"github.com/tempsotsusei/kotobanotane/gen/ent/predicate"
)

// FeedbackUpdate is the builder for updating Feedback entities.
type FeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackMutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdate) Where(ps ...predicate.Feedback) *FeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *FeedbackUpdate) SetChapterID(v uuid.UUID) *FeedbackUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableChapterID(v *uuid.UUID) *FeedbackUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *FeedbackUpdate) SetFeedback(v string) *FeedbackUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableFeedback(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FeedbackUpdate) SetCreatedAt(v time.Time) *FeedbackUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableCreatedAt(v *time.Time) *FeedbackUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedbackUpdate) SetUpdatedAt(v time.Time) *FeedbackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *FeedbackUpdate) SetChapter(v *Chapter) *FeedbackUpdate {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdate) Mutation() *FeedbackMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *FeedbackUpdate) ClearChapter() *FeedbackUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedbackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackUpdate) check() error {
	if v, ok := _u.mutation.Feedback(); ok {
		if err := feedback.FeedbackValidator(v); err != nil {
			return &ValidationError{Name: "feedback", err: fmt.Errorf(`ent: validator failed for field "Feedback.feedback": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feedback.chapter"`)
	}
	return nil
}

func (_u *FeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(feedback.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChapterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.ChapterTable,
			Columns: []string{feedback.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.ChapterTable,
			Columns: []string{feedback.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackUpdateOne is the builder for updating a single Feedback entity.
type FeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackMutation
}

// SetChapterID sets the "chapter_id" field.
func (_u *FeedbackUpdateOne) SetChapterID(v uuid.UUID) *FeedbackUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableChapterID(v *uuid.UUID) *FeedbackUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *FeedbackUpdateOne) SetFeedback(v string) *FeedbackUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableFeedback(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FeedbackUpdateOne) SetCreatedAt(v time.Time) *FeedbackUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableCreatedAt(v *time.Time) *FeedbackUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedbackUpdateOne) SetUpdatedAt(v time.Time) *FeedbackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *FeedbackUpdateOne) SetChapter(v *Chapter) *FeedbackUpdateOne {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdateOne) Mutation() *FeedbackMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *FeedbackUpdateOne) ClearChapter() *FeedbackUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdateOne) Where(ps ...predicate.Feedback) *FeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackUpdateOne) Select(field string, fields ...string) *FeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feedback entity.
func (_u *FeedbackUpdateOne) Save(ctx context.Context) (*Feedback, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdateOne) SaveX(ctx context.Context) *Feedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedbackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.Feedback(); ok {
		if err := feedback.FeedbackValidator(v); err != nil {
			return &ValidationError{Name: "feedback", err: fmt.Errorf(`ent: validator failed for field "Feedback.feedback": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feedback.chapter"`)
	}
	return nil
}

func (_u *FeedbackUpdateOne) sqlSave(ctx context.Context) (_node *Feedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedback.FieldID)
		for _, f := range fields {
			if !feedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedback.FieldID {
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
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(feedback.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChapterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.ChapterTable,
			Columns: []string{feedback.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.ChapterTable,
			Columns: []string{feedback.ChapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Feedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
