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
	"github.com/tempsotsusei/kotobanotane/gen/ent/predicate"
	"github.com/tempsotsusei/kotobanotane/gen/ent/story"
)

// StoryUpdate is the builder for updating Story entities.
type StoryUpdate struct {
	config
	hooks    []Hook
	mutation *StoryMutation
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdate) Where(ps ...predicate.Story) *StoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StoryUpdate) SetUserID(v string) *StoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableUserID(v *string) *StoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryUpdate) SetTitle(v string) *StoryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableTitle(v *string) *StoryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetThumbnailID sets the "thumbnail_id" field.
func (_u *StoryUpdate) SetThumbnailID(v string) *StoryUpdate {
	_u.mutation.SetThumbnailID(v)
	return _u
}

// SetNillableThumbnailID sets the "thumbnail_id" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableThumbnailID(v *string) *StoryUpdate {
	if v != nil {
		_u.SetThumbnailID(*v)
	}
	return _u
}

// ClearThumbnailID clears the value of the "thumbnail_id" field.
func (_u *StoryUpdate) ClearThumbnailID() *StoryUpdate {
	_u.mutation.ClearThumbnailID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StoryUpdate) SetCreatedAt(v time.Time) *StoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableCreatedAt(v *time.Time) *StoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoryUpdate) SetUpdatedAt(v time.Time) *StoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *StoryUpdate) AddChapterIDs(ids ...uuid.UUID) *StoryUpdate {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *StoryUpdate) AddChapters(v ...*Chapter) *StoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdate) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *StoryUpdate) ClearChapters() *StoryUpdate {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *StoryUpdate) RemoveChapterIDs(ids ...uuid.UUID) *StoryUpdate {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *StoryUpdate) RemoveChapters(v ...*Chapter) *StoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := story.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := story.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Story.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(story.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailID(); ok {
		_spec.SetField(story.FieldThumbnailID, field.TypeString, value)
	}
	if _u.mutation.ThumbnailIDCleared() {
		_spec.ClearField(story.FieldThumbnailID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(story.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChaptersTable,
			Columns: []string{story.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChaptersTable,
			Columns: []string{story.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChaptersTable,
			Columns: []string{story.ChaptersColumn},
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
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryUpdateOne is the builder for updating a single Story entity.
type StoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *StoryUpdateOne) SetUserID(v string) *StoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableUserID(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryUpdateOne) SetTitle(v string) *StoryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableTitle(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetThumbnailID sets the "thumbnail_id" field.
func (_u *StoryUpdateOne) SetThumbnailID(v string) *StoryUpdateOne {
	_u.mutation.SetThumbnailID(v)
	return _u
}

// SetNillableThumbnailID sets the "thumbnail_id" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableThumbnailID(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetThumbnailID(*v)
	}
	return _u
}

// ClearThumbnailID clears the value of the "thumbnail_id" field.
func (_u *StoryUpdateOne) ClearThumbnailID() *StoryUpdateOne {
	_u.mutation.ClearThumbnailID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StoryUpdateOne) SetCreatedAt(v time.Time) *StoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableCreatedAt(v *time.Time) *StoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoryUpdateOne) SetUpdatedAt(v time.Time) *StoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by IDs.
func (_u *StoryUpdateOne) AddChapterIDs(ids ...uuid.UUID) *StoryUpdateOne {
	_u.mutation.AddChapterIDs(ids...)
	return _u
}

// AddChapters adds the "chapters" edges to the Chapter entity.
func (_u *StoryUpdateOne) AddChapters(v ...*Chapter) *StoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChapterIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdateOne) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearChapters clears all "chapters" edges to the Chapter entity.
func (_u *StoryUpdateOne) ClearChapters() *StoryUpdateOne {
	_u.mutation.ClearChapters()
	return _u
}

// RemoveChapterIDs removes the "chapters" edge to Chapter entities by IDs.
func (_u *StoryUpdateOne) RemoveChapterIDs(ids ...uuid.UUID) *StoryUpdateOne {
	_u.mutation.RemoveChapterIDs(ids...)
	return _u
}

// RemoveChapters removes "chapters" edges to Chapter entities.
func (_u *StoryUpdateOne) RemoveChapters(v ...*Chapter) *StoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChapterIDs(ids...)
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdateOne) Where(ps ...predicate.Story) *StoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryUpdateOne) Select(field string, fields ...string) *StoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Story entity.
func (_u *StoryUpdateOne) Save(ctx context.Context) (*Story, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdateOne) SaveX(ctx context.Context) *Story {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := story.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := story.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Story.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryUpdateOne) sqlSave(ctx context.Context) (_node *Story, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Story.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, story.FieldID)
		for _, f := range fields {
			if !story.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != story.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(story.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailID(); ok {
		_spec.SetField(story.FieldThumbnailID, field.TypeString, value)
	}
	if _u.mutation.ThumbnailIDCleared() {
		_spec.ClearField(story.FieldThumbnailID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(story.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChaptersTable,
			Columns: []string{story.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChaptersIDs(); len(nodes) > 0 && !_u.mutation.ChaptersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChaptersTable,
			Columns: []string{story.ChaptersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChaptersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChaptersTable,
			Columns: []string{story.ChaptersColumn},
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
	_node = &Story{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
