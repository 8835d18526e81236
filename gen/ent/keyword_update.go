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
	"github.com/tempsotsusei/kotobanotane/gen/ent/keyword"
	"github.com/tempsotsusei/kotobanotane/gen/ent/predicate"
)

// KeywordUpdate is the builder for updating Keyword entities.
type KeywordUpdate struct {
	config
	hooks    []Hook
	mutation *KeywordMutation
}

// Where appends a list predicates to the KeywordUpdate builder.
func (_u *KeywordUpdate) Where(ps ...predicate.Keyword) *KeywordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *KeywordUpdate) SetChapterID(v uuid.UUID) *KeywordUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableChapterID(v *uuid.UUID) *KeywordUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *KeywordUpdate) SetKeyword(v string) *KeywordUpdate {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableKeyword(v *string) *KeywordUpdate {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *KeywordUpdate) SetPosition(v int) *KeywordUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillablePosition(v *int) *KeywordUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *KeywordUpdate) AddPosition(v int) *KeywordUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *KeywordUpdate) SetCreatedAt(v time.Time) *KeywordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableCreatedAt(v *time.Time) *KeywordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KeywordUpdate) SetUpdatedAt(v time.Time) *KeywordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *KeywordUpdate) SetChapter(v *Chapter) *KeywordUpdate {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the KeywordMutation object of the builder.
func (_u *KeywordUpdate) Mutation() *KeywordMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *KeywordUpdate) ClearChapter() *KeywordUpdate {
	_u.mutation.ClearChapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KeywordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KeywordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KeywordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := keyword.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeywordUpdate) check() error {
	if v, ok := _u.mutation.Keyword(); ok {
		if err := keyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Keyword.keyword": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := keyword.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Keyword.position": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Keyword.chapter"`)
	}
	return nil
}

func (_u *KeywordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyword.Table, keyword.Columns, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(keyword.FieldKeyword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(keyword.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(keyword.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(keyword.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(keyword.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChapterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyword.ChapterTable,
			Columns: []string{keyword.ChapterColumn},
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
			Table:   keyword.ChapterTable,
			Columns: []string{keyword.ChapterColumn},
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
			err = &NotFoundError{keyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KeywordUpdateOne is the builder for updating a single Keyword entity.
type KeywordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeywordMutation
}

// SetChapterID sets the "chapter_id" field.
func (_u *KeywordUpdateOne) SetChapterID(v uuid.UUID) *KeywordUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableChapterID(v *uuid.UUID) *KeywordUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetKeyword sets the "keyword" field.
func (_u *KeywordUpdateOne) SetKeyword(v string) *KeywordUpdateOne {
	_u.mutation.SetKeyword(v)
	return _u
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableKeyword(v *string) *KeywordUpdateOne {
	if v != nil {
		_u.SetKeyword(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *KeywordUpdateOne) SetPosition(v int) *KeywordUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillablePosition(v *int) *KeywordUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *KeywordUpdateOne) AddPosition(v int) *KeywordUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *KeywordUpdateOne) SetCreatedAt(v time.Time) *KeywordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableCreatedAt(v *time.Time) *KeywordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KeywordUpdateOne) SetUpdatedAt(v time.Time) *KeywordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChapter sets the "chapter" edge to the Chapter entity.
func (_u *KeywordUpdateOne) SetChapter(v *Chapter) *KeywordUpdateOne {
	return _u.SetChapterID(v.ID)
}

// Mutation returns the KeywordMutation object of the builder.
func (_u *KeywordUpdateOne) Mutation() *KeywordMutation {
	return _u.mutation
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (_u *KeywordUpdateOne) ClearChapter() *KeywordUpdateOne {
	_u.mutation.ClearChapter()
	return _u
}

// Where appends a list predicates to the KeywordUpdate builder.
func (_u *KeywordUpdateOne) Where(ps ...predicate.Keyword) *KeywordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KeywordUpdateOne) Select(field string, fields ...string) *KeywordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Keyword entity.
func (_u *KeywordUpdateOne) Save(ctx context.Context) (*Keyword, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordUpdateOne) SaveX(ctx context.Context) *Keyword {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KeywordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KeywordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := keyword.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeywordUpdateOne) check() error {
	if v, ok := _u.mutation.Keyword(); ok {
		if err := keyword.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Keyword.keyword": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := keyword.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Keyword.position": %w`, err)}
		}
	}
	if _u.mutation.ChapterCleared() && len(_u.mutation.ChapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Keyword.chapter"`)
	}
	return nil
}

func (_u *KeywordUpdateOne) sqlSave(ctx context.Context) (_node *Keyword, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyword.Table, keyword.Columns, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Keyword.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keyword.FieldID)
		for _, f := range fields {
			if !keyword.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keyword.FieldID {
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
	if value, ok := _u.mutation.Keyword(); ok {
		_spec.SetField(keyword.FieldKeyword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(keyword.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(keyword.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(keyword.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(keyword.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChapterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyword.ChapterTable,
			Columns: []string{keyword.ChapterColumn},
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
			Table:   keyword.ChapterTable,
			Columns: []string{keyword.ChapterColumn},
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
	_node = &Keyword{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
