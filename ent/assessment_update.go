// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/assessment"
	"github.com/abhisek/examiz/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentUpdate) SetAssessmentID(v string) *AssessmentUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAssessmentID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdate) SetTitle(v string) *AssessmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTitle(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAssessmentType sets the "assessment_type" field.
func (_u *AssessmentUpdate) SetAssessmentType(v string) *AssessmentUpdate {
	_u.mutation.SetAssessmentType(v)
	return _u
}

// SetNillableAssessmentType sets the "assessment_type" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAssessmentType(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetAssessmentType(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssessmentUpdate) SetSubjectID(v string) *AssessmentUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableSubjectID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetBlueprint sets the "blueprint" field.
func (_u *AssessmentUpdate) SetBlueprint(v json.RawMessage) *AssessmentUpdate {
	_u.mutation.SetBlueprint(v)
	return _u
}

// AppendBlueprint appends value to the "blueprint" field.
func (_u *AssessmentUpdate) AppendBlueprint(v json.RawMessage) *AssessmentUpdate {
	_u.mutation.AppendBlueprint(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *AssessmentUpdate) SetItems(v json.RawMessage) *AssessmentUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *AssessmentUpdate) AppendItems(v json.RawMessage) *AssessmentUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AssessmentUpdate) SetTotalItems(v int) *AssessmentUpdate {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTotalItems(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AssessmentUpdate) AddTotalItems(v int) *AssessmentUpdate {
	_u.mutation.AddTotalItems(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentType(); ok {
		if err := assessment.AssessmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "assessment_type", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := assessment.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalItems(); ok {
		if err := assessment.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Assessment.total_items": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentType(); ok {
		_spec.SetField(assessment.FieldAssessmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(assessment.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Blueprint(); ok {
		_spec.SetField(assessment.FieldBlueprint, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlueprint(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldBlueprint, value)
		})
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(assessment.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(assessment.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(assessment.FieldTotalItems, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentUpdateOne) SetAssessmentID(v string) *AssessmentUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAssessmentID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdateOne) SetTitle(v string) *AssessmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTitle(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAssessmentType sets the "assessment_type" field.
func (_u *AssessmentUpdateOne) SetAssessmentType(v string) *AssessmentUpdateOne {
	_u.mutation.SetAssessmentType(v)
	return _u
}

// SetNillableAssessmentType sets the "assessment_type" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAssessmentType(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentType(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssessmentUpdateOne) SetSubjectID(v string) *AssessmentUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableSubjectID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetBlueprint sets the "blueprint" field.
func (_u *AssessmentUpdateOne) SetBlueprint(v json.RawMessage) *AssessmentUpdateOne {
	_u.mutation.SetBlueprint(v)
	return _u
}

// AppendBlueprint appends value to the "blueprint" field.
func (_u *AssessmentUpdateOne) AppendBlueprint(v json.RawMessage) *AssessmentUpdateOne {
	_u.mutation.AppendBlueprint(v)
	return _u
}

// SetItems sets the "items" field.
func (_u *AssessmentUpdateOne) SetItems(v json.RawMessage) *AssessmentUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *AssessmentUpdateOne) AppendItems(v json.RawMessage) *AssessmentUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AssessmentUpdateOne) SetTotalItems(v int) *AssessmentUpdateOne {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTotalItems(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AssessmentUpdateOne) AddTotalItems(v int) *AssessmentUpdateOne {
	_u.mutation.AddTotalItems(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentType(); ok {
		if err := assessment.AssessmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "assessment_type", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := assessment.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalItems(); ok {
		if err := assessment.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Assessment.total_items": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentType(); ok {
		_spec.SetField(assessment.FieldAssessmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(assessment.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Blueprint(); ok {
		_spec.SetField(assessment.FieldBlueprint, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlueprint(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldBlueprint, value)
		})
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(assessment.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(assessment.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(assessment.FieldTotalItems, field.TypeInt, value)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
