// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/assessment"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentCreate) SetCreatedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCreatedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentCreate) SetAssessmentID(v string) *AssessmentCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AssessmentCreate) SetTitle(v string) *AssessmentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAssessmentType sets the "assessment_type" field.
func (_c *AssessmentCreate) SetAssessmentType(v string) *AssessmentCreate {
	_c.mutation.SetAssessmentType(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *AssessmentCreate) SetSubjectID(v string) *AssessmentCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetBlueprint sets the "blueprint" field.
func (_c *AssessmentCreate) SetBlueprint(v json.RawMessage) *AssessmentCreate {
	_c.mutation.SetBlueprint(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *AssessmentCreate) SetItems(v json.RawMessage) *AssessmentCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *AssessmentCreate) SetTotalItems(v int) *AssessmentCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assessment.created_at"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Assessment.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessment.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Assessment.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := assessment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assessment.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentType(); !ok {
		return &ValidationError{Name: "assessment_type", err: errors.New(`ent: missing required field "Assessment.assessment_type"`)}
	}
	if v, ok := _c.mutation.AssessmentType(); ok {
		if err := assessment.AssessmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "assessment_type", err: fmt.Errorf(`ent: validator failed for field "Assessment.assessment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Assessment.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := assessment.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Blueprint(); !ok {
		return &ValidationError{Name: "blueprint", err: errors.New(`ent: missing required field "Assessment.blueprint"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "Assessment.items"`)}
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "Assessment.total_items"`)}
	}
	if v, ok := _c.mutation.TotalItems(); ok {
		if err := assessment.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Assessment.total_items": %w`, err)}
		}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.AssessmentType(); ok {
		_spec.SetField(assessment.FieldAssessmentType, field.TypeString, value)
		_node.AssessmentType = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(assessment.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Blueprint(); ok {
		_spec.SetField(assessment.FieldBlueprint, field.TypeJSON, value)
		_node.Blueprint = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(assessment.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(assessment.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
