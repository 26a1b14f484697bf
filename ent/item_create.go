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
	"github.com/abhisek/examiz/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemCreate) SetCreatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCreatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ItemCreate) SetItemID(v string) *ItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *ItemCreate) SetSubjectID(v string) *ItemCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ItemCreate) SetTopicID(v string) *ItemCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableTopicID(v *string) *ItemCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetCompetencyID sets the "competency_id" field.
func (_c *ItemCreate) SetCompetencyID(v string) *ItemCreate {
	_c.mutation.SetCompetencyID(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *ItemCreate) SetItemType(v string) *ItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemCreate) SetDifficulty(v string) *ItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (_c *ItemCreate) SetCognitiveLevel(v string) *ItemCreate {
	_c.mutation.SetCognitiveLevel(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ItemCreate) SetText(v string) *ItemCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetChoices sets the "choices" field.
func (_c *ItemCreate) SetChoices(v []string) *ItemCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ItemCreate) SetAnswer(v json.RawMessage) *ItemCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ItemCreate) SetVerified(v bool) *ItemCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ItemCreate) SetNillableVerified(v *bool) *ItemCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := item.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := item.DefaultVerified
		_c.mutation.SetVerified(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Item.created_at"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Item.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Item.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := item.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Item.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompetencyID(); !ok {
		return &ValidationError{Name: "competency_id", err: errors.New(`ent: missing required field "Item.competency_id"`)}
	}
	if v, ok := _c.mutation.CompetencyID(); ok {
		if err := item.CompetencyIDValidator(v); err != nil {
			return &ValidationError{Name: "competency_id", err: fmt.Errorf(`ent: validator failed for field "Item.competency_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "Item.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Item.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CognitiveLevel(); !ok {
		return &ValidationError{Name: "cognitive_level", err: errors.New(`ent: missing required field "Item.cognitive_level"`)}
	}
	if v, ok := _c.mutation.CognitiveLevel(); ok {
		if err := item.CognitiveLevelValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_level", err: fmt.Errorf(`ent: validator failed for field "Item.cognitive_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Item.text"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Item.answer"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "Item.verified"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(item.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(item.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.CompetencyID(); ok {
		_spec.SetField(item.FieldCompetencyID, field.TypeString, value)
		_node.CompetencyID = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CognitiveLevel(); ok {
		_spec.SetField(item.FieldCognitiveLevel, field.TypeString, value)
		_node.CognitiveLevel = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(item.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(item.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(item.FieldAnswer, field.TypeJSON, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(item.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
