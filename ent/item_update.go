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
	"github.com/abhisek/examiz/ent/item"
	"github.com/abhisek/examiz/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemUpdate) SetItemID(v string) *ItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableItemID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ItemUpdate) SetSubjectID(v string) *ItemUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableSubjectID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ItemUpdate) SetTopicID(v string) *ItemUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableTopicID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *ItemUpdate) ClearTopicID() *ItemUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetCompetencyID sets the "competency_id" field.
func (_u *ItemUpdate) SetCompetencyID(v string) *ItemUpdate {
	_u.mutation.SetCompetencyID(v)
	return _u
}

// SetNillableCompetencyID sets the "competency_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCompetencyID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCompetencyID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ItemUpdate) SetItemType(v string) *ItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableItemType(v *string) *ItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdate) SetDifficulty(v string) *ItemUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDifficulty(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (_u *ItemUpdate) SetCognitiveLevel(v string) *ItemUpdate {
	_u.mutation.SetCognitiveLevel(v)
	return _u
}

// SetNillableCognitiveLevel sets the "cognitive_level" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCognitiveLevel(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCognitiveLevel(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ItemUpdate) SetText(v string) *ItemUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableText(v *string) *ItemUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *ItemUpdate) SetChoices(v []string) *ItemUpdate {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *ItemUpdate) AppendChoices(v []string) *ItemUpdate {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *ItemUpdate) ClearChoices() *ItemUpdate {
	_u.mutation.ClearChoices()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ItemUpdate) SetAnswer(v json.RawMessage) *ItemUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// AppendAnswer appends value to the "answer" field.
func (_u *ItemUpdate) AppendAnswer(v json.RawMessage) *ItemUpdate {
	_u.mutation.AppendAnswer(v)
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ItemUpdate) SetVerified(v bool) *ItemUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableVerified(v *bool) *ItemUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := item.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Item.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompetencyID(); ok {
		if err := item.CompetencyIDValidator(v); err != nil {
			return &ValidationError{Name: "competency_id", err: fmt.Errorf(`ent: validator failed for field "Item.competency_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CognitiveLevel(); ok {
		if err := item.CognitiveLevelValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_level", err: fmt.Errorf(`ent: validator failed for field "Item.cognitive_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(item.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(item.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(item.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.CompetencyID(); ok {
		_spec.SetField(item.FieldCompetencyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveLevel(); ok {
		_spec.SetField(item.FieldCognitiveLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(item.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(item.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(item.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(item.FieldAnswer, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswer(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldAnswer, value)
		})
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(item.FieldVerified, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *ItemUpdateOne) SetItemID(v string) *ItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableItemID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ItemUpdateOne) SetSubjectID(v string) *ItemUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableSubjectID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ItemUpdateOne) SetTopicID(v string) *ItemUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableTopicID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *ItemUpdateOne) ClearTopicID() *ItemUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetCompetencyID sets the "competency_id" field.
func (_u *ItemUpdateOne) SetCompetencyID(v string) *ItemUpdateOne {
	_u.mutation.SetCompetencyID(v)
	return _u
}

// SetNillableCompetencyID sets the "competency_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCompetencyID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCompetencyID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ItemUpdateOne) SetItemType(v string) *ItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableItemType(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdateOne) SetDifficulty(v string) *ItemUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDifficulty(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (_u *ItemUpdateOne) SetCognitiveLevel(v string) *ItemUpdateOne {
	_u.mutation.SetCognitiveLevel(v)
	return _u
}

// SetNillableCognitiveLevel sets the "cognitive_level" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCognitiveLevel(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCognitiveLevel(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ItemUpdateOne) SetText(v string) *ItemUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableText(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetChoices sets the "choices" field.
func (_u *ItemUpdateOne) SetChoices(v []string) *ItemUpdateOne {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *ItemUpdateOne) AppendChoices(v []string) *ItemUpdateOne {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *ItemUpdateOne) ClearChoices() *ItemUpdateOne {
	_u.mutation.ClearChoices()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ItemUpdateOne) SetAnswer(v json.RawMessage) *ItemUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// AppendAnswer appends value to the "answer" field.
func (_u *ItemUpdateOne) AppendAnswer(v json.RawMessage) *ItemUpdateOne {
	_u.mutation.AppendAnswer(v)
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ItemUpdateOne) SetVerified(v bool) *ItemUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableVerified(v *bool) *ItemUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := item.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Item.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompetencyID(); ok {
		if err := item.CompetencyIDValidator(v); err != nil {
			return &ValidationError{Name: "competency_id", err: fmt.Errorf(`ent: validator failed for field "Item.competency_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := item.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "Item.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CognitiveLevel(); ok {
		if err := item.CognitiveLevelValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_level", err: fmt.Errorf(`ent: validator failed for field "Item.cognitive_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(item.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(item.FieldTopicID, field.TypeString, value)
	}
	if _u.mutation.TopicIDCleared() {
		_spec.ClearField(item.FieldTopicID, field.TypeString)
	}
	if value, ok := _u.mutation.CompetencyID(); ok {
		_spec.SetField(item.FieldCompetencyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(item.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveLevel(); ok {
		_spec.SetField(item.FieldCognitiveLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(item.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(item.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(item.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(item.FieldAnswer, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswer(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldAnswer, value)
		})
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(item.FieldVerified, field.TypeBool, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
