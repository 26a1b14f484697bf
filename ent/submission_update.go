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
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *SubmissionUpdate) SetSubmissionID(v string) *SubmissionUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmissionID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionUpdate) SetUserID(v string) *SubmissionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUserID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *SubmissionUpdate) SetAssessmentID(v string) *SubmissionUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAssessmentID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (_u *SubmissionUpdate) ClearAssessmentID() *SubmissionUpdate {
	_u.mutation.ClearAssessmentID()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubmissionUpdate) SetSubjectID(v string) *SubmissionUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubjectID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SubmissionUpdate) SetAnswers(v json.RawMessage) *SubmissionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SubmissionUpdate) AppendAnswers(v json.RawMessage) *SubmissionUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SubmissionUpdate) SetScore(v float64) *SubmissionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableScore(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionUpdate) AddScore(v float64) *SubmissionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *SubmissionUpdate) SetTotalItems(v int) *SubmissionUpdate {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTotalItems(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *SubmissionUpdate) AddTotalItems(v int) *SubmissionUpdate {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdate) SetSubmittedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.SubmissionID(); ok {
		if err := submission.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "Submission.submission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := submission.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Submission.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := submission.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Submission.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalItems(); ok {
		if err := submission.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Submission.total_items": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(submission.FieldSubmissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(submission.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(submission.FieldAssessmentID, field.TypeString, value)
	}
	if _u.mutation.AssessmentIDCleared() {
		_spec.ClearField(submission.FieldAssessmentID, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(submission.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submission.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submission.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(submission.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(submission.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *SubmissionUpdateOne) SetSubmissionID(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmissionID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionUpdateOne) SetUserID(v string) *SubmissionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUserID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *SubmissionUpdateOne) SetAssessmentID(v string) *SubmissionUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAssessmentID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (_u *SubmissionUpdateOne) ClearAssessmentID() *SubmissionUpdateOne {
	_u.mutation.ClearAssessmentID()
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubmissionUpdateOne) SetSubjectID(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubjectID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SubmissionUpdateOne) SetAnswers(v json.RawMessage) *SubmissionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *SubmissionUpdateOne) AppendAnswers(v json.RawMessage) *SubmissionUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SubmissionUpdateOne) SetScore(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableScore(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionUpdateOne) AddScore(v float64) *SubmissionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *SubmissionUpdateOne) SetTotalItems(v int) *SubmissionUpdateOne {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTotalItems(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *SubmissionUpdateOne) AddTotalItems(v int) *SubmissionUpdateOne {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdateOne) SetSubmittedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.SubmissionID(); ok {
		if err := submission.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "Submission.submission_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := submission.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Submission.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := submission.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Submission.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalItems(); ok {
		if err := submission.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Submission.total_items": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.SubmissionID(); ok {
		_spec.SetField(submission.FieldSubmissionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(submission.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(submission.FieldAssessmentID, field.TypeString, value)
	}
	if _u.mutation.AssessmentIDCleared() {
		_spec.ClearField(submission.FieldAssessmentID, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(submission.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submission.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submission.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(submission.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(submission.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
