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
	"github.com/abhisek/examiz/ent/assessment"
	"github.com/abhisek/examiz/ent/item"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/submission"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessment = "Assessment"
	TypeItem       = "Item"
	TypeSubmission = "Submission"
)

// AssessmentMutation represents an operation that mutates the Assessment nodes in the graph.
type AssessmentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	assessment_id   *string
	title           *string
	assessment_type *string
	subject_id      *string
	blueprint       *json.RawMessage
	appendblueprint json.RawMessage
	items           *json.RawMessage
	appenditems     json.RawMessage
	total_items     *int
	addtotal_items  *int
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Assessment, error)
	predicates      []predicate.Assessment
}

var _ ent.Mutation = (*AssessmentMutation)(nil)

// assessmentOption allows management of the mutation configuration using functional options.
type assessmentOption func(*AssessmentMutation)

// newAssessmentMutation creates new mutation for the Assessment entity.
func newAssessmentMutation(c config, op Op, opts ...assessmentOption) *AssessmentMutation {
	m := &AssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentID sets the ID field of the mutation.
func withAssessmentID(id int) assessmentOption {
	return func(m *AssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assessment
		)
		m.oldValue = func(ctx context.Context) (*Assessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessment sets the old Assessment of the mutation.
func withAssessment(node *Assessment) assessmentOption {
	return func(m *AssessmentMutation) {
		m.oldValue = func(context.Context) (*Assessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AssessmentMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AssessmentMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AssessmentMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetTitle sets the "title" field.
func (m *AssessmentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AssessmentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *AssessmentMutation) ResetTitle() {
	m.title = nil
}

// SetAssessmentType sets the "assessment_type" field.
func (m *AssessmentMutation) SetAssessmentType(s string) {
	m.assessment_type = &s
}

// AssessmentType returns the value of the "assessment_type" field in the mutation.
func (m *AssessmentMutation) AssessmentType() (r string, exists bool) {
	v := m.assessment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentType returns the old "assessment_type" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldAssessmentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentType: %w", err)
	}
	return oldValue.AssessmentType, nil
}

// ResetAssessmentType resets all changes to the "assessment_type" field.
func (m *AssessmentMutation) ResetAssessmentType() {
	m.assessment_type = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *AssessmentMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *AssessmentMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *AssessmentMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetBlueprint sets the "blueprint" field.
func (m *AssessmentMutation) SetBlueprint(jm json.RawMessage) {
	m.blueprint = &jm
	m.appendblueprint = nil
}

// Blueprint returns the value of the "blueprint" field in the mutation.
func (m *AssessmentMutation) Blueprint() (r json.RawMessage, exists bool) {
	v := m.blueprint
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprint returns the old "blueprint" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldBlueprint(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprint: %w", err)
	}
	return oldValue.Blueprint, nil
}

// AppendBlueprint adds jm to the "blueprint" field.
func (m *AssessmentMutation) AppendBlueprint(jm json.RawMessage) {
	m.appendblueprint = append(m.appendblueprint, jm...)
}

// AppendedBlueprint returns the list of values that were appended to the "blueprint" field in this mutation.
func (m *AssessmentMutation) AppendedBlueprint() (json.RawMessage, bool) {
	if len(m.appendblueprint) == 0 {
		return nil, false
	}
	return m.appendblueprint, true
}

// ResetBlueprint resets all changes to the "blueprint" field.
func (m *AssessmentMutation) ResetBlueprint() {
	m.blueprint = nil
	m.appendblueprint = nil
}

// SetItems sets the "items" field.
func (m *AssessmentMutation) SetItems(jm json.RawMessage) {
	m.items = &jm
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *AssessmentMutation) Items() (r json.RawMessage, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldItems(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds jm to the "items" field.
func (m *AssessmentMutation) AppendItems(jm json.RawMessage) {
	m.appenditems = append(m.appenditems, jm...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *AssessmentMutation) AppendedItems() (json.RawMessage, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *AssessmentMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetTotalItems sets the "total_items" field.
func (m *AssessmentMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *AssessmentMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *AssessmentMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *AssessmentMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *AssessmentMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// Where appends a list predicates to the AssessmentMutation builder.
func (m *AssessmentMutation) Where(ps ...predicate.Assessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assessment).
func (m *AssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, assessment.FieldCreatedAt)
	}
	if m.assessment_id != nil {
		fields = append(fields, assessment.FieldAssessmentID)
	}
	if m.title != nil {
		fields = append(fields, assessment.FieldTitle)
	}
	if m.assessment_type != nil {
		fields = append(fields, assessment.FieldAssessmentType)
	}
	if m.subject_id != nil {
		fields = append(fields, assessment.FieldSubjectID)
	}
	if m.blueprint != nil {
		fields = append(fields, assessment.FieldBlueprint)
	}
	if m.items != nil {
		fields = append(fields, assessment.FieldItems)
	}
	if m.total_items != nil {
		fields = append(fields, assessment.FieldTotalItems)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldCreatedAt:
		return m.CreatedAt()
	case assessment.FieldAssessmentID:
		return m.AssessmentID()
	case assessment.FieldTitle:
		return m.Title()
	case assessment.FieldAssessmentType:
		return m.AssessmentType()
	case assessment.FieldSubjectID:
		return m.SubjectID()
	case assessment.FieldBlueprint:
		return m.Blueprint()
	case assessment.FieldItems:
		return m.Items()
	case assessment.FieldTotalItems:
		return m.TotalItems()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessment.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case assessment.FieldTitle:
		return m.OldTitle(ctx)
	case assessment.FieldAssessmentType:
		return m.OldAssessmentType(ctx)
	case assessment.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case assessment.FieldBlueprint:
		return m.OldBlueprint(ctx)
	case assessment.FieldItems:
		return m.OldItems(ctx)
	case assessment.FieldTotalItems:
		return m.OldTotalItems(ctx)
	}
	return nil, fmt.Errorf("unknown Assessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessment.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case assessment.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case assessment.FieldAssessmentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentType(v)
		return nil
	case assessment.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case assessment.FieldBlueprint:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprint(v)
		return nil
	case assessment.FieldItems:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case assessment.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, assessment.FieldTotalItems)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldTotalItems:
		return m.AddedTotalItems()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Assessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentMutation) ResetField(name string) error {
	switch name {
	case assessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessment.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case assessment.FieldTitle:
		m.ResetTitle()
		return nil
	case assessment.FieldAssessmentType:
		m.ResetAssessmentType()
		return nil
	case assessment.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case assessment.FieldBlueprint:
		m.ResetBlueprint()
		return nil
	case assessment.FieldItems:
		m.ResetItems()
		return nil
	case assessment.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Assessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Assessment edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	item_id         *string
	subject_id      *string
	topic_id        *string
	competency_id   *string
	item_type       *string
	difficulty      *string
	cognitive_level *string
	text            *string
	choices         *[]string
	appendchoices   []string
	answer          *json.RawMessage
	appendanswer    json.RawMessage
	verified        *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Item, error)
	predicates      []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id int) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetItemID sets the "item_id" field.
func (m *ItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *ItemMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *ItemMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *ItemMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *ItemMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ItemMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *ItemMutation) ClearTopicID() {
	m.topic_id = nil
	m.clearedFields[item.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *ItemMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[item.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ItemMutation) ResetTopicID() {
	m.topic_id = nil
	delete(m.clearedFields, item.FieldTopicID)
}

// SetCompetencyID sets the "competency_id" field.
func (m *ItemMutation) SetCompetencyID(s string) {
	m.competency_id = &s
}

// CompetencyID returns the value of the "competency_id" field in the mutation.
func (m *ItemMutation) CompetencyID() (r string, exists bool) {
	v := m.competency_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetencyID returns the old "competency_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCompetencyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetencyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetencyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetencyID: %w", err)
	}
	return oldValue.CompetencyID, nil
}

// ResetCompetencyID resets all changes to the "competency_id" field.
func (m *ItemMutation) ResetCompetencyID() {
	m.competency_id = nil
}

// SetItemType sets the "item_type" field.
func (m *ItemMutation) SetItemType(s string) {
	m.item_type = &s
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *ItemMutation) ItemType() (r string, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *ItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ItemMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ItemMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ItemMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetCognitiveLevel sets the "cognitive_level" field.
func (m *ItemMutation) SetCognitiveLevel(s string) {
	m.cognitive_level = &s
}

// CognitiveLevel returns the value of the "cognitive_level" field in the mutation.
func (m *ItemMutation) CognitiveLevel() (r string, exists bool) {
	v := m.cognitive_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveLevel returns the old "cognitive_level" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCognitiveLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveLevel: %w", err)
	}
	return oldValue.CognitiveLevel, nil
}

// ResetCognitiveLevel resets all changes to the "cognitive_level" field.
func (m *ItemMutation) ResetCognitiveLevel() {
	m.cognitive_level = nil
}

// SetText sets the "text" field.
func (m *ItemMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ItemMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ItemMutation) ResetText() {
	m.text = nil
}

// SetChoices sets the "choices" field.
func (m *ItemMutation) SetChoices(s []string) {
	m.choices = &s
	m.appendchoices = nil
}

// Choices returns the value of the "choices" field in the mutation.
func (m *ItemMutation) Choices() (r []string, exists bool) {
	v := m.choices
	if v == nil {
		return
	}
	return *v, true
}

// OldChoices returns the old "choices" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldChoices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoices: %w", err)
	}
	return oldValue.Choices, nil
}

// AppendChoices adds s to the "choices" field.
func (m *ItemMutation) AppendChoices(s []string) {
	m.appendchoices = append(m.appendchoices, s...)
}

// AppendedChoices returns the list of values that were appended to the "choices" field in this mutation.
func (m *ItemMutation) AppendedChoices() ([]string, bool) {
	if len(m.appendchoices) == 0 {
		return nil, false
	}
	return m.appendchoices, true
}

// ClearChoices clears the value of the "choices" field.
func (m *ItemMutation) ClearChoices() {
	m.choices = nil
	m.appendchoices = nil
	m.clearedFields[item.FieldChoices] = struct{}{}
}

// ChoicesCleared returns if the "choices" field was cleared in this mutation.
func (m *ItemMutation) ChoicesCleared() bool {
	_, ok := m.clearedFields[item.FieldChoices]
	return ok
}

// ResetChoices resets all changes to the "choices" field.
func (m *ItemMutation) ResetChoices() {
	m.choices = nil
	m.appendchoices = nil
	delete(m.clearedFields, item.FieldChoices)
}

// SetAnswer sets the "answer" field.
func (m *ItemMutation) SetAnswer(jm json.RawMessage) {
	m.answer = &jm
	m.appendanswer = nil
}

// Answer returns the value of the "answer" field in the mutation.
func (m *ItemMutation) Answer() (r json.RawMessage, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAnswer(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// AppendAnswer adds jm to the "answer" field.
func (m *ItemMutation) AppendAnswer(jm json.RawMessage) {
	m.appendanswer = append(m.appendanswer, jm...)
}

// AppendedAnswer returns the list of values that were appended to the "answer" field in this mutation.
func (m *ItemMutation) AppendedAnswer() (json.RawMessage, bool) {
	if len(m.appendanswer) == 0 {
		return nil, false
	}
	return m.appendanswer, true
}

// ResetAnswer resets all changes to the "answer" field.
func (m *ItemMutation) ResetAnswer() {
	m.answer = nil
	m.appendanswer = nil
}

// SetVerified sets the "verified" field.
func (m *ItemMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *ItemMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *ItemMutation) ResetVerified() {
	m.verified = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, item.FieldCreatedAt)
	}
	if m.item_id != nil {
		fields = append(fields, item.FieldItemID)
	}
	if m.subject_id != nil {
		fields = append(fields, item.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, item.FieldTopicID)
	}
	if m.competency_id != nil {
		fields = append(fields, item.FieldCompetencyID)
	}
	if m.item_type != nil {
		fields = append(fields, item.FieldItemType)
	}
	if m.difficulty != nil {
		fields = append(fields, item.FieldDifficulty)
	}
	if m.cognitive_level != nil {
		fields = append(fields, item.FieldCognitiveLevel)
	}
	if m.text != nil {
		fields = append(fields, item.FieldText)
	}
	if m.choices != nil {
		fields = append(fields, item.FieldChoices)
	}
	if m.answer != nil {
		fields = append(fields, item.FieldAnswer)
	}
	if m.verified != nil {
		fields = append(fields, item.FieldVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldCreatedAt:
		return m.CreatedAt()
	case item.FieldItemID:
		return m.ItemID()
	case item.FieldSubjectID:
		return m.SubjectID()
	case item.FieldTopicID:
		return m.TopicID()
	case item.FieldCompetencyID:
		return m.CompetencyID()
	case item.FieldItemType:
		return m.ItemType()
	case item.FieldDifficulty:
		return m.Difficulty()
	case item.FieldCognitiveLevel:
		return m.CognitiveLevel()
	case item.FieldText:
		return m.Text()
	case item.FieldChoices:
		return m.Choices()
	case item.FieldAnswer:
		return m.Answer()
	case item.FieldVerified:
		return m.Verified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case item.FieldItemID:
		return m.OldItemID(ctx)
	case item.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case item.FieldTopicID:
		return m.OldTopicID(ctx)
	case item.FieldCompetencyID:
		return m.OldCompetencyID(ctx)
	case item.FieldItemType:
		return m.OldItemType(ctx)
	case item.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case item.FieldCognitiveLevel:
		return m.OldCognitiveLevel(ctx)
	case item.FieldText:
		return m.OldText(ctx)
	case item.FieldChoices:
		return m.OldChoices(ctx)
	case item.FieldAnswer:
		return m.OldAnswer(ctx)
	case item.FieldVerified:
		return m.OldVerified(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case item.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case item.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case item.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case item.FieldCompetencyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetencyID(v)
		return nil
	case item.FieldItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case item.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case item.FieldCognitiveLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveLevel(v)
		return nil
	case item.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case item.FieldChoices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoices(v)
		return nil
	case item.FieldAnswer:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case item.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldTopicID) {
		fields = append(fields, item.FieldTopicID)
	}
	if m.FieldCleared(item.FieldChoices) {
		fields = append(fields, item.FieldChoices)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldTopicID:
		m.ClearTopicID()
		return nil
	case item.FieldChoices:
		m.ClearChoices()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case item.FieldItemID:
		m.ResetItemID()
		return nil
	case item.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case item.FieldTopicID:
		m.ResetTopicID()
		return nil
	case item.FieldCompetencyID:
		m.ResetCompetencyID()
		return nil
	case item.FieldItemType:
		m.ResetItemType()
		return nil
	case item.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case item.FieldCognitiveLevel:
		m.ResetCognitiveLevel()
		return nil
	case item.FieldText:
		m.ResetText()
		return nil
	case item.FieldChoices:
		m.ResetChoices()
		return nil
	case item.FieldAnswer:
		m.ResetAnswer()
		return nil
	case item.FieldVerified:
		m.ResetVerified()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	submission_id  *string
	user_id        *string
	assessment_id  *string
	subject_id     *string
	answers        *json.RawMessage
	appendanswers  json.RawMessage
	score          *float64
	addscore       *float64
	total_items    *int
	addtotal_items *int
	submitted_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Submission, error)
	predicates     []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id int) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSubmissionID sets the "submission_id" field.
func (m *SubmissionMutation) SetSubmissionID(s string) {
	m.submission_id = &s
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *SubmissionMutation) SubmissionID() (r string, exists bool) {
	v := m.submission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *SubmissionMutation) ResetSubmissionID() {
	m.submission_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SubmissionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubmissionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *SubmissionMutation) ResetUserID() {
	m.user_id = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *SubmissionMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *SubmissionMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (m *SubmissionMutation) ClearAssessmentID() {
	m.assessment_id = nil
	m.clearedFields[submission.FieldAssessmentID] = struct{}{}
}

// AssessmentIDCleared returns if the "assessment_id" field was cleared in this mutation.
func (m *SubmissionMutation) AssessmentIDCleared() bool {
	_, ok := m.clearedFields[submission.FieldAssessmentID]
	return ok
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *SubmissionMutation) ResetAssessmentID() {
	m.assessment_id = nil
	delete(m.clearedFields, submission.FieldAssessmentID)
}

// SetSubjectID sets the "subject_id" field.
func (m *SubmissionMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SubmissionMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SubmissionMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetAnswers sets the "answers" field.
func (m *SubmissionMutation) SetAnswers(jm json.RawMessage) {
	m.answers = &jm
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *SubmissionMutation) Answers() (r json.RawMessage, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAnswers(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds jm to the "answers" field.
func (m *SubmissionMutation) AppendAnswers(jm json.RawMessage) {
	m.appendanswers = append(m.appendanswers, jm...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *SubmissionMutation) AppendedAnswers() (json.RawMessage, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *SubmissionMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// SetScore sets the "score" field.
func (m *SubmissionMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SubmissionMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *SubmissionMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SubmissionMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SubmissionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalItems sets the "total_items" field.
func (m *SubmissionMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *SubmissionMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *SubmissionMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *SubmissionMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *SubmissionMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *SubmissionMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *SubmissionMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *SubmissionMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.submission_id != nil {
		fields = append(fields, submission.FieldSubmissionID)
	}
	if m.user_id != nil {
		fields = append(fields, submission.FieldUserID)
	}
	if m.assessment_id != nil {
		fields = append(fields, submission.FieldAssessmentID)
	}
	if m.subject_id != nil {
		fields = append(fields, submission.FieldSubjectID)
	}
	if m.answers != nil {
		fields = append(fields, submission.FieldAnswers)
	}
	if m.score != nil {
		fields = append(fields, submission.FieldScore)
	}
	if m.total_items != nil {
		fields = append(fields, submission.FieldTotalItems)
	}
	if m.submitted_at != nil {
		fields = append(fields, submission.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldSubmissionID:
		return m.SubmissionID()
	case submission.FieldUserID:
		return m.UserID()
	case submission.FieldAssessmentID:
		return m.AssessmentID()
	case submission.FieldSubjectID:
		return m.SubjectID()
	case submission.FieldAnswers:
		return m.Answers()
	case submission.FieldScore:
		return m.Score()
	case submission.FieldTotalItems:
		return m.TotalItems()
	case submission.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case submission.FieldUserID:
		return m.OldUserID(ctx)
	case submission.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case submission.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case submission.FieldAnswers:
		return m.OldAnswers(ctx)
	case submission.FieldScore:
		return m.OldScore(ctx)
	case submission.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case submission.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldSubmissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case submission.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case submission.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case submission.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case submission.FieldAnswers:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case submission.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case submission.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case submission.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, submission.FieldScore)
	}
	if m.addtotal_items != nil {
		fields = append(fields, submission.FieldTotalItems)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldScore:
		return m.AddedScore()
	case submission.FieldTotalItems:
		return m.AddedTotalItems()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case submission.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldAssessmentID) {
		fields = append(fields, submission.FieldAssessmentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldAssessmentID:
		m.ClearAssessmentID()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case submission.FieldUserID:
		m.ResetUserID()
		return nil
	case submission.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case submission.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case submission.FieldAnswers:
		m.ResetAnswers()
		return nil
	case submission.FieldScore:
		m.ResetScore()
		return nil
	case submission.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case submission.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Submission edge %s", name)
}
