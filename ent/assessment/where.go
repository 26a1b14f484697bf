// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTitle, v))
}

// AssessmentType applies equality check predicate on the "assessment_type" field. It's identical to AssessmentTypeEQ.
func AssessmentType(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentType, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSubjectID, v))
}

// TotalItems applies equality check predicate on the "total_items" field. It's identical to TotalItemsEQ.
func TotalItems(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTotalItems, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCreatedAt, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldAssessmentID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldTitle, v))
}

// AssessmentTypeEQ applies the EQ predicate on the "assessment_type" field.
func AssessmentTypeEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentType, v))
}

// AssessmentTypeNEQ applies the NEQ predicate on the "assessment_type" field.
func AssessmentTypeNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldAssessmentType, v))
}

// AssessmentTypeIn applies the In predicate on the "assessment_type" field.
func AssessmentTypeIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldAssessmentType, vs...))
}

// AssessmentTypeNotIn applies the NotIn predicate on the "assessment_type" field.
func AssessmentTypeNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldAssessmentType, vs...))
}

// AssessmentTypeGT applies the GT predicate on the "assessment_type" field.
func AssessmentTypeGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldAssessmentType, v))
}

// AssessmentTypeGTE applies the GTE predicate on the "assessment_type" field.
func AssessmentTypeGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldAssessmentType, v))
}

// AssessmentTypeLT applies the LT predicate on the "assessment_type" field.
func AssessmentTypeLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldAssessmentType, v))
}

// AssessmentTypeLTE applies the LTE predicate on the "assessment_type" field.
func AssessmentTypeLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldAssessmentType, v))
}

// AssessmentTypeContains applies the Contains predicate on the "assessment_type" field.
func AssessmentTypeContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldAssessmentType, v))
}

// AssessmentTypeHasPrefix applies the HasPrefix predicate on the "assessment_type" field.
func AssessmentTypeHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldAssessmentType, v))
}

// AssessmentTypeHasSuffix applies the HasSuffix predicate on the "assessment_type" field.
func AssessmentTypeHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldAssessmentType, v))
}

// AssessmentTypeEqualFold applies the EqualFold predicate on the "assessment_type" field.
func AssessmentTypeEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldAssessmentType, v))
}

// AssessmentTypeContainsFold applies the ContainsFold predicate on the "assessment_type" field.
func AssessmentTypeContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldAssessmentType, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldSubjectID, v))
}

// TotalItemsEQ applies the EQ predicate on the "total_items" field.
func TotalItemsEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTotalItems, v))
}

// TotalItemsNEQ applies the NEQ predicate on the "total_items" field.
func TotalItemsNEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTotalItems, v))
}

// TotalItemsIn applies the In predicate on the "total_items" field.
func TotalItemsIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTotalItems, vs...))
}

// TotalItemsNotIn applies the NotIn predicate on the "total_items" field.
func TotalItemsNotIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTotalItems, vs...))
}

// TotalItemsGT applies the GT predicate on the "total_items" field.
func TotalItemsGT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTotalItems, v))
}

// TotalItemsGTE applies the GTE predicate on the "total_items" field.
func TotalItemsGTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTotalItems, v))
}

// TotalItemsLT applies the LT predicate on the "total_items" field.
func TotalItemsLT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTotalItems, v))
}

// TotalItemsLTE applies the LTE predicate on the "total_items" field.
func TotalItemsLTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTotalItems, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
