// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSubjectID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTopicID, v))
}

// CompetencyID applies equality check predicate on the "competency_id" field. It's identical to CompetencyIDEQ.
func CompetencyID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCompetencyID, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// CognitiveLevel applies equality check predicate on the "cognitive_level" field. It's identical to CognitiveLevelEQ.
func CognitiveLevel(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCognitiveLevel, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldText, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCreatedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldSubjectID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldTopicID))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldTopicID, v))
}

// CompetencyIDEQ applies the EQ predicate on the "competency_id" field.
func CompetencyIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCompetencyID, v))
}

// CompetencyIDNEQ applies the NEQ predicate on the "competency_id" field.
func CompetencyIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCompetencyID, v))
}

// CompetencyIDIn applies the In predicate on the "competency_id" field.
func CompetencyIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCompetencyID, vs...))
}

// CompetencyIDNotIn applies the NotIn predicate on the "competency_id" field.
func CompetencyIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCompetencyID, vs...))
}

// CompetencyIDGT applies the GT predicate on the "competency_id" field.
func CompetencyIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCompetencyID, v))
}

// CompetencyIDGTE applies the GTE predicate on the "competency_id" field.
func CompetencyIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCompetencyID, v))
}

// CompetencyIDLT applies the LT predicate on the "competency_id" field.
func CompetencyIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCompetencyID, v))
}

// CompetencyIDLTE applies the LTE predicate on the "competency_id" field.
func CompetencyIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCompetencyID, v))
}

// CompetencyIDContains applies the Contains predicate on the "competency_id" field.
func CompetencyIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCompetencyID, v))
}

// CompetencyIDHasPrefix applies the HasPrefix predicate on the "competency_id" field.
func CompetencyIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCompetencyID, v))
}

// CompetencyIDHasSuffix applies the HasSuffix predicate on the "competency_id" field.
func CompetencyIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCompetencyID, v))
}

// CompetencyIDEqualFold applies the EqualFold predicate on the "competency_id" field.
func CompetencyIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCompetencyID, v))
}

// CompetencyIDContainsFold applies the ContainsFold predicate on the "competency_id" field.
func CompetencyIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCompetencyID, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDifficulty, v))
}

// CognitiveLevelEQ applies the EQ predicate on the "cognitive_level" field.
func CognitiveLevelEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCognitiveLevel, v))
}

// CognitiveLevelNEQ applies the NEQ predicate on the "cognitive_level" field.
func CognitiveLevelNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCognitiveLevel, v))
}

// CognitiveLevelIn applies the In predicate on the "cognitive_level" field.
func CognitiveLevelIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCognitiveLevel, vs...))
}

// CognitiveLevelNotIn applies the NotIn predicate on the "cognitive_level" field.
func CognitiveLevelNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCognitiveLevel, vs...))
}

// CognitiveLevelGT applies the GT predicate on the "cognitive_level" field.
func CognitiveLevelGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCognitiveLevel, v))
}

// CognitiveLevelGTE applies the GTE predicate on the "cognitive_level" field.
func CognitiveLevelGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCognitiveLevel, v))
}

// CognitiveLevelLT applies the LT predicate on the "cognitive_level" field.
func CognitiveLevelLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCognitiveLevel, v))
}

// CognitiveLevelLTE applies the LTE predicate on the "cognitive_level" field.
func CognitiveLevelLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCognitiveLevel, v))
}

// CognitiveLevelContains applies the Contains predicate on the "cognitive_level" field.
func CognitiveLevelContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCognitiveLevel, v))
}

// CognitiveLevelHasPrefix applies the HasPrefix predicate on the "cognitive_level" field.
func CognitiveLevelHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCognitiveLevel, v))
}

// CognitiveLevelHasSuffix applies the HasSuffix predicate on the "cognitive_level" field.
func CognitiveLevelHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCognitiveLevel, v))
}

// CognitiveLevelEqualFold applies the EqualFold predicate on the "cognitive_level" field.
func CognitiveLevelEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCognitiveLevel, v))
}

// CognitiveLevelContainsFold applies the ContainsFold predicate on the "cognitive_level" field.
func CognitiveLevelContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCognitiveLevel, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldText, v))
}

// ChoicesIsNil applies the IsNil predicate on the "choices" field.
func ChoicesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldChoices))
}

// ChoicesNotNil applies the NotNil predicate on the "choices" field.
func ChoicesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldChoices))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldVerified, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
