// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAssessmentType holds the string denoting the assessment_type field in the database.
	FieldAssessmentType = "assessment_type"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldBlueprint holds the string denoting the blueprint field in the database.
	FieldBlueprint = "blueprint"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldTotalItems holds the string denoting the total_items field in the database.
	FieldTotalItems = "total_items"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldAssessmentID,
	FieldTitle,
	FieldAssessmentType,
	FieldSubjectID,
	FieldBlueprint,
	FieldItems,
	FieldTotalItems,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// AssessmentTypeValidator is a validator for the "assessment_type" field. It is called by the builders before save.
	AssessmentTypeValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	TotalItemsValidator func(int) error
)

// OrderOption defines the ordering options for the Assessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAssessmentType orders the results by the assessment_type field.
func ByAssessmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentType, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByTotalItems orders the results by the total_items field.
func ByTotalItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalItems, opts...).ToFunc()
}
