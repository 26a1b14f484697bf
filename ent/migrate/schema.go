// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "assessment_type", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "blueprint", Type: field.TypeJSON},
		{Name: "items", Type: field.TypeJSON},
		{Name: "total_items", Type: field.TypeInt},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_subject_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[5]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "competency_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "cognitive_level", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "answer", Type: field.TypeJSON},
		{Name: "verified", Type: field.TypeBool, Default: false},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_created_at",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[1]},
			},
			{
				Name:    "item_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[3]},
			},
			{
				Name:    "item_subject_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[3], ItemsColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString, Nullable: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "total_items", Type: field.TypeInt},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1]},
			},
			{
				Name:    "submission_user_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[3]},
			},
			{
				Name:    "submission_user_id_subject_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[3], SubmissionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		ItemsTable,
		SubmissionsTable,
	}
)

func init() {
}
