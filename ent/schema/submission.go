package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is one completed assessment attempt. Append-only: rows are
// never updated, preserving an auditable history for analytics.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_id").Unique().NotEmpty(),
		field.String("user_id").NotEmpty(),
		field.String("assessment_id").Optional(),
		field.String("subject_id").NotEmpty(),
		field.JSON("answers", json.RawMessage{}),
		field.Float("score"),
		field.Int("total_items").NonNegative(),
		field.Time("submitted_at"),
	}
}

func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "subject_id"),
	}
}
