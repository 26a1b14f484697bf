package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is a generated assessment: the selected item snapshots plus
// the originating blueprint for provenance. Immutable once stored; only the
// external verification workflow touches it afterwards.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").Unique().NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("assessment_type").NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.JSON("blueprint", json.RawMessage{}),
		field.JSON("items", json.RawMessage{}),
		field.Int("total_items").NonNegative(),
	}
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
	}
}
