package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is one curated bank entry. Immutable after creation except for the
// verification flag.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").Unique().NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.String("topic_id").Optional(),
		field.String("competency_id").NotEmpty(),
		field.String("item_type").NotEmpty(),
		field.String("difficulty").NotEmpty(),
		field.String("cognitive_level").NotEmpty(),
		field.Text("text"),
		field.JSON("choices", []string{}).Optional(),
		field.JSON("answer", json.RawMessage{}),
		field.Bool("verified").Default(false),
	}
}

func (Item) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("subject_id", "topic_id"),
	}
}
