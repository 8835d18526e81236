package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Chapter struct{ ent.Schema }

func (Chapter) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "chapters"},
	}
}

func (Chapter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(newV7).
			Immutable().
			StorageKey("id"),
		// explicit FK so the composite unique index can reference it
		field.UUID("story_id", uuid.UUID{}),
		field.Int("chapter_num").Positive(),
		field.JSON("body", json.RawMessage{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Chapter) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY chapters -> ONE story (FK: chapters.story_id)
		edge.From("story", Story.Type).
			Ref("chapters").
			Field("story_id").
			Required().
			Unique(),
		// ONE chapter -> MANY keywords
		edge.To("keywords", Keyword.Type),
		// ONE chapter -> MANY feedbacks
		edge.To("feedbacks", Feedback.Type),
	}
}

func (Chapter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "chapter_num").Unique(),
	}
}
