package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Keyword struct{ ent.Schema }

func (Keyword) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "keywords"},
	}
}

func (Keyword) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(newV7).
			Immutable().
			StorageKey("id"),
		field.UUID("chapter_id", uuid.UUID{}),
		field.String("keyword").NotEmpty(),
		// UTF-16 offset into the chapter plain text
		field.Int("position").NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Keyword) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chapter", Chapter.Type).
			Ref("keywords").
			Field("chapter_id").
			Required().
			Unique(),
	}
}
