package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Story struct{ ent.Schema }

func (Story) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stories"},
	}
}

func (Story) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(newV7).
			Immutable().
			StorageKey("id"),
		field.String("user_id").NotEmpty(),
		field.String("title").NotEmpty().MaxLen(15),
		field.String("thumbnail_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Story) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE story -> MANY chapters
		edge.To("chapters", Chapter.Type),
	}
}

func (Story) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
