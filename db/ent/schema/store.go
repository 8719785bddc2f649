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

type Store struct{ ent.Schema }

func (Store) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stores"},
	}
}

func (Store) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("timezone").Default("UTC"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Store) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE store -> MANY shift reports
		edge.To("reports", ShiftReport.Type),
	}
}
