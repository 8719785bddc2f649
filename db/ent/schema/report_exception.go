package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ReportException struct{ ent.Schema }

func (ReportException) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_exceptions"},
	}
}

func (ReportException) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("report_id", uuid.UUID{}),
		field.String("type").NotEmpty(),
		field.Int("count").Min(0),
		field.Float("amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (ReportException) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", ShiftReport.Type).
			Ref("exceptions").
			Field("report_id").
			Required().
			Unique(),
	}
}
