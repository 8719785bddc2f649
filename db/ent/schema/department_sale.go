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

type DepartmentSale struct{ ent.Schema }

func (DepartmentSale) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "department_sales"},
	}
}

func (DepartmentSale) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("report_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Float("quantity").Optional().Nillable(),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float32("confidence").Min(0).Max(1),
	}
}

func (DepartmentSale) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", ShiftReport.Type).
			Ref("departments").
			Field("report_id").
			Required().
			Unique(),
	}
}
