package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/forecourt-labs/shiftscan/internal/extract"
)

type ShiftReport struct{ ent.Schema }

func (ShiftReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "shift_reports"},
	}
}

func (ShiftReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("store_id", uuid.UUID{}),
		// Content hash of the raw recognized text; the dedup key for a
		// physical document. The uniqueness constraint is what lets two
		// concurrent uploads of the same receipt race safely (the loser
		// retries as an update).
		field.String("receipt_hash").NotEmpty().Unique().MaxLen(64),
		field.Time("report_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("raw_text"),
		field.String("extraction_method").NotEmpty(),
		field.Float32("extraction_confidence").
			Min(0).Max(1),
		field.Int("upload_count").Default(1).Min(1),
		field.String("last_upload_reason").NotEmpty(),

		// Structured sections are stored as JSON documents; departments,
		// items, and exceptions live in child tables for aggregation.
		field.JSON("store_metadata", &extract.StoreMetadata{}).Optional(),
		field.JSON("balances", &extract.Balances{}).Optional(),
		field.JSON("sales_summary", &extract.SalesSummary{}).Optional(),
		field.JSON("fuel", &extract.Fuel{}).Optional(),
		field.JSON("inside_sales", &extract.InsideSales{}).Optional(),
		field.JSON("tenders", &extract.Tenders{}).Optional(),
		field.JSON("safe_activity", &extract.SafeActivity{}).Optional(),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ShiftReport) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reports -> ONE store (FK: shift_reports.store_id)
		edge.From("store", Store.Type).
			Ref("reports").
			Field("store_id").
			Required().
			Unique(),
		// ONE report -> MANY child rows
		edge.To("departments", DepartmentSale.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("items", ItemSale.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("exceptions", ReportException.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
