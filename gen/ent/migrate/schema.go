// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DepartmentSalesColumns holds the columns for the "department_sales" table.
	DepartmentSalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// DepartmentSalesTable holds the schema information for the "department_sales" table.
	DepartmentSalesTable = &schema.Table{
		Name:       "department_sales",
		Columns:    DepartmentSalesColumns,
		PrimaryKey: []*schema.Column{DepartmentSalesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "department_sales_shift_reports_departments",
				Columns:    []*schema.Column{DepartmentSalesColumns[5]},
				RefColumns: []*schema.Column{ShiftReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ItemSalesColumns holds the columns for the "item_sales" table.
	ItemSalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// ItemSalesTable holds the schema information for the "item_sales" table.
	ItemSalesTable = &schema.Table{
		Name:       "item_sales",
		Columns:    ItemSalesColumns,
		PrimaryKey: []*schema.Column{ItemSalesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_sales_shift_reports_items",
				Columns:    []*schema.Column{ItemSalesColumns[5]},
				RefColumns: []*schema.Column{ShiftReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ReportExceptionsColumns holds the columns for the "report_exceptions" table.
	ReportExceptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// ReportExceptionsTable holds the schema information for the "report_exceptions" table.
	ReportExceptionsTable = &schema.Table{
		Name:       "report_exceptions",
		Columns:    ReportExceptionsColumns,
		PrimaryKey: []*schema.Column{ReportExceptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_exceptions_shift_reports_exceptions",
				Columns:    []*schema.Column{ReportExceptionsColumns[4]},
				RefColumns: []*schema.Column{ShiftReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ShiftReportsColumns holds the columns for the "shift_reports" table.
	ShiftReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "receipt_hash", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "report_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "extraction_method", Type: field.TypeString},
		{Name: "extraction_confidence", Type: field.TypeFloat32},
		{Name: "upload_count", Type: field.TypeInt, Default: 1},
		{Name: "last_upload_reason", Type: field.TypeString},
		{Name: "store_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "balances", Type: field.TypeJSON, Nullable: true},
		{Name: "sales_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "fuel", Type: field.TypeJSON, Nullable: true},
		{Name: "inside_sales", Type: field.TypeJSON, Nullable: true},
		{Name: "tenders", Type: field.TypeJSON, Nullable: true},
		{Name: "safe_activity", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "store_id", Type: field.TypeUUID},
	}
	// ShiftReportsTable holds the schema information for the "shift_reports" table.
	ShiftReportsTable = &schema.Table{
		Name:       "shift_reports",
		Columns:    ShiftReportsColumns,
		PrimaryKey: []*schema.Column{ShiftReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shift_reports_stores_reports",
				Columns:    []*schema.Column{ShiftReportsColumns[17]},
				RefColumns: []*schema.Column{StoresColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// StoresColumns holds the columns for the "stores" table.
	StoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StoresTable holds the schema information for the "stores" table.
	StoresTable = &schema.Table{
		Name:       "stores",
		Columns:    StoresColumns,
		PrimaryKey: []*schema.Column{StoresColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DepartmentSalesTable,
		ItemSalesTable,
		ReportExceptionsTable,
		ShiftReportsTable,
		StoresTable,
	}
)

func init() {
	DepartmentSalesTable.ForeignKeys[0].RefTable = ShiftReportsTable
	DepartmentSalesTable.Annotation = &entsql.Annotation{
		Table: "department_sales",
	}
	ItemSalesTable.ForeignKeys[0].RefTable = ShiftReportsTable
	ItemSalesTable.Annotation = &entsql.Annotation{
		Table: "item_sales",
	}
	ReportExceptionsTable.ForeignKeys[0].RefTable = ShiftReportsTable
	ReportExceptionsTable.Annotation = &entsql.Annotation{
		Table: "report_exceptions",
	}
	ShiftReportsTable.ForeignKeys[0].RefTable = StoresTable
	ShiftReportsTable.Annotation = &entsql.Annotation{
		Table: "shift_reports",
	}
	StoresTable.Annotation = &entsql.Annotation{
		Table: "stores",
	}
}
