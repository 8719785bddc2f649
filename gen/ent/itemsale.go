// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ItemSale is the model entity for the ItemSale schema.
type ItemSale struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity *float64 `json:"quantity,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItemSaleQuery when eager-loading is set.
	Edges        ItemSaleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItemSaleEdges holds the relations/edges for other nodes in the graph.
type ItemSaleEdges struct {
	// Report holds the value of the report edge.
	Report *ShiftReport `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ItemSaleEdges) ReportOrErr() (*ShiftReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: shiftreport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemSale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemsale.FieldQuantity, itemsale.FieldAmount, itemsale.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case itemsale.FieldName:
			values[i] = new(sql.NullString)
		case itemsale.FieldID, itemsale.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemSale fields.
func (is *ItemSale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemsale.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				is.ID = *value
			}
		case itemsale.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				is.ReportID = *value
			}
		case itemsale.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				is.Name = value.String
			}
		case itemsale.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				is.Quantity = new(float64)
				*is.Quantity = value.Float64
			}
		case itemsale.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				is.Amount = value.Float64
			}
		case itemsale.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				is.Confidence = float32(value.Float64)
			}
		default:
			is.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemSale.
// This includes values selected through modifiers, order, etc.
func (is *ItemSale) Value(name string) (ent.Value, error) {
	return is.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ItemSale entity.
func (is *ItemSale) QueryReport() *ShiftReportQuery {
	return NewItemSaleClient(is.config).QueryReport(is)
}

// Update returns a builder for updating this ItemSale.
// Note that you need to call ItemSale.Unwrap() before calling this method if this ItemSale
// was returned from a transaction, and the transaction was committed or rolled back.
func (is *ItemSale) Update() *ItemSaleUpdateOne {
	return NewItemSaleClient(is.config).UpdateOne(is)
}

// Unwrap unwraps the ItemSale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (is *ItemSale) Unwrap() *ItemSale {
	_tx, ok := is.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemSale is not a transactional entity")
	}
	is.config.driver = _tx.drv
	return is
}

// String implements the fmt.Stringer.
func (is *ItemSale) String() string {
	var builder strings.Builder
	builder.WriteString("ItemSale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", is.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", is.ReportID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(is.Name)
	builder.WriteString(", ")
	if v := is.Quantity; v != nil {
		builder.WriteString("quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", is.Amount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", is.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// ItemSales is a parsable slice of ItemSale.
type ItemSales []*ItemSale
