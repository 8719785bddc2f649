// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// DepartmentSale is the model entity for the DepartmentSale schema.
type DepartmentSale struct {
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
	// The values are being populated by the DepartmentSaleQuery when eager-loading is set.
	Edges        DepartmentSaleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DepartmentSaleEdges holds the relations/edges for other nodes in the graph.
type DepartmentSaleEdges struct {
	// Report holds the value of the report edge.
	Report *ShiftReport `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DepartmentSaleEdges) ReportOrErr() (*ShiftReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: shiftreport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DepartmentSale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case departmentsale.FieldQuantity, departmentsale.FieldAmount, departmentsale.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case departmentsale.FieldName:
			values[i] = new(sql.NullString)
		case departmentsale.FieldID, departmentsale.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DepartmentSale fields.
func (ds *DepartmentSale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case departmentsale.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ds.ID = *value
			}
		case departmentsale.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				ds.ReportID = *value
			}
		case departmentsale.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				ds.Name = value.String
			}
		case departmentsale.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				ds.Quantity = new(float64)
				*ds.Quantity = value.Float64
			}
		case departmentsale.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				ds.Amount = value.Float64
			}
		case departmentsale.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				ds.Confidence = float32(value.Float64)
			}
		default:
			ds.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DepartmentSale.
// This includes values selected through modifiers, order, etc.
func (ds *DepartmentSale) Value(name string) (ent.Value, error) {
	return ds.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the DepartmentSale entity.
func (ds *DepartmentSale) QueryReport() *ShiftReportQuery {
	return NewDepartmentSaleClient(ds.config).QueryReport(ds)
}

// Update returns a builder for updating this DepartmentSale.
// Note that you need to call DepartmentSale.Unwrap() before calling this method if this DepartmentSale
// was returned from a transaction, and the transaction was committed or rolled back.
func (ds *DepartmentSale) Update() *DepartmentSaleUpdateOne {
	return NewDepartmentSaleClient(ds.config).UpdateOne(ds)
}

// Unwrap unwraps the DepartmentSale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ds *DepartmentSale) Unwrap() *DepartmentSale {
	_tx, ok := ds.config.driver.(*txDriver)
	if !ok {
		panic("ent: DepartmentSale is not a transactional entity")
	}
	ds.config.driver = _tx.drv
	return ds
}

// String implements the fmt.Stringer.
func (ds *DepartmentSale) String() string {
	var builder strings.Builder
	builder.WriteString("DepartmentSale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ds.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", ds.ReportID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(ds.Name)
	builder.WriteString(", ")
	if v := ds.Quantity; v != nil {
		builder.WriteString("quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", ds.Amount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", ds.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// DepartmentSales is a parsable slice of DepartmentSale.
type DepartmentSales []*DepartmentSale
