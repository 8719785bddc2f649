// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ReportException is the model entity for the ReportException schema.
type ReportException struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *float64 `json:"amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportExceptionQuery when eager-loading is set.
	Edges        ReportExceptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportExceptionEdges holds the relations/edges for other nodes in the graph.
type ReportExceptionEdges struct {
	// Report holds the value of the report edge.
	Report *ShiftReport `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportExceptionEdges) ReportOrErr() (*ShiftReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: shiftreport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportException) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportexception.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case reportexception.FieldCount:
			values[i] = new(sql.NullInt64)
		case reportexception.FieldType:
			values[i] = new(sql.NullString)
		case reportexception.FieldID, reportexception.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportException fields.
func (re *ReportException) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportexception.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				re.ID = *value
			}
		case reportexception.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				re.ReportID = *value
			}
		case reportexception.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				re.Type = value.String
			}
		case reportexception.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				re.Count = int(value.Int64)
			}
		case reportexception.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				re.Amount = new(float64)
				*re.Amount = value.Float64
			}
		default:
			re.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportException.
// This includes values selected through modifiers, order, etc.
func (re *ReportException) Value(name string) (ent.Value, error) {
	return re.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ReportException entity.
func (re *ReportException) QueryReport() *ShiftReportQuery {
	return NewReportExceptionClient(re.config).QueryReport(re)
}

// Update returns a builder for updating this ReportException.
// Note that you need to call ReportException.Unwrap() before calling this method if this ReportException
// was returned from a transaction, and the transaction was committed or rolled back.
func (re *ReportException) Update() *ReportExceptionUpdateOne {
	return NewReportExceptionClient(re.config).UpdateOne(re)
}

// Unwrap unwraps the ReportException entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (re *ReportException) Unwrap() *ReportException {
	_tx, ok := re.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportException is not a transactional entity")
	}
	re.config.driver = _tx.drv
	return re
}

// String implements the fmt.Stringer.
func (re *ReportException) String() string {
	var builder strings.Builder
	builder.WriteString("ReportException(")
	builder.WriteString(fmt.Sprintf("id=%v, ", re.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", re.ReportID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(re.Type)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", re.Count))
	builder.WriteString(", ")
	if v := re.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReportExceptions is a parsable slice of ReportException.
type ReportExceptions []*ReportException
