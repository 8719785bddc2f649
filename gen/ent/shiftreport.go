// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/forecourt-labs/shiftscan/internal/extract"
	"github.com/google/uuid"
)

// ShiftReport is the model entity for the ShiftReport schema.
type ShiftReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StoreID holds the value of the "store_id" field.
	StoreID uuid.UUID `json:"store_id,omitempty"`
	// ReceiptHash holds the value of the "receipt_hash" field.
	ReceiptHash string `json:"receipt_hash,omitempty"`
	// ReportDate holds the value of the "report_date" field.
	ReportDate time.Time `json:"report_date,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod string `json:"extraction_method,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence float32 `json:"extraction_confidence,omitempty"`
	// UploadCount holds the value of the "upload_count" field.
	UploadCount int `json:"upload_count,omitempty"`
	// LastUploadReason holds the value of the "last_upload_reason" field.
	LastUploadReason string `json:"last_upload_reason,omitempty"`
	// StoreMetadata holds the value of the "store_metadata" field.
	StoreMetadata *extract.StoreMetadata `json:"store_metadata,omitempty"`
	// Balances holds the value of the "balances" field.
	Balances *extract.Balances `json:"balances,omitempty"`
	// SalesSummary holds the value of the "sales_summary" field.
	SalesSummary *extract.SalesSummary `json:"sales_summary,omitempty"`
	// Fuel holds the value of the "fuel" field.
	Fuel *extract.Fuel `json:"fuel,omitempty"`
	// InsideSales holds the value of the "inside_sales" field.
	InsideSales *extract.InsideSales `json:"inside_sales,omitempty"`
	// Tenders holds the value of the "tenders" field.
	Tenders *extract.Tenders `json:"tenders,omitempty"`
	// SafeActivity holds the value of the "safe_activity" field.
	SafeActivity *extract.SafeActivity `json:"safe_activity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ShiftReportQuery when eager-loading is set.
	Edges        ShiftReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ShiftReportEdges holds the relations/edges for other nodes in the graph.
type ShiftReportEdges struct {
	// Store holds the value of the store edge.
	Store *Store `json:"store,omitempty"`
	// Departments holds the value of the departments edge.
	Departments []*DepartmentSale `json:"departments,omitempty"`
	// Items holds the value of the items edge.
	Items []*ItemSale `json:"items,omitempty"`
	// Exceptions holds the value of the exceptions edge.
	Exceptions []*ReportException `json:"exceptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// StoreOrErr returns the Store value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShiftReportEdges) StoreOrErr() (*Store, error) {
	if e.Store != nil {
		return e.Store, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: store.Label}
	}
	return nil, &NotLoadedError{edge: "store"}
}

// DepartmentsOrErr returns the Departments value or an error if the edge
// was not loaded in eager-loading.
func (e ShiftReportEdges) DepartmentsOrErr() ([]*DepartmentSale, error) {
	if e.loadedTypes[1] {
		return e.Departments, nil
	}
	return nil, &NotLoadedError{edge: "departments"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ShiftReportEdges) ItemsOrErr() ([]*ItemSale, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// ExceptionsOrErr returns the Exceptions value or an error if the edge
// was not loaded in eager-loading.
func (e ShiftReportEdges) ExceptionsOrErr() ([]*ReportException, error) {
	if e.loadedTypes[3] {
		return e.Exceptions, nil
	}
	return nil, &NotLoadedError{edge: "exceptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShiftReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shiftreport.FieldStoreMetadata, shiftreport.FieldBalances, shiftreport.FieldSalesSummary, shiftreport.FieldFuel, shiftreport.FieldInsideSales, shiftreport.FieldTenders, shiftreport.FieldSafeActivity:
			values[i] = new([]byte)
		case shiftreport.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case shiftreport.FieldUploadCount:
			values[i] = new(sql.NullInt64)
		case shiftreport.FieldReceiptHash, shiftreport.FieldRawText, shiftreport.FieldExtractionMethod, shiftreport.FieldLastUploadReason:
			values[i] = new(sql.NullString)
		case shiftreport.FieldReportDate, shiftreport.FieldCreatedAt, shiftreport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case shiftreport.FieldID, shiftreport.FieldStoreID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShiftReport fields.
func (sr *ShiftReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shiftreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				sr.ID = *value
			}
		case shiftreport.FieldStoreID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field store_id", values[i])
			} else if value != nil {
				sr.StoreID = *value
			}
		case shiftreport.FieldReceiptHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_hash", values[i])
			} else if value.Valid {
				sr.ReceiptHash = value.String
			}
		case shiftreport.FieldReportDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field report_date", values[i])
			} else if value.Valid {
				sr.ReportDate = value.Time
			}
		case shiftreport.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				sr.RawText = value.String
			}
		case shiftreport.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				sr.ExtractionMethod = value.String
			}
		case shiftreport.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				sr.ExtractionConfidence = float32(value.Float64)
			}
		case shiftreport.FieldUploadCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field upload_count", values[i])
			} else if value.Valid {
				sr.UploadCount = int(value.Int64)
			}
		case shiftreport.FieldLastUploadReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_upload_reason", values[i])
			} else if value.Valid {
				sr.LastUploadReason = value.String
			}
		case shiftreport.FieldStoreMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field store_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.StoreMetadata); err != nil {
					return fmt.Errorf("unmarshal field store_metadata: %w", err)
				}
			}
		case shiftreport.FieldBalances:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field balances", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.Balances); err != nil {
					return fmt.Errorf("unmarshal field balances: %w", err)
				}
			}
		case shiftreport.FieldSalesSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sales_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.SalesSummary); err != nil {
					return fmt.Errorf("unmarshal field sales_summary: %w", err)
				}
			}
		case shiftreport.FieldFuel:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fuel", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.Fuel); err != nil {
					return fmt.Errorf("unmarshal field fuel: %w", err)
				}
			}
		case shiftreport.FieldInsideSales:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inside_sales", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.InsideSales); err != nil {
					return fmt.Errorf("unmarshal field inside_sales: %w", err)
				}
			}
		case shiftreport.FieldTenders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tenders", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.Tenders); err != nil {
					return fmt.Errorf("unmarshal field tenders: %w", err)
				}
			}
		case shiftreport.FieldSafeActivity:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field safe_activity", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.SafeActivity); err != nil {
					return fmt.Errorf("unmarshal field safe_activity: %w", err)
				}
			}
		case shiftreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sr.CreatedAt = value.Time
			}
		case shiftreport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				sr.UpdatedAt = value.Time
			}
		default:
			sr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShiftReport.
// This includes values selected through modifiers, order, etc.
func (sr *ShiftReport) Value(name string) (ent.Value, error) {
	return sr.selectValues.Get(name)
}

// QueryStore queries the "store" edge of the ShiftReport entity.
func (sr *ShiftReport) QueryStore() *StoreQuery {
	return NewShiftReportClient(sr.config).QueryStore(sr)
}

// QueryDepartments queries the "departments" edge of the ShiftReport entity.
func (sr *ShiftReport) QueryDepartments() *DepartmentSaleQuery {
	return NewShiftReportClient(sr.config).QueryDepartments(sr)
}

// QueryItems queries the "items" edge of the ShiftReport entity.
func (sr *ShiftReport) QueryItems() *ItemSaleQuery {
	return NewShiftReportClient(sr.config).QueryItems(sr)
}

// QueryExceptions queries the "exceptions" edge of the ShiftReport entity.
func (sr *ShiftReport) QueryExceptions() *ReportExceptionQuery {
	return NewShiftReportClient(sr.config).QueryExceptions(sr)
}

// Update returns a builder for updating this ShiftReport.
// Note that you need to call ShiftReport.Unwrap() before calling this method if this ShiftReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (sr *ShiftReport) Update() *ShiftReportUpdateOne {
	return NewShiftReportClient(sr.config).UpdateOne(sr)
}

// Unwrap unwraps the ShiftReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sr *ShiftReport) Unwrap() *ShiftReport {
	_tx, ok := sr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShiftReport is not a transactional entity")
	}
	sr.config.driver = _tx.drv
	return sr
}

// String implements the fmt.Stringer.
func (sr *ShiftReport) String() string {
	var builder strings.Builder
	builder.WriteString("ShiftReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sr.ID))
	builder.WriteString("store_id=")
	builder.WriteString(fmt.Sprintf("%v", sr.StoreID))
	builder.WriteString(", ")
	builder.WriteString("receipt_hash=")
	builder.WriteString(sr.ReceiptHash)
	builder.WriteString(", ")
	builder.WriteString("report_date=")
	builder.WriteString(sr.ReportDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(sr.RawText)
	builder.WriteString(", ")
	builder.WriteString("extraction_method=")
	builder.WriteString(sr.ExtractionMethod)
	builder.WriteString(", ")
	builder.WriteString("extraction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", sr.ExtractionConfidence))
	builder.WriteString(", ")
	builder.WriteString("upload_count=")
	builder.WriteString(fmt.Sprintf("%v", sr.UploadCount))
	builder.WriteString(", ")
	builder.WriteString("last_upload_reason=")
	builder.WriteString(sr.LastUploadReason)
	builder.WriteString(", ")
	builder.WriteString("store_metadata=")
	builder.WriteString(fmt.Sprintf("%v", sr.StoreMetadata))
	builder.WriteString(", ")
	builder.WriteString("balances=")
	builder.WriteString(fmt.Sprintf("%v", sr.Balances))
	builder.WriteString(", ")
	builder.WriteString("sales_summary=")
	builder.WriteString(fmt.Sprintf("%v", sr.SalesSummary))
	builder.WriteString(", ")
	builder.WriteString("fuel=")
	builder.WriteString(fmt.Sprintf("%v", sr.Fuel))
	builder.WriteString(", ")
	builder.WriteString("inside_sales=")
	builder.WriteString(fmt.Sprintf("%v", sr.InsideSales))
	builder.WriteString(", ")
	builder.WriteString("tenders=")
	builder.WriteString(fmt.Sprintf("%v", sr.Tenders))
	builder.WriteString(", ")
	builder.WriteString("safe_activity=")
	builder.WriteString(fmt.Sprintf("%v", sr.SafeActivity))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(sr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(sr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ShiftReports is a parsable slice of ShiftReport.
type ShiftReports []*ShiftReport
