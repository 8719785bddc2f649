// Code generated by ent, DO NOT EDIT.

package shiftreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the shiftreport type in the database.
	Label = "shift_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStoreID holds the string denoting the store_id field in the database.
	FieldStoreID = "store_id"
	// FieldReceiptHash holds the string denoting the receipt_hash field in the database.
	FieldReceiptHash = "receipt_hash"
	// FieldReportDate holds the string denoting the report_date field in the database.
	FieldReportDate = "report_date"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldUploadCount holds the string denoting the upload_count field in the database.
	FieldUploadCount = "upload_count"
	// FieldLastUploadReason holds the string denoting the last_upload_reason field in the database.
	FieldLastUploadReason = "last_upload_reason"
	// FieldStoreMetadata holds the string denoting the store_metadata field in the database.
	FieldStoreMetadata = "store_metadata"
	// FieldBalances holds the string denoting the balances field in the database.
	FieldBalances = "balances"
	// FieldSalesSummary holds the string denoting the sales_summary field in the database.
	FieldSalesSummary = "sales_summary"
	// FieldFuel holds the string denoting the fuel field in the database.
	FieldFuel = "fuel"
	// FieldInsideSales holds the string denoting the inside_sales field in the database.
	FieldInsideSales = "inside_sales"
	// FieldTenders holds the string denoting the tenders field in the database.
	FieldTenders = "tenders"
	// FieldSafeActivity holds the string denoting the safe_activity field in the database.
	FieldSafeActivity = "safe_activity"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStore holds the string denoting the store edge name in mutations.
	EdgeStore = "store"
	// EdgeDepartments holds the string denoting the departments edge name in mutations.
	EdgeDepartments = "departments"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeExceptions holds the string denoting the exceptions edge name in mutations.
	EdgeExceptions = "exceptions"
	// Table holds the table name of the shiftreport in the database.
	Table = "shift_reports"
	// StoreTable is the table that holds the store relation/edge.
	StoreTable = "shift_reports"
	// StoreInverseTable is the table name for the Store entity.
	// It exists in this package in order to avoid circular dependency with the "store" package.
	StoreInverseTable = "stores"
	// StoreColumn is the table column denoting the store relation/edge.
	StoreColumn = "store_id"
	// DepartmentsTable is the table that holds the departments relation/edge.
	DepartmentsTable = "department_sales"
	// DepartmentsInverseTable is the table name for the DepartmentSale entity.
	// It exists in this package in order to avoid circular dependency with the "departmentsale" package.
	DepartmentsInverseTable = "department_sales"
	// DepartmentsColumn is the table column denoting the departments relation/edge.
	DepartmentsColumn = "report_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "item_sales"
	// ItemsInverseTable is the table name for the ItemSale entity.
	// It exists in this package in order to avoid circular dependency with the "itemsale" package.
	ItemsInverseTable = "item_sales"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "report_id"
	// ExceptionsTable is the table that holds the exceptions relation/edge.
	ExceptionsTable = "report_exceptions"
	// ExceptionsInverseTable is the table name for the ReportException entity.
	// It exists in this package in order to avoid circular dependency with the "reportexception" package.
	ExceptionsInverseTable = "report_exceptions"
	// ExceptionsColumn is the table column denoting the exceptions relation/edge.
	ExceptionsColumn = "report_id"
)

// Columns holds all SQL columns for shiftreport fields.
var Columns = []string{
	FieldID,
	FieldStoreID,
	FieldReceiptHash,
	FieldReportDate,
	FieldRawText,
	FieldExtractionMethod,
	FieldExtractionConfidence,
	FieldUploadCount,
	FieldLastUploadReason,
	FieldStoreMetadata,
	FieldBalances,
	FieldSalesSummary,
	FieldFuel,
	FieldInsideSales,
	FieldTenders,
	FieldSafeActivity,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ReceiptHashValidator is a validator for the "receipt_hash" field. It is called by the builders before save.
	ReceiptHashValidator func(string) error
	// ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	ExtractionMethodValidator func(string) error
	// ExtractionConfidenceValidator is a validator for the "extraction_confidence" field. It is called by the builders before save.
	ExtractionConfidenceValidator func(float32) error
	// DefaultUploadCount holds the default value on creation for the "upload_count" field.
	DefaultUploadCount int
	// UploadCountValidator is a validator for the "upload_count" field. It is called by the builders before save.
	UploadCountValidator func(int) error
	// LastUploadReasonValidator is a validator for the "last_upload_reason" field. It is called by the builders before save.
	LastUploadReasonValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ShiftReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStoreID orders the results by the store_id field.
func ByStoreID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreID, opts...).ToFunc()
}

// ByReceiptHash orders the results by the receipt_hash field.
func ByReceiptHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptHash, opts...).ToFunc()
}

// ByReportDate orders the results by the report_date field.
func ByReportDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportDate, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByUploadCount orders the results by the upload_count field.
func ByUploadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadCount, opts...).ToFunc()
}

// ByLastUploadReason orders the results by the last_upload_reason field.
func ByLastUploadReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUploadReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStoreField orders the results by store field.
func ByStoreField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoreStep(), sql.OrderByField(field, opts...))
	}
}

// ByDepartmentsCount orders the results by departments count.
func ByDepartmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDepartmentsStep(), opts...)
	}
}

// ByDepartments orders the results by departments terms.
func ByDepartments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDepartmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExceptionsCount orders the results by exceptions count.
func ByExceptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExceptionsStep(), opts...)
	}
}

// ByExceptions orders the results by exceptions terms.
func ByExceptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExceptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStoreStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoreInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StoreTable, StoreColumn),
	)
}
func newDepartmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DepartmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DepartmentsTable, DepartmentsColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newExceptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExceptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExceptionsTable, ExceptionsColumn),
	)
}
