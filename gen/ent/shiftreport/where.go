// Code generated by ent, DO NOT EDIT.

package shiftreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldID, id))
}

// StoreID applies equality check predicate on the "store_id" field. It's identical to StoreIDEQ.
func StoreID(v uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldStoreID, v))
}

// ReceiptHash applies equality check predicate on the "receipt_hash" field. It's identical to ReceiptHashEQ.
func ReceiptHash(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldReceiptHash, v))
}

// ReportDate applies equality check predicate on the "report_date" field. It's identical to ReportDateEQ.
func ReportDate(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldReportDate, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldRawText, v))
}

// ExtractionMethod applies equality check predicate on the "extraction_method" field. It's identical to ExtractionMethodEQ.
func ExtractionMethod(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldExtractionConfidence, v))
}

// UploadCount applies equality check predicate on the "upload_count" field. It's identical to UploadCountEQ.
func UploadCount(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldUploadCount, v))
}

// LastUploadReason applies equality check predicate on the "last_upload_reason" field. It's identical to LastUploadReasonEQ.
func LastUploadReason(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldLastUploadReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// StoreIDEQ applies the EQ predicate on the "store_id" field.
func StoreIDEQ(v uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldStoreID, v))
}

// StoreIDNEQ applies the NEQ predicate on the "store_id" field.
func StoreIDNEQ(v uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldStoreID, v))
}

// StoreIDIn applies the In predicate on the "store_id" field.
func StoreIDIn(vs ...uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldStoreID, vs...))
}

// StoreIDNotIn applies the NotIn predicate on the "store_id" field.
func StoreIDNotIn(vs ...uuid.UUID) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldStoreID, vs...))
}

// ReceiptHashEQ applies the EQ predicate on the "receipt_hash" field.
func ReceiptHashEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldReceiptHash, v))
}

// ReceiptHashNEQ applies the NEQ predicate on the "receipt_hash" field.
func ReceiptHashNEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldReceiptHash, v))
}

// ReceiptHashIn applies the In predicate on the "receipt_hash" field.
func ReceiptHashIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldReceiptHash, vs...))
}

// ReceiptHashNotIn applies the NotIn predicate on the "receipt_hash" field.
func ReceiptHashNotIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldReceiptHash, vs...))
}

// ReceiptHashGT applies the GT predicate on the "receipt_hash" field.
func ReceiptHashGT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldReceiptHash, v))
}

// ReceiptHashGTE applies the GTE predicate on the "receipt_hash" field.
func ReceiptHashGTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldReceiptHash, v))
}

// ReceiptHashLT applies the LT predicate on the "receipt_hash" field.
func ReceiptHashLT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldReceiptHash, v))
}

// ReceiptHashLTE applies the LTE predicate on the "receipt_hash" field.
func ReceiptHashLTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldReceiptHash, v))
}

// ReceiptHashContains applies the Contains predicate on the "receipt_hash" field.
func ReceiptHashContains(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContains(FieldReceiptHash, v))
}

// ReceiptHashHasPrefix applies the HasPrefix predicate on the "receipt_hash" field.
func ReceiptHashHasPrefix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasPrefix(FieldReceiptHash, v))
}

// ReceiptHashHasSuffix applies the HasSuffix predicate on the "receipt_hash" field.
func ReceiptHashHasSuffix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasSuffix(FieldReceiptHash, v))
}

// ReceiptHashEqualFold applies the EqualFold predicate on the "receipt_hash" field.
func ReceiptHashEqualFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEqualFold(FieldReceiptHash, v))
}

// ReceiptHashContainsFold applies the ContainsFold predicate on the "receipt_hash" field.
func ReceiptHashContainsFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContainsFold(FieldReceiptHash, v))
}

// ReportDateEQ applies the EQ predicate on the "report_date" field.
func ReportDateEQ(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldReportDate, v))
}

// ReportDateNEQ applies the NEQ predicate on the "report_date" field.
func ReportDateNEQ(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldReportDate, v))
}

// ReportDateIn applies the In predicate on the "report_date" field.
func ReportDateIn(vs ...time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldReportDate, vs...))
}

// ReportDateNotIn applies the NotIn predicate on the "report_date" field.
func ReportDateNotIn(vs ...time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldReportDate, vs...))
}

// ReportDateGT applies the GT predicate on the "report_date" field.
func ReportDateGT(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldReportDate, v))
}

// ReportDateGTE applies the GTE predicate on the "report_date" field.
func ReportDateGTE(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldReportDate, v))
}

// ReportDateLT applies the LT predicate on the "report_date" field.
func ReportDateLT(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldReportDate, v))
}

// ReportDateLTE applies the LTE predicate on the "report_date" field.
func ReportDateLTE(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldReportDate, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodGT applies the GT predicate on the "extraction_method" field.
func ExtractionMethodGT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldExtractionMethod, v))
}

// ExtractionMethodGTE applies the GTE predicate on the "extraction_method" field.
func ExtractionMethodGTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldExtractionMethod, v))
}

// ExtractionMethodLT applies the LT predicate on the "extraction_method" field.
func ExtractionMethodLT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldExtractionMethod, v))
}

// ExtractionMethodLTE applies the LTE predicate on the "extraction_method" field.
func ExtractionMethodLTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldExtractionMethod, v))
}

// ExtractionMethodContains applies the Contains predicate on the "extraction_method" field.
func ExtractionMethodContains(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContains(FieldExtractionMethod, v))
}

// ExtractionMethodHasPrefix applies the HasPrefix predicate on the "extraction_method" field.
func ExtractionMethodHasPrefix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasPrefix(FieldExtractionMethod, v))
}

// ExtractionMethodHasSuffix applies the HasSuffix predicate on the "extraction_method" field.
func ExtractionMethodHasSuffix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasSuffix(FieldExtractionMethod, v))
}

// ExtractionMethodEqualFold applies the EqualFold predicate on the "extraction_method" field.
func ExtractionMethodEqualFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEqualFold(FieldExtractionMethod, v))
}

// ExtractionMethodContainsFold applies the ContainsFold predicate on the "extraction_method" field.
func ExtractionMethodContainsFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContainsFold(FieldExtractionMethod, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldExtractionConfidence, v))
}

// UploadCountEQ applies the EQ predicate on the "upload_count" field.
func UploadCountEQ(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldUploadCount, v))
}

// UploadCountNEQ applies the NEQ predicate on the "upload_count" field.
func UploadCountNEQ(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldUploadCount, v))
}

// UploadCountIn applies the In predicate on the "upload_count" field.
func UploadCountIn(vs ...int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldUploadCount, vs...))
}

// UploadCountNotIn applies the NotIn predicate on the "upload_count" field.
func UploadCountNotIn(vs ...int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldUploadCount, vs...))
}

// UploadCountGT applies the GT predicate on the "upload_count" field.
func UploadCountGT(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldUploadCount, v))
}

// UploadCountGTE applies the GTE predicate on the "upload_count" field.
func UploadCountGTE(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldUploadCount, v))
}

// UploadCountLT applies the LT predicate on the "upload_count" field.
func UploadCountLT(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldUploadCount, v))
}

// UploadCountLTE applies the LTE predicate on the "upload_count" field.
func UploadCountLTE(v int) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldUploadCount, v))
}

// LastUploadReasonEQ applies the EQ predicate on the "last_upload_reason" field.
func LastUploadReasonEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldLastUploadReason, v))
}

// LastUploadReasonNEQ applies the NEQ predicate on the "last_upload_reason" field.
func LastUploadReasonNEQ(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldLastUploadReason, v))
}

// LastUploadReasonIn applies the In predicate on the "last_upload_reason" field.
func LastUploadReasonIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldLastUploadReason, vs...))
}

// LastUploadReasonNotIn applies the NotIn predicate on the "last_upload_reason" field.
func LastUploadReasonNotIn(vs ...string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldLastUploadReason, vs...))
}

// LastUploadReasonGT applies the GT predicate on the "last_upload_reason" field.
func LastUploadReasonGT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldLastUploadReason, v))
}

// LastUploadReasonGTE applies the GTE predicate on the "last_upload_reason" field.
func LastUploadReasonGTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldLastUploadReason, v))
}

// LastUploadReasonLT applies the LT predicate on the "last_upload_reason" field.
func LastUploadReasonLT(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldLastUploadReason, v))
}

// LastUploadReasonLTE applies the LTE predicate on the "last_upload_reason" field.
func LastUploadReasonLTE(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldLastUploadReason, v))
}

// LastUploadReasonContains applies the Contains predicate on the "last_upload_reason" field.
func LastUploadReasonContains(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContains(FieldLastUploadReason, v))
}

// LastUploadReasonHasPrefix applies the HasPrefix predicate on the "last_upload_reason" field.
func LastUploadReasonHasPrefix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasPrefix(FieldLastUploadReason, v))
}

// LastUploadReasonHasSuffix applies the HasSuffix predicate on the "last_upload_reason" field.
func LastUploadReasonHasSuffix(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldHasSuffix(FieldLastUploadReason, v))
}

// LastUploadReasonEqualFold applies the EqualFold predicate on the "last_upload_reason" field.
func LastUploadReasonEqualFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEqualFold(FieldLastUploadReason, v))
}

// LastUploadReasonContainsFold applies the ContainsFold predicate on the "last_upload_reason" field.
func LastUploadReasonContainsFold(v string) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldContainsFold(FieldLastUploadReason, v))
}

// StoreMetadataIsNil applies the IsNil predicate on the "store_metadata" field.
func StoreMetadataIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldStoreMetadata))
}

// StoreMetadataNotNil applies the NotNil predicate on the "store_metadata" field.
func StoreMetadataNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldStoreMetadata))
}

// BalancesIsNil applies the IsNil predicate on the "balances" field.
func BalancesIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldBalances))
}

// BalancesNotNil applies the NotNil predicate on the "balances" field.
func BalancesNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldBalances))
}

// SalesSummaryIsNil applies the IsNil predicate on the "sales_summary" field.
func SalesSummaryIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldSalesSummary))
}

// SalesSummaryNotNil applies the NotNil predicate on the "sales_summary" field.
func SalesSummaryNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldSalesSummary))
}

// FuelIsNil applies the IsNil predicate on the "fuel" field.
func FuelIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldFuel))
}

// FuelNotNil applies the NotNil predicate on the "fuel" field.
func FuelNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldFuel))
}

// InsideSalesIsNil applies the IsNil predicate on the "inside_sales" field.
func InsideSalesIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldInsideSales))
}

// InsideSalesNotNil applies the NotNil predicate on the "inside_sales" field.
func InsideSalesNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldInsideSales))
}

// TendersIsNil applies the IsNil predicate on the "tenders" field.
func TendersIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldTenders))
}

// TendersNotNil applies the NotNil predicate on the "tenders" field.
func TendersNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldTenders))
}

// SafeActivityIsNil applies the IsNil predicate on the "safe_activity" field.
func SafeActivityIsNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIsNull(FieldSafeActivity))
}

// SafeActivityNotNil applies the NotNil predicate on the "safe_activity" field.
func SafeActivityNotNil() predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotNull(FieldSafeActivity))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ShiftReport {
	return predicate.ShiftReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStore applies the HasEdge predicate on the "store" edge.
func HasStore() predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StoreTable, StoreColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoreWith applies the HasEdge predicate on the "store" edge with a given conditions (other predicates).
func HasStoreWith(preds ...predicate.Store) predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := newStoreStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDepartments applies the HasEdge predicate on the "departments" edge.
func HasDepartments() predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DepartmentsTable, DepartmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDepartmentsWith applies the HasEdge predicate on the "departments" edge with a given conditions (other predicates).
func HasDepartmentsWith(preds ...predicate.DepartmentSale) predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := newDepartmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ItemSale) predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExceptions applies the HasEdge predicate on the "exceptions" edge.
func HasExceptions() predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExceptionsTable, ExceptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExceptionsWith applies the HasEdge predicate on the "exceptions" edge with a given conditions (other predicates).
func HasExceptionsWith(preds ...predicate.ReportException) predicate.ShiftReport {
	return predicate.ShiftReport(func(s *sql.Selector) {
		step := newExceptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShiftReport) predicate.ShiftReport {
	return predicate.ShiftReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShiftReport) predicate.ShiftReport {
	return predicate.ShiftReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShiftReport) predicate.ShiftReport {
	return predicate.ShiftReport(sql.NotPredicates(p))
}
