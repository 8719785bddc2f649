package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/internal/extract"
)

// ShiftReport represents a stored shift report for data transfer between layers.
type ShiftReport struct {
	ID                   uuid.UUID              `json:"id"`
	StoreID              uuid.UUID              `json:"store_id"`
	ReceiptHash          string                 `json:"receipt_hash"`
	ReportDate           time.Time              `json:"report_date"`
	ExtractionMethod     string                 `json:"extraction_method"`
	ExtractionConfidence float32                `json:"extraction_confidence"`
	UploadCount          int                    `json:"upload_count"`
	LastUploadReason     constants.UploadReason `json:"last_upload_reason"`
	RawText              string                 `json:"raw_text"`

	StoreMetadata *extract.StoreMetadata `json:"store_metadata,omitempty"`
	Balances      *extract.Balances      `json:"balances,omitempty"`
	SalesSummary  *extract.SalesSummary  `json:"sales_summary,omitempty"`
	Fuel          *extract.Fuel          `json:"fuel,omitempty"`
	InsideSales   *extract.InsideSales   `json:"inside_sales,omitempty"`
	Tenders       *extract.Tenders       `json:"tenders,omitempty"`
	SafeActivity  *extract.SafeActivity  `json:"safe_activity,omitempty"`

	DepartmentSales []extract.LineItem  `json:"department_sales,omitempty"`
	ItemSales       []extract.LineItem  `json:"item_sales,omitempty"`
	Exceptions      []extract.Exception `json:"exceptions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveResult is the outcome of saving an extract for a receipt hash.
type SaveResult struct {
	ID          uuid.UUID            `json:"id"`
	Status      constants.SaveStatus `json:"status"`
	UploadCount int                  `json:"upload_count"`
}

// NameTotal is one row of a grouped sales aggregation.
type NameTotal struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity float64 `json:"quantity"`
}
