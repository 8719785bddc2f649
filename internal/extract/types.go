package extract

import "github.com/forecourt-labs/shiftscan/constants"

// Method identifies which tier produced a ShiftReport.
type Method string

const (
	MethodDeterministic Method = "deterministic"
	MethodAIText        Method = "ai_text"
	MethodAIVision      Method = "ai_vision"
)

// Methods lists the valid extraction methods, for schema enums and validation.
var Methods = []string{string(MethodDeterministic), string(MethodAIText), string(MethodAIVision)}

// StoreMetadata identifies the register/operator/shift that printed the report.
// Timestamps are ISO-8601 strings as recognized; parsing happens at save time.
type StoreMetadata struct {
	RegisterID string  `json:"registerId,omitempty"`
	OperatorID string  `json:"operatorId,omitempty"`
	TillID     string  `json:"tillId,omitempty"`
	ShiftStart string  `json:"shiftStart,omitempty"`
	ShiftEnd   string  `json:"shiftEnd,omitempty"`
	PrintedAt  string  `json:"printedAt,omitempty"`
	ReportDate string  `json:"reportDate,omitempty"`
	Confidence float32 `json:"confidence"`
}

// Balances covers drawer accountability. CashVariance is signed:
// positive = overage, negative = shortage.
type Balances struct {
	BeginningBalance      *float64 `json:"beginningBalance,omitempty"`
	EndingBalance         *float64 `json:"endingBalance,omitempty"`
	ClosingAccountability *float64 `json:"closingAccountability,omitempty"`
	CountedCash           *float64 `json:"countedCash,omitempty"`
	CashVariance          *float64 `json:"cashVariance,omitempty"`
	Confidence            float32  `json:"confidence"`
}

type SalesSummary struct {
	GrossSales       *float64 `json:"grossSales,omitempty"`
	NetSales         *float64 `json:"netSales,omitempty"`
	Refunds          *float64 `json:"refunds,omitempty"`
	Discounts        *float64 `json:"discounts,omitempty"`
	Tax              *float64 `json:"tax,omitempty"`
	TransactionCount *int     `json:"transactionCount,omitempty"`
	Confidence       float32  `json:"confidence"`
}

type Fuel struct {
	FuelSales  *float64 `json:"fuelSales,omitempty"`
	FuelGross  *float64 `json:"fuelGross,omitempty"`
	Gallons    *float64 `json:"gallons,omitempty"`
	Confidence float32  `json:"confidence"`
}

type InsideSales struct {
	InsideSales     *float64 `json:"insideSales,omitempty"`
	Merchandise     *float64 `json:"merchandise,omitempty"`
	PrepayInitiated *float64 `json:"prepayInitiated,omitempty"`
	PrepayPumped    *float64 `json:"prepayPumped,omitempty"`
	Confidence      float32  `json:"confidence"`
}

// TenderLine is one tender type's count/amount pair.
type TenderLine struct {
	Count  *int     `json:"count,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
}

type Tenders struct {
	Cash       *TenderLine `json:"cash,omitempty"`
	Credit     *TenderLine `json:"credit,omitempty"`
	Debit      *TenderLine `json:"debit,omitempty"`
	Check      *TenderLine `json:"check,omitempty"`
	EBT        *TenderLine `json:"ebt,omitempty"`
	Other      *TenderLine `json:"other,omitempty"`
	Total      *float64    `json:"total,omitempty"`
	Confidence float32     `json:"confidence"`
}

type SafeActivity struct {
	DropCount     *int     `json:"dropCount,omitempty"`
	DropAmount    *float64 `json:"dropAmount,omitempty"`
	LoanCount     *int     `json:"loanCount,omitempty"`
	LoanAmount    *float64 `json:"loanAmount,omitempty"`
	PaidInCount   *int     `json:"paidInCount,omitempty"`
	PaidInAmount  *float64 `json:"paidInAmount,omitempty"`
	PaidOutCount  *int     `json:"paidOutCount,omitempty"`
	PaidOutAmount *float64 `json:"paidOutAmount,omitempty"`
	Confidence    float32  `json:"confidence"`
}

// LineItem is a department or item sales line.
type LineItem struct {
	Name       string   `json:"name"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Amount     float64  `json:"amount"`
	Confidence float32  `json:"confidence"`
}

// Exception is a void / no-sale / drive-off style register event.
type Exception struct {
	Type   string   `json:"type"`
	Count  int      `json:"count"`
	Amount *float64 `json:"amount,omitempty"`
}

// ShiftReport is the canonical structured record produced by the pipeline.
// Absent sections are nil and omitted from JSON, never null-valued-but-present.
type ShiftReport struct {
	StoreMetadata *StoreMetadata `json:"storeMetadata,omitempty"`
	Balances      *Balances      `json:"balances,omitempty"`
	SalesSummary  *SalesSummary  `json:"salesSummary,omitempty"`
	Fuel          *Fuel          `json:"fuel,omitempty"`
	InsideSales   *InsideSales   `json:"insideSales,omitempty"`
	Tenders       *Tenders       `json:"tenders,omitempty"`
	SafeActivity  *SafeActivity  `json:"safeActivity,omitempty"`

	DepartmentSales []LineItem  `json:"departmentSales,omitempty"`
	ItemSales       []LineItem  `json:"itemSales,omitempty"`
	Exceptions      []Exception `json:"exceptions,omitempty"`

	RawText              string  `json:"rawText"`
	ExtractionMethod     Method  `json:"extractionMethod"`
	ExtractionConfidence float32 `json:"extractionConfidence"`
}

// SectionConfidences returns the confidences of the top-level sections that are
// present, in declaration order. Department/item/exception lines carry their own
// per-line confidence and do not contribute here.
func (r *ShiftReport) SectionConfidences() []float32 {
	var out []float32
	if r.StoreMetadata != nil {
		out = append(out, r.StoreMetadata.Confidence)
	}
	if r.Balances != nil {
		out = append(out, r.Balances.Confidence)
	}
	if r.SalesSummary != nil {
		out = append(out, r.SalesSummary.Confidence)
	}
	if r.Fuel != nil {
		out = append(out, r.Fuel.Confidence)
	}
	if r.InsideSales != nil {
		out = append(out, r.InsideSales.Confidence)
	}
	if r.Tenders != nil {
		out = append(out, r.Tenders.Confidence)
	}
	if r.SafeActivity != nil {
		out = append(out, r.SafeActivity.Confidence)
	}
	return out
}

// OverallConfidence is the arithmetic mean of the present sections' confidences,
// or a fixed low floor when no section is present.
func (r *ShiftReport) OverallConfidence() float32 {
	confs := r.SectionConfidences()
	if len(confs) == 0 {
		return constants.EmptyExtractConfidence
	}
	var sum float32
	for _, c := range confs {
		sum += c
	}
	return sum / float32(len(confs))
}

// Stamp sets the raw text, method, and recomputed overall confidence on r.
// Every tier calls this before validation so the invariant holds regardless of
// what the tier itself filled in.
func (r *ShiftReport) Stamp(rawText string, method Method) {
	r.RawText = rawText
	r.ExtractionMethod = method
	r.ExtractionConfidence = r.OverallConfidence()
}
