package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/gen/ent"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/internal/entity"
	"github.com/forecourt-labs/shiftscan/internal/extract"
)

func toShiftReport(row *ent.ShiftReport) *entity.ShiftReport {
	out := &entity.ShiftReport{
		ID:                   row.ID,
		StoreID:              row.StoreID,
		ReceiptHash:          row.ReceiptHash,
		ReportDate:           row.ReportDate,
		ExtractionMethod:     row.ExtractionMethod,
		ExtractionConfidence: row.ExtractionConfidence,
		UploadCount:          row.UploadCount,
		LastUploadReason:     constants.UploadReason(row.LastUploadReason),
		RawText:              row.RawText,
		StoreMetadata:        row.StoreMetadata,
		Balances:             row.Balances,
		SalesSummary:         row.SalesSummary,
		Fuel:                 row.Fuel,
		InsideSales:          row.InsideSales,
		Tenders:              row.Tenders,
		SafeActivity:         row.SafeActivity,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
	for _, d := range row.Edges.Departments {
		out.DepartmentSales = append(out.DepartmentSales, extract.LineItem{
			Name:       d.Name,
			Quantity:   d.Quantity,
			Amount:     d.Amount,
			Confidence: d.Confidence,
		})
	}
	for _, it := range row.Edges.Items {
		out.ItemSales = append(out.ItemSales, extract.LineItem{
			Name:       it.Name,
			Quantity:   it.Quantity,
			Amount:     it.Amount,
			Confidence: it.Confidence,
		})
	}
	for _, ex := range row.Edges.Exceptions {
		out.Exceptions = append(out.Exceptions, extract.Exception{
			Type:   ex.Type,
			Count:  ex.Count,
			Amount: ex.Amount,
		})
	}
	return out
}

func toStore(row *ent.Store) *entity.Store {
	return &entity.Store{
		ID:        row.ID,
		Name:      row.Name,
		Timezone:  row.Timezone,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func reportPredicates(storeID uuid.UUID, fromDate, toDate *time.Time) []predicate.ShiftReport {
	preds := []predicate.ShiftReport{shiftreport.StoreID(storeID)}
	if fromDate != nil {
		preds = append(preds, shiftreport.ReportDateGTE(*fromDate))
	}
	if toDate != nil {
		preds = append(preds, shiftreport.ReportDateLTE(*toDate))
	}
	return preds
}

// rankTotals orders grouped sums descending by amount and applies the limit.
// Grouping happens in SQL; ordering here keeps the GroupBy scan simple.
func rankTotals(rows []struct {
	Name string  `json:"name"`
	Sum  float64 `json:"sum"`
}, limit int) []entity.NameTotal {
	out := make([]entity.NameTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.NameTotal{Name: row.Name, Amount: row.Sum})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
