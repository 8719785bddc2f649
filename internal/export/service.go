package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/forecourt-labs/shiftscan/internal/repository"
)

// Service is a tiny façade over the report repository that produces XLSX
// bytes for shift-report exports.
type Service struct {
	reports repository.ShiftReportRepository
	logger  *slog.Logger
}

func NewService(reports repository.ShiftReportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, logger: logger}
}

// ExportReportsXLSX returns an XLSX workbook (as bytes) for the given store and
// date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all reports for the store.
func (s *Service) ExportReportsXLSX(ctx context.Context, storeID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	reports, err := s.reports.ListByStore(ctx, storeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Shift Reports"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Report Date",
		"Register",
		"Operator",
		"Gross Sales",
		"Net Sales",
		"Fuel Sales",
		"Inside Sales",
		"Cash Variance",
		"Safe Drops",
		"Method",
		"Confidence",
		"Uploads",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range reports {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.ReportDate.Format("2006-01-02"))
		if r.StoreMetadata != nil {
			write(2, r.StoreMetadata.RegisterID)
			write(3, r.StoreMetadata.OperatorID)
		}
		if r.SalesSummary != nil {
			writeMoney(write, 4, r.SalesSummary.GrossSales)
			writeMoney(write, 5, r.SalesSummary.NetSales)
		}
		if r.Fuel != nil {
			writeMoney(write, 6, r.Fuel.FuelSales)
		}
		if r.InsideSales != nil {
			writeMoney(write, 7, r.InsideSales.InsideSales)
		}
		if r.Balances != nil {
			writeMoney(write, 8, r.Balances.CashVariance)
		}
		if r.SafeActivity != nil {
			writeMoney(write, 9, r.SafeActivity.DropAmount)
		}
		write(10, r.ExtractionMethod)
		write(11, fmt.Sprintf("%.2f", r.ExtractionConfidence))
		write(12, r.UploadCount)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "C", 12) // register / operator
	_ = f.SetColWidth(sheet, "D", "I", 14) // amounts
	_ = f.SetColWidth(sheet, "J", "J", 14) // method
	_ = f.SetColWidth(sheet, "K", "L", 12) // confidence / uploads

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"store_id", storeID.String(),
		"rows", len(reports),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeMoney(write func(col int, v any), col int, v *float64) {
	if v == nil {
		return
	}
	write(col, fmt.Sprintf("%.2f", *v))
}
