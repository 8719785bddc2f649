package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/gen/ent"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/internal/entity"
	"github.com/forecourt-labs/shiftscan/internal/extract"
)

type ShiftReportRepository interface {
	// Save persists a validated extract for a store, deduplicating on the
	// receipt hash of its raw text: first upload creates, later uploads
	// replace or upgrade the same row, never duplicate it.
	Save(ctx context.Context, storeID uuid.UUID, rep *extract.ShiftReport) (*entity.SaveResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ShiftReport, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.ShiftReport, error)
	TopDepartments(ctx context.Context, storeID uuid.UUID, fromDate, toDate *time.Time, limit int) ([]entity.NameTotal, error)
	TopItems(ctx context.Context, storeID uuid.UUID, fromDate, toDate *time.Time, limit int) ([]entity.NameTotal, error)
}

type shiftReportRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewShiftReportRepository(entc *ent.Client, logger *slog.Logger) ShiftReportRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &shiftReportRepo{ent: entc, logger: logger}
}

func (r *shiftReportRepo) Save(ctx context.Context, storeID uuid.UUID, rep *extract.ShiftReport) (*entity.SaveResult, error) {
	hash := ReceiptHash(rep.RawText)
	// Re-derived on every upsert: a better-confidence extraction may carry a
	// corrected shift-end time and move the report to the right business day.
	reportDate := DeriveReportDate(rep.StoreMetadata, time.Now().UTC())

	existing, err := r.getByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		row, cErr := r.create(ctx, storeID, hash, reportDate, rep)
		if cErr == nil {
			r.logger.Info("shift_report.save.created", "report_id", row.ID, "receipt_hash", hash)
			return &entity.SaveResult{ID: row.ID, Status: constants.SaveCreated, UploadCount: 1}, nil
		}
		if !IsUniqueViolationError(cErr) {
			return nil, cErr
		}
		// Lost the insert race: a concurrent upload of the same receipt got
		// there first. Retry as an update against the winner's row.
		r.logger.Warn("shift_report.save.conflict", "receipt_hash", hash)
		existing, err = r.getByHash(ctx, hash)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("receipt %s: conflict on insert but row not found", hash)
		}
	}

	status, reason := DecideSave(true, existing.ExtractionConfidence, rep.ExtractionConfidence)
	if err := r.replace(ctx, existing.ID, reason, reportDate, rep); err != nil {
		return nil, err
	}
	r.logger.Info("shift_report.save.updated",
		"report_id", existing.ID,
		"receipt_hash", hash,
		"status", status,
		"stored_confidence", existing.ExtractionConfidence,
		"incoming_confidence", rep.ExtractionConfidence,
	)
	return &entity.SaveResult{
		ID:          existing.ID,
		Status:      status,
		UploadCount: existing.UploadCount + 1,
	}, nil
}

func (r *shiftReportRepo) getByHash(ctx context.Context, hash string) (*ent.ShiftReport, error) {
	row, err := r.ent.ShiftReport.Query().
		Where(shiftreport.ReceiptHash(hash)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *shiftReportRepo) create(ctx context.Context, storeID uuid.UUID, hash string, reportDate time.Time, rep *extract.ShiftReport) (*ent.ShiftReport, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	builder := tx.ShiftReport.Create().
		SetStoreID(storeID).
		SetReceiptHash(hash).
		SetReportDate(reportDate).
		SetRawText(rep.RawText).
		SetExtractionMethod(string(rep.ExtractionMethod)).
		SetExtractionConfidence(rep.ExtractionConfidence).
		SetUploadCount(1).
		SetLastUploadReason(string(constants.ReasonInitial))
	applyCreateSections(builder, rep)

	row, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := createChildren(ctx, tx, row.ID, rep); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return row, nil
}

// replace rewrites the stored row in place for a duplicate or upgrade upload:
// parent fields updated, child collections deleted and recreated from the new
// extract, upload count incremented.
func (r *shiftReportRepo) replace(ctx context.Context, reportID uuid.UUID, reason constants.UploadReason, reportDate time.Time, rep *extract.ShiftReport) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}

	builder := tx.ShiftReport.UpdateOneID(reportID).
		SetReportDate(reportDate).
		SetRawText(rep.RawText).
		SetExtractionMethod(string(rep.ExtractionMethod)).
		SetExtractionConfidence(rep.ExtractionConfidence).
		AddUploadCount(1).
		SetLastUploadReason(string(reason))
	applyUpdateSections(builder, rep)

	if _, err := builder.Save(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.DepartmentSale.Delete().Where(departmentsale.ReportID(reportID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ItemSale.Delete().Where(itemsale.ReportID(reportID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ReportException.Delete().Where(reportexception.ReportID(reportID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := createChildren(ctx, tx, reportID, rep); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func applyCreateSections(b *ent.ShiftReportCreate, rep *extract.ShiftReport) {
	if rep.StoreMetadata != nil {
		b.SetStoreMetadata(rep.StoreMetadata)
	}
	if rep.Balances != nil {
		b.SetBalances(rep.Balances)
	}
	if rep.SalesSummary != nil {
		b.SetSalesSummary(rep.SalesSummary)
	}
	if rep.Fuel != nil {
		b.SetFuel(rep.Fuel)
	}
	if rep.InsideSales != nil {
		b.SetInsideSales(rep.InsideSales)
	}
	if rep.Tenders != nil {
		b.SetTenders(rep.Tenders)
	}
	if rep.SafeActivity != nil {
		b.SetSafeActivity(rep.SafeActivity)
	}
}

func applyUpdateSections(b *ent.ShiftReportUpdateOne, rep *extract.ShiftReport) {
	b.ClearStoreMetadata()
	b.ClearBalances()
	b.ClearSalesSummary()
	b.ClearFuel()
	b.ClearInsideSales()
	b.ClearTenders()
	b.ClearSafeActivity()
	if rep.StoreMetadata != nil {
		b.SetStoreMetadata(rep.StoreMetadata)
	}
	if rep.Balances != nil {
		b.SetBalances(rep.Balances)
	}
	if rep.SalesSummary != nil {
		b.SetSalesSummary(rep.SalesSummary)
	}
	if rep.Fuel != nil {
		b.SetFuel(rep.Fuel)
	}
	if rep.InsideSales != nil {
		b.SetInsideSales(rep.InsideSales)
	}
	if rep.Tenders != nil {
		b.SetTenders(rep.Tenders)
	}
	if rep.SafeActivity != nil {
		b.SetSafeActivity(rep.SafeActivity)
	}
}

func createChildren(ctx context.Context, tx *ent.Tx, reportID uuid.UUID, rep *extract.ShiftReport) error {
	if len(rep.DepartmentSales) > 0 {
		bulk := make([]*ent.DepartmentSaleCreate, 0, len(rep.DepartmentSales))
		for _, d := range rep.DepartmentSales {
			bulk = append(bulk, tx.DepartmentSale.Create().
				SetReportID(reportID).
				SetName(d.Name).
				SetNillableQuantity(d.Quantity).
				SetAmount(d.Amount).
				SetConfidence(d.Confidence))
		}
		if _, err := tx.DepartmentSale.CreateBulk(bulk...).Save(ctx); err != nil {
			return err
		}
	}
	if len(rep.ItemSales) > 0 {
		bulk := make([]*ent.ItemSaleCreate, 0, len(rep.ItemSales))
		for _, it := range rep.ItemSales {
			bulk = append(bulk, tx.ItemSale.Create().
				SetReportID(reportID).
				SetName(it.Name).
				SetNillableQuantity(it.Quantity).
				SetAmount(it.Amount).
				SetConfidence(it.Confidence))
		}
		if _, err := tx.ItemSale.CreateBulk(bulk...).Save(ctx); err != nil {
			return err
		}
	}
	if len(rep.Exceptions) > 0 {
		bulk := make([]*ent.ReportExceptionCreate, 0, len(rep.Exceptions))
		for _, ex := range rep.Exceptions {
			bulk = append(bulk, tx.ReportException.Create().
				SetReportID(reportID).
				SetType(ex.Type).
				SetCount(ex.Count).
				SetNillableAmount(ex.Amount))
		}
		if _, err := tx.ReportException.CreateBulk(bulk...).Save(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *shiftReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ShiftReport, error) {
	row, err := r.ent.ShiftReport.Query().
		Where(shiftreport.ID(id)).
		WithDepartments().
		WithItems().
		WithExceptions().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toShiftReport(row), nil
}

func (r *shiftReportRepo) ListByStore(ctx context.Context, storeID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.ShiftReport, error) {
	q := r.ent.ShiftReport.Query().Where(shiftreport.StoreID(storeID))
	if fromDate != nil {
		q = q.Where(shiftreport.ReportDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(shiftreport.ReportDateLTE(*toDate))
	}
	rows, err := q.Order(shiftreport.ByReportDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list shift reports", "store_id", storeID, "error", err)
		return nil, err
	}
	out := make([]*entity.ShiftReport, len(rows))
	for i, row := range rows {
		out[i] = toShiftReport(row)
	}
	return out, nil
}

func (r *shiftReportRepo) TopDepartments(ctx context.Context, storeID uuid.UUID, fromDate, toDate *time.Time, limit int) ([]entity.NameTotal, error) {
	q := r.ent.DepartmentSale.Query().
		Where(departmentsale.HasReportWith(reportPredicates(storeID, fromDate, toDate)...))
	var rows []struct {
		Name string  `json:"name"`
		Sum  float64 `json:"sum"`
	}
	err := q.GroupBy(departmentsale.FieldName).
		Aggregate(ent.Sum(departmentsale.FieldAmount)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rankTotals(rows, limit), nil
}

func (r *shiftReportRepo) TopItems(ctx context.Context, storeID uuid.UUID, fromDate, toDate *time.Time, limit int) ([]entity.NameTotal, error) {
	q := r.ent.ItemSale.Query().
		Where(itemsale.HasReportWith(reportPredicates(storeID, fromDate, toDate)...))
	var rows []struct {
		Name string  `json:"name"`
		Sum  float64 `json:"sum"`
	}
	err := q.GroupBy(itemsale.FieldName).
		Aggregate(ent.Sum(itemsale.FieldAmount)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rankTotals(rows, limit), nil
}
