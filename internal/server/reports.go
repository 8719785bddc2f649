package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	shiftscanv1 "github.com/forecourt-labs/shiftscan/gen/proto/shiftscan/v1"
	"github.com/forecourt-labs/shiftscan/gen/ent"
	"github.com/forecourt-labs/shiftscan/internal/common"
	"github.com/forecourt-labs/shiftscan/internal/entity"
)

const defaultTopLimit = 10

func (s *ShiftScanService) GetReport(ctx context.Context, req *shiftscanv1.GetReportRequest) (*shiftscanv1.GetReportResponse, error) {
	raw := strings.TrimSpace(req.GetReportId())
	if raw == "" {
		return nil, common.InvalidArgumentError("report_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, common.InvalidArgumentError("report_id must be a UUID")
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("report not found")
		}
		s.logger.Error("failed to get report", "report_id", id, "error", err)
		return nil, common.InternalErrorf("get report: %v", err)
	}
	return &shiftscanv1.GetReportResponse{Report: toPBReport(rep)}, nil
}

func (s *ShiftScanService) ListReports(ctx context.Context, req *shiftscanv1.ListReportsRequest) (*shiftscanv1.ListReportsResponse, error) {
	storeID, err := parseStoreID(req.GetStoreId())
	if err != nil {
		return nil, err
	}
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	reps, err := s.reports.ListByStore(ctx, storeID, from, to)
	if err != nil {
		s.logger.Error("failed to list reports", "store_id", storeID, "error", err)
		return nil, common.InternalErrorf("list reports: %v", err)
	}
	s.logger.Info("reports listed", "store_id", storeID, "count", len(reps))

	out := make([]*shiftscanv1.ShiftReport, 0, len(reps))
	for _, r := range reps {
		out = append(out, toPBReport(r))
	}
	return &shiftscanv1.ListReportsResponse{Reports: out}, nil
}

func (s *ShiftScanService) TopDepartments(ctx context.Context, req *shiftscanv1.TopRequest) (*shiftscanv1.TopResponse, error) {
	return s.topTotals(ctx, req, s.reports.TopDepartments)
}

func (s *ShiftScanService) TopItems(ctx context.Context, req *shiftscanv1.TopRequest) (*shiftscanv1.TopResponse, error) {
	return s.topTotals(ctx, req, s.reports.TopItems)
}

func (s *ShiftScanService) topTotals(
	ctx context.Context,
	req *shiftscanv1.TopRequest,
	query func(context.Context, uuid.UUID, *time.Time, *time.Time, int) ([]entity.NameTotal, error),
) (*shiftscanv1.TopResponse, error) {
	storeID, err := parseStoreID(req.GetStoreId())
	if err != nil {
		return nil, err
	}
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultTopLimit
	}

	totals, err := query(ctx, storeID, from, to, limit)
	if err != nil {
		s.logger.Error("failed to aggregate totals", "store_id", storeID, "error", err)
		return nil, common.InternalErrorf("aggregate: %v", err)
	}

	out := make([]*shiftscanv1.NameTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, &shiftscanv1.NameTotal{Name: t.Name, Amount: t.Amount})
	}
	return &shiftscanv1.TopResponse{Totals: out}, nil
}
