package server

import (
	"context"

	shiftscanv1 "github.com/forecourt-labs/shiftscan/gen/proto/shiftscan/v1"
	"github.com/forecourt-labs/shiftscan/internal/common"
)

func (s *ShiftScanService) ExportReports(ctx context.Context, req *shiftscanv1.ExportReportsRequest) (*shiftscanv1.ExportReportsResponse, error) {
	storeID, err := parseStoreID(req.GetStoreId())
	if err != nil {
		return nil, err
	}
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportReportsXLSX(ctx, storeID, from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "store_id", storeID, "error", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &shiftscanv1.ExportReportsResponse{Xlsx: xlsx}, nil
}
