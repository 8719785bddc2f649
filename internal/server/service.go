// Package server implements the ShiftScanService gRPC surface on top of the
// pipeline, repositories, and export service.
package server

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	shiftscanv1 "github.com/forecourt-labs/shiftscan/gen/proto/shiftscan/v1"
	"github.com/forecourt-labs/shiftscan/internal/common"
	"github.com/forecourt-labs/shiftscan/internal/entity"
	"github.com/forecourt-labs/shiftscan/internal/export"
	"github.com/forecourt-labs/shiftscan/internal/pipeline"
	"github.com/forecourt-labs/shiftscan/internal/repository"
)

type ShiftScanService struct {
	shiftscanv1.UnimplementedShiftScanServiceServer
	analyzer *pipeline.Analyzer
	reports  repository.ShiftReportRepository
	stores   repository.StoreRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewShiftScanService(
	analyzer *pipeline.Analyzer,
	reports repository.ShiftReportRepository,
	stores repository.StoreRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ShiftScanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShiftScanService{
		analyzer: analyzer,
		reports:  reports,
		stores:   stores,
		exporter: exporter,
		logger:   logger,
	}
}

// parseStoreID validates the store_id request field.
func parseStoreID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("store_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("store_id must be a UUID")
	}
	return id, nil
}

// parseDateWindow parses optional YYYY-MM-DD bounds.
func parseDateWindow(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fd := strings.TrimSpace(fromRaw); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		from = &t
	}
	if td := strings.TrimSpace(toRaw); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, nil
}

func toPBReport(r *entity.ShiftReport) *shiftscanv1.ShiftReport {
	extractJSON, _ := json.Marshal(r)
	return &shiftscanv1.ShiftReport{
		Id:                   r.ID.String(),
		StoreId:              r.StoreID.String(),
		ReceiptHash:          r.ReceiptHash,
		ReportDate:           r.ReportDate.Format("2006-01-02"),
		ExtractionMethod:     r.ExtractionMethod,
		ExtractionConfidence: r.ExtractionConfidence,
		UploadCount:          int32(r.UploadCount),
		LastUploadReason:     string(r.LastUploadReason),
		ExtractJson:          string(extractJSON),
		CreatedAt:            r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toPBStore(s *entity.Store) *shiftscanv1.Store {
	return &shiftscanv1.Store{
		Id:        s.ID.String(),
		Name:      s.Name,
		Timezone:  s.Timezone,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
