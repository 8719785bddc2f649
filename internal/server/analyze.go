package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	shiftscanv1 "github.com/forecourt-labs/shiftscan/gen/proto/shiftscan/v1"
	"github.com/forecourt-labs/shiftscan/internal/common"
)

func (s *ShiftScanService) AnalyzeShiftReport(ctx context.Context, req *shiftscanv1.AnalyzeShiftReportRequest) (*shiftscanv1.AnalyzeShiftReportResponse, error) {
	storeID, err := parseStoreID(req.GetStoreId())
	if err != nil {
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	if exists, _ := s.stores.Exists(ctx, storeID); !exists {
		s.logger.Error("store not found for analyze", "store_id", storeID)
		return nil, common.InvalidArgumentError("store not found")
	}

	requestID := uuid.New().String()
	ctx = common.WithRequestID(ctx, requestID)
	ctx = common.WithStoreID(ctx, storeID.String())

	s.logger.Info("analyze.started", "req_id", requestID, "store_id", storeID, "mime_type", req.GetMimeType(), "bytes", len(req.GetContent()))
	result, err := s.analyzer.Analyze(ctx, req.GetContent(), req.GetMimeType())
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("analyze.failed", "store_id", storeID, "error", err)
		return nil, common.InternalErrorf("analyze: %v", err)
	}

	saved, err := s.reports.Save(ctx, storeID, result.Extract)
	if err != nil {
		s.logger.Error("analyze.save.failed", "store_id", storeID, "error", err)
		return nil, common.InternalErrorf("save report: %v", err)
	}
	s.logger.Info("analyze.completed",
		"store_id", storeID,
		"report_id", saved.ID,
		"status", saved.Status,
		"method", result.Method,
		"confidence", result.Extract.ExtractionConfidence,
		"quality_score", result.Quality.Score,
	)

	extractJSON, _ := json.Marshal(result.Extract)
	return &shiftscanv1.AnalyzeShiftReportResponse{
		ReportId:             saved.ID.String(),
		SaveStatus:           string(saved.Status),
		UploadCount:          int32(saved.UploadCount),
		ExtractionMethod:     string(result.Method),
		ExtractionConfidence: result.Extract.ExtractionConfidence,
		QualityScore:         int32(result.Quality.Score),
		ExtractJson:          string(extractJSON),
	}, nil
}
