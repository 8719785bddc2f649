package server

import (
	"context"
	"strings"

	shiftscanv1 "github.com/forecourt-labs/shiftscan/gen/proto/shiftscan/v1"
	"github.com/forecourt-labs/shiftscan/internal/common"
)

func (s *ShiftScanService) CreateStore(ctx context.Context, req *shiftscanv1.CreateStoreRequest) (*shiftscanv1.CreateStoreResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	timezone := strings.TrimSpace(req.GetTimezone())
	if timezone == "" {
		timezone = "UTC"
	}

	st, err := s.stores.Create(ctx, name, timezone)
	if err != nil {
		s.logger.Error("failed to create store", "name", name, "error", err)
		return nil, common.InternalErrorf("create store: %v", err)
	}
	return &shiftscanv1.CreateStoreResponse{Store: toPBStore(st)}, nil
}

func (s *ShiftScanService) ListStores(ctx context.Context, _ *shiftscanv1.ListStoresRequest) (*shiftscanv1.ListStoresResponse, error) {
	sts, err := s.stores.List(ctx)
	if err != nil {
		s.logger.Error("failed to list stores", "error", err)
		return nil, common.InternalErrorf("list stores: %v", err)
	}
	out := make([]*shiftscanv1.Store, 0, len(sts))
	for _, st := range sts {
		out = append(out, toPBStore(st))
	}
	return &shiftscanv1.ListStoresResponse{Stores: out}, nil
}
