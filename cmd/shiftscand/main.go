package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	shiftscanv1 "github.com/forecourt-labs/shiftscan/gen/proto/shiftscan/v1"
	"github.com/forecourt-labs/shiftscan/internal/common"
	"github.com/forecourt-labs/shiftscan/internal/export"
	"github.com/forecourt-labs/shiftscan/internal/llm/openai"
	"github.com/forecourt-labs/shiftscan/internal/ocr"
	"github.com/forecourt-labs/shiftscan/internal/pipeline"
	"github.com/forecourt-labs/shiftscan/internal/repository"
	"github.com/forecourt-labs/shiftscan/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	completer, err := openai.NewClient(openai.FromAppConfig(cfg.LLM), logger)
	if err != nil {
		logger.Error("building completion client", "error", err)
		os.Exit(2)
	}
	recognizer := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		WorkDir:       cfg.OCR.WorkDir,
	}, logger)
	analyzer := pipeline.NewAnalyzer(recognizer, completer, logger)

	reportsRepo := repository.NewShiftReportRepository(entc, logger)
	storesRepo := repository.NewStoreRepository(entc, logger)
	exporter := export.NewService(reportsRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewShiftScanService(analyzer, reportsRepo, storesRepo, exporter, logger)
	shiftscanv1.RegisterShiftScanServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
