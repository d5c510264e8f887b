package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/dfrestrepo/guia-notify/gen/proto/notifier/v1"
	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/export"
	"github.com/dfrestrepo/guia-notify/internal/extract"
	"github.com/dfrestrepo/guia-notify/internal/ingest"
	"github.com/dfrestrepo/guia-notify/internal/match"
	"github.com/dfrestrepo/guia-notify/internal/notify"
	"github.com/dfrestrepo/guia-notify/internal/ocr"
	"github.com/dfrestrepo/guia-notify/internal/pipeline"
	repo "github.com/dfrestrepo/guia-notify/internal/repository"
	svc "github.com/dfrestrepo/guia-notify/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	ordersRepo := repo.NewOrderRepository(entc, logger)

	source := ocr.NewSource(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)
	extractor := extract.NewExtractor(logger)
	resolver := match.NewResolver(ordersRepo, logger)
	sender := notify.NewClient(notify.Config{
		BaseURL: cfg.Gateway.BaseURL,
		APIKey:  cfg.Gateway.APIKey,
		Timeout: cfg.Gateway.Timeout,
		Retry: notify.RetryPolicy{
			MaxRetries:        cfg.Gateway.MaxRetries,
			InitialDelay:      cfg.Gateway.InitialDelay,
			MaxDelay:          cfg.Gateway.MaxDelay,
			BackoffMultiplier: cfg.Gateway.BackoffMultiplier,
		},
		FailureThreshold: cfg.Gateway.FailureThreshold,
		ResetTimeout:     cfg.Gateway.ResetTimeout,
	}, logger)

	processor := pipeline.NewProcessor(logger, source, extractor, resolver, sender)

	queue := ingest.NewProcessorQueue(processor, logger,
		ingest.WithWorkers(cfg.Ingest.Workers),
		ingest.WithQueueSize(cfg.Ingest.QueueSize),
		ingest.WithProcessTimeout(3*time.Minute),
	)

	// Folder watching is optional: without roots the daemon serves gRPC only.
	if len(cfg.Ingest.WatchRoots) > 0 {
		events, errs, err := ingest.StartWatcher(ctx, logger, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchRoots,
			InitialScan: true,
			Debounce:    cfg.Ingest.Debounce,
		})
		if err != nil {
			logger.Error("failed to start watcher", "roots", cfg.Ingest.WatchRoots, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range events {
				_ = queue.Enqueue(ctx, ingest.Job{Path: path, SubmittedAt: time.Now()})
			}
		}()
		go func() {
			for err := range errs {
				logger.Error("watcher runtime error", "error", err)
			}
		}()
		logger.Info("watching for guide documents", "roots", cfg.Ingest.WatchRoots)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.APIKeyInterceptor(cfg.Server.APIKey, logger)),
	)

	v1.RegisterNotifierServiceServer(grpcServer, svc.NewNotifierServer(processor, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(export.NewService(ordersRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("guia-notify listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
