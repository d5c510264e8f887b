package server

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	v1 "github.com/dfrestrepo/guia-notify/gen/proto/notifier/v1"
	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/pipeline"
)

type NotifierServer struct {
	v1.UnimplementedNotifierServiceServer
	proc   *pipeline.Processor
	logger *slog.Logger
}

func NewNotifierServer(proc *pipeline.Processor, logger *slog.Logger) *NotifierServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotifierServer{proc: proc, logger: logger}
}

// ProcessGuide implements v1.NotifierServiceServer
func (s *NotifierServer) ProcessGuide(ctx context.Context, req *v1.ProcessGuideRequest) (*v1.ProcessGuideResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("server.process_guide.missing_path")
		return nil, common.InvalidArgumentError("path is required")
	}

	res, err := s.proc.ProcessGuide(ctx, path, strings.TrimSpace(req.GetPhoneHint()))
	if err != nil {
		s.logger.Error("server.process_guide.failed", "path", path, "error", err)
		if errors.Is(err, common.ErrStoreUnavailable) {
			return nil, common.UnavailableError("order store unavailable, retry later")
		}
		return nil, common.InternalError("guide processing failed")
	}

	return &v1.ProcessGuideResponse{
		Outcome:        string(res.Outcome),
		Delivered:      res.Delivered,
		TrackingNumber: res.TrackingNumber,
		Carrier:        res.Carrier,
		CustomerName:   res.CustomerName,
		MatchedBy:      res.MatchedBy,
		Confidence:     int32(res.Confidence),
	}, nil
}

// GatewayHealth implements v1.NotifierServiceServer
func (s *NotifierServer) GatewayHealth(ctx context.Context, _ *v1.GatewayHealthRequest) (*v1.GatewayHealthResponse, error) {
	h := s.proc.GatewayHealth(ctx)
	return &v1.GatewayHealthResponse{
		Healthy:        h.Healthy,
		Message:        h.Message,
		CircuitState:   h.CircuitState,
		ResponseTimeMs: h.ResponseTimeMs,
	}, nil
}
