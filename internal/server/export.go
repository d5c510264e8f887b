package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	v1 "github.com/dfrestrepo/guia-notify/gen/proto/notifier/v1"
	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportOrders(ctx context.Context, req *v1.ExportOrdersRequest) (*v1.ExportOrdersResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	format := strings.ToLower(strings.TrimSpace(req.GetFormat()))
	if format == "" {
		format = "xlsx"
	}

	var content []byte
	var err error
	switch format {
	case "xlsx":
		content, err = s.svc.ExportShippedXLSX(ctx, fromPtr, toPtr)
	case "csv":
		content, err = s.svc.ExportShippedCSV(ctx, fromPtr, toPtr)
	default:
		return nil, common.InvalidArgumentErrorf("unsupported format %q", format)
	}
	if err != nil {
		s.logger.Error("server.export.failed", "format", format, "error", err)
		return nil, common.InternalError("export failed")
	}

	return &v1.ExportOrdersResponse{Content: content, Format: format}, nil
}
