package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/extract"
	"github.com/dfrestrepo/guia-notify/internal/match"
	"github.com/dfrestrepo/guia-notify/internal/notify"
)

// Processor coordinates one document end to end: text extraction, customer
// resolution, delivery, tracking write-back, file cleanup.
type Processor struct {
	logger    *slog.Logger
	source    TextSource
	extractor *extract.Extractor
	resolver  *match.Resolver
	sender    GuideSender
}

func NewProcessor(
	logger *slog.Logger,
	source TextSource,
	extractor *extract.Extractor,
	resolver *match.Resolver,
	sender GuideSender,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		source:    source,
		extractor: extractor,
		resolver:  resolver,
		sender:    sender,
	}
}

// ProcessGuide runs the full pipeline for one document. The source file is
// removed whatever the outcome; a customer is notified at most once per
// successful send. The returned error is non-nil only for retry-later
// conditions (order store unreachable), never for ordinary failures.
func (p *Processor) ProcessGuide(ctx context.Context, path, phoneHint string) (Result, error) {
	reqID := uuid.New().String()
	defer p.cleanup(path, reqID)

	text := ""
	src, err := p.source.Text(ctx, path)
	if err != nil {
		// An unreadable document classifies as unknown downstream.
		p.logger.Warn("pipeline.text_source_failed", "req_id", reqID, "path", path, "error", err)
	} else {
		text = src.Text
		p.logger.Debug("pipeline.text_ok",
			"req_id", reqID, "method", src.Method, "pages", src.Pages, "bytes", len(text),
		)
	}

	rec, err := p.extractor.Extract(text)
	if errors.Is(err, common.ErrWrongDocumentFormat) {
		p.logger.Info("pipeline.wrong_format", "req_id", reqID, "path", path)
		return Result{Outcome: OutcomeWrongFormat}, nil
	}
	if err != nil {
		return Result{}, common.WrapError(err, "extract guide")
	}
	if rec == nil {
		p.logger.Info("pipeline.no_data", "req_id", reqID, "path", path)
		return Result{Outcome: OutcomeNoData}, nil
	}

	// The upload form's phone hint only fills a gap; an extracted phone
	// always wins.
	if rec.CustomerPhone == "" && phoneHint != "" {
		rec.CustomerPhone = extract.NormalizePhone(phoneHint)
		p.logger.Debug("pipeline.phone_hint_used", "req_id", reqID, "phone", common.MaskPhone(rec.CustomerPhone))
	}

	m, err := p.resolver.Resolve(ctx, rec)
	if err != nil {
		return Result{}, err
	}
	if m == nil {
		return Result{
			Outcome:        OutcomeNoMatch,
			TrackingNumber: rec.TrackingNumber,
			Carrier:        string(rec.Carrier),
		}, nil
	}

	phone := rec.CustomerPhone
	if phone == "" {
		phone = m.Phone
	}

	if !p.sender.SendGuide(ctx, phone, rec, path) {
		return Result{
			Outcome:        OutcomeDeliveryFailed,
			TrackingNumber: rec.TrackingNumber,
			Carrier:        string(rec.Carrier),
			CustomerName:   m.CustomerName,
			MatchedBy:      string(m.MatchedBy),
			Confidence:     m.Confidence,
		}, nil
	}

	// The customer is already notified; a write-back problem must not fail
	// the run or it would double-send on retry.
	if _, err := p.resolver.MarkShipped(ctx, m.OrderNumber, rec.TrackingNumber, string(rec.Carrier)); err != nil {
		p.logger.Error("pipeline.mark_shipped_failed",
			"req_id", reqID, "order_number", m.OrderNumber, "error", err,
		)
	}

	p.logger.Info("pipeline.delivered",
		"req_id", reqID,
		"order_number", m.OrderNumber,
		"tracking_number", rec.TrackingNumber,
		"carrier", string(rec.Carrier),
		"matched_by", string(m.MatchedBy),
		"confidence", m.Confidence,
	)
	return Result{
		Outcome:        OutcomeDelivered,
		Delivered:      true,
		TrackingNumber: rec.TrackingNumber,
		Carrier:        string(rec.Carrier),
		CustomerName:   m.CustomerName,
		MatchedBy:      string(m.MatchedBy),
		Confidence:     m.Confidence,
	}, nil
}

// GatewayHealth exposes the delivery client's probe to the server layer.
func (p *Processor) GatewayHealth(ctx context.Context) notify.HealthStatus {
	return p.sender.CheckHealth(ctx)
}

func (p *Processor) cleanup(path, reqID string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("pipeline.cleanup_failed", "req_id", reqID, "path", path, "error", err)
		return
	}
	p.logger.Debug("pipeline.cleanup_ok", "req_id", reqID, "path", path)
}
