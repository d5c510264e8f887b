package pipeline

import (
	"context"

	"github.com/dfrestrepo/guia-notify/internal/entity"
	"github.com/dfrestrepo/guia-notify/internal/notify"
	"github.com/dfrestrepo/guia-notify/internal/ocr"
)

// TextSource supplies raw document text for a file path.
type TextSource interface {
	Text(ctx context.Context, path string) (ocr.Result, error)
}

// GuideSender delivers a guide notification and reports plain success.
type GuideSender interface {
	SendGuide(ctx context.Context, phone string, rec *entity.ShipmentRecord, documentPath string) bool
	CheckHealth(ctx context.Context) notify.HealthStatus
}

// Outcome is the terminal state of one document's processing run.
type Outcome string

const (
	OutcomeDelivered      Outcome = "delivered"
	OutcomeWrongFormat    Outcome = "wrong_format"    // alternate chat format, route elsewhere
	OutcomeNoData         Outcome = "no_data"         // parseable but missing required fields
	OutcomeNoMatch        Outcome = "no_match"        // no eligible order found
	OutcomeDeliveryFailed Outcome = "delivery_failed" // retries exhausted or circuit open
)

// Result is what the thin route layer renders back to the uploader.
type Result struct {
	Outcome        Outcome `json:"outcome"`
	Delivered      bool    `json:"delivered"`
	TrackingNumber string  `json:"tracking_number,omitempty"`
	Carrier        string  `json:"carrier,omitempty"`
	CustomerName   string  `json:"customer_name,omitempty"`
	MatchedBy      string  `json:"matched_by,omitempty"`
	Confidence     int     `json:"confidence,omitempty"`
}
