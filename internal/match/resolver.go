// Package match resolves extracted shipment records to pending orders.
package match

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/entity"
	"github.com/dfrestrepo/guia-notify/internal/repository"
)

// Confidence ladder per matching tier. Phone is the least ambiguous
// identifier in a market with widespread OCR noise on names; address sits
// last because the 30-char truncation trades precision for tolerance of
// multi-line OCR wrapping.
const (
	ConfidencePhone   = 100
	ConfidenceName    = 80
	ConfidenceAddress = 60
)

const addressPrefixLen = 30

// Resolver matches a ShipmentRecord to at most one eligible order using a
// strict phone > name > address tier priority. Each tier is only attempted
// if the previous one was skipped (missing input field) or returned no hit.
type Resolver struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

func NewResolver(orders repository.OrderRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{orders: orders, logger: logger}
}

// Resolve returns the best match for the record, or (nil, nil) when no tier
// yields a hit. Store reachability problems surface as an error wrapping
// common.ErrStoreUnavailable so callers can answer retry-later instead of
// treating the document as unmatchable.
func (r *Resolver) Resolve(ctx context.Context, rec *entity.ShipmentRecord) (*entity.CustomerMatch, error) {
	if rec == nil {
		return nil, common.ErrInvalidInput
	}

	if rec.CustomerPhone != "" {
		digits := lastDigits(rec.CustomerPhone, 10)
		order, err := r.orders.FindEligibleByPhone(ctx, digits)
		if err != nil {
			return nil, err
		}
		if order != nil {
			r.logger.Info("match.found",
				"tier", string(entity.MatchByPhone),
				"order_number", order.OrderNumber,
				"phone", common.MaskPhone(digits),
			)
			return newMatch(order, ConfidencePhone, entity.MatchByPhone), nil
		}
	}

	if rec.CustomerName != "" {
		// First token only: OCR mangles surnames far more often than the
		// given name, and the store match is a loose substring anyway.
		token := firstToken(strings.ToLower(rec.CustomerName))
		city := strings.ToLower(rec.City)
		order, err := r.orders.FindEligibleByName(ctx, token, city)
		if err != nil {
			return nil, err
		}
		if order != nil {
			r.logger.Info("match.found",
				"tier", string(entity.MatchByName),
				"order_number", order.OrderNumber,
				"name_token", token,
			)
			return newMatch(order, ConfidenceName, entity.MatchByName), nil
		}
	}

	if rec.ShippingAddress != "" {
		prefix := strings.ToLower(truncateRunes(rec.ShippingAddress, addressPrefixLen))
		order, err := r.orders.FindEligibleByAddress(ctx, prefix)
		if err != nil {
			return nil, err
		}
		if order != nil {
			r.logger.Info("match.found",
				"tier", string(entity.MatchByAddress),
				"order_number", order.OrderNumber,
			)
			return newMatch(order, ConfidenceAddress, entity.MatchByAddress), nil
		}
	}

	r.logger.Info("match.none",
		"tracking_number", rec.TrackingNumber,
		"has_phone", rec.CustomerPhone != "",
		"has_name", rec.CustomerName != "",
		"has_address", rec.ShippingAddress != "",
	)
	return nil, nil
}

// MarkShipped writes the tracking assignment back onto the matched order.
// A vanished order number is a soft failure: logged, reported false, never
// raised, since the customer was already notified by then.
func (r *Resolver) MarkShipped(ctx context.Context, orderNumber, trackingNumber, carrier string) (bool, error) {
	updated, err := r.orders.MarkShipped(ctx, orderNumber, trackingNumber, carrier)
	if err != nil {
		return false, err
	}
	if !updated {
		r.logger.Warn("match.mark_shipped.missing_order", "order_number", orderNumber, "tracking_number", trackingNumber)
	}
	return updated, nil
}

func newMatch(order *entity.Order, confidence int, tier entity.MatchTier) *entity.CustomerMatch {
	return &entity.CustomerMatch{
		OrderID:         order.ID.String(),
		OrderNumber:     order.OrderNumber,
		Phone:           order.PhoneNumber,
		CustomerName:    order.CustomerName,
		ShippingAddress: order.ShippingAddress,
		Confidence:      confidence,
		MatchedBy:       tier,
	}
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
