package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dfrestrepo/guia-notify/constants"
	"github.com/dfrestrepo/guia-notify/gen/ent"
	entorder "github.com/dfrestrepo/guia-notify/gen/ent/order"
	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/entity"
)

// OrderRepository is the order-store surface the resolver and pipeline
// depend on. Eligible means processing_status in {confirmed, processing}
// and no tracking number assigned yet; every Find method applies that
// predicate so an already-shipped order is never matched again.
//
// Find methods return (nil, nil) when nothing matches. A reachability
// problem surfaces as an error wrapping common.ErrStoreUnavailable.
type OrderRepository interface {
	FindEligibleByPhone(ctx context.Context, phoneDigits string) (*entity.Order, error)
	FindEligibleByName(ctx context.Context, nameToken, city string) (*entity.Order, error)
	FindEligibleByAddress(ctx context.Context, addressPrefix string) (*entity.Order, error)
	MarkShipped(ctx context.Context, orderNumber, trackingNumber, carrier string) (bool, error)
	ListShipped(ctx context.Context, from, to *time.Time) ([]*entity.Order, error)
}

type orderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderRepository(client *ent.Client, logger *slog.Logger) OrderRepository {
	return &orderRepository{
		client: client,
		logger: logger,
	}
}

// eligibleQuery restricts a query to orders a guide may still match,
// newest first.
func (r *orderRepository) eligibleQuery() *ent.OrderQuery {
	return r.client.Order.Query().
		Where(
			entorder.ProcessingStatusIn(constants.EligibleStatuses()...),
			entorder.TrackingNumberIsNil(),
		).
		Order(ent.Desc(entorder.FieldCreatedAt))
}

func (r *orderRepository) FindEligibleByPhone(ctx context.Context, phoneDigits string) (*entity.Order, error) {
	row, err := r.eligibleQuery().
		Where(
			entorder.Or(
				entorder.PhoneNumberContains(phoneDigits),
				entorder.ShippingPhoneContains(phoneDigits),
			),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("order lookup by phone failed", "error", err)
		return nil, storeUnavailable("find order by phone", err)
	}
	return toOrder(row), nil
}

func (r *orderRepository) FindEligibleByName(ctx context.Context, nameToken, city string) (*entity.Order, error) {
	q := r.eligibleQuery().Where(entorder.CustomerNameContainsFold(nameToken))
	if city != "" {
		q = q.Where(entorder.CityContainsFold(city))
	}
	row, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("order lookup by name failed", "error", err)
		return nil, storeUnavailable("find order by name", err)
	}
	return toOrder(row), nil
}

func (r *orderRepository) FindEligibleByAddress(ctx context.Context, addressPrefix string) (*entity.Order, error) {
	row, err := r.eligibleQuery().
		Where(entorder.ShippingAddressContainsFold(addressPrefix)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("order lookup by address failed", "error", err)
		return nil, storeUnavailable("find order by address", err)
	}
	return toOrder(row), nil
}

// MarkShipped assigns the tracking number and carrier to exactly the order
// with orderNumber and stamps it shipped. Returns whether a row was
// actually updated; false means the order number no longer exists, which
// callers treat as a soft failure.
func (r *orderRepository) MarkShipped(ctx context.Context, orderNumber, trackingNumber, carrier string) (bool, error) {
	n, err := r.client.Order.Update().
		Where(entorder.OrderNumber(orderNumber)).
		SetTrackingNumber(trackingNumber).
		SetCarrier(carrier).
		SetShippingStatus(string(constants.ShippingShipped)).
		SetShippedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("mark shipped failed", "order_number", orderNumber, "error", err)
		return false, storeUnavailable("mark shipped", err)
	}
	return n > 0, nil
}

func (r *orderRepository) ListShipped(ctx context.Context, from, to *time.Time) ([]*entity.Order, error) {
	q := r.client.Order.Query().
		Where(entorder.ShippingStatusEQ(string(constants.ShippingShipped)))
	if from != nil {
		q = q.Where(entorder.ShippedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entorder.ShippedAtLTE(*to))
	}
	rows, err := q.Order(ent.Asc(entorder.FieldShippedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list shipped orders", "error", err)
		return nil, storeUnavailable("list shipped orders", err)
	}

	result := make([]*entity.Order, len(rows))
	for i, row := range rows {
		result[i] = toOrder(row)
	}
	return result, nil
}

func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, common.ErrStoreUnavailable, err)
}

func toOrder(e *ent.Order) *entity.Order {
	return &entity.Order{
		ID:               e.ID,
		OrderNumber:      e.OrderNumber,
		PhoneNumber:      e.PhoneNumber,
		ShippingPhone:    e.ShippingPhone,
		CustomerName:     e.CustomerName,
		ShippingAddress:  e.ShippingAddress,
		City:             e.City,
		ProcessingStatus: e.ProcessingStatus,
		TrackingNumber:   e.TrackingNumber,
		Carrier:          e.Carrier,
		ShippingStatus:   e.ShippingStatus,
		ShippedAt:        e.ShippedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
