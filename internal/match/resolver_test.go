package match

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/entity"
)

type fakeOrderRepo struct {
	byPhone   *entity.Order
	byName    *entity.Order
	byAddress *entity.Order
	err       error

	phoneArg   string
	nameArg    string
	cityArg    string
	addressArg string
	calls      []string

	markShippedOK   bool
	markShippedArgs []string
}

func (f *fakeOrderRepo) FindEligibleByPhone(_ context.Context, phoneDigits string) (*entity.Order, error) {
	f.calls = append(f.calls, "phone")
	f.phoneArg = phoneDigits
	return f.byPhone, f.err
}

func (f *fakeOrderRepo) FindEligibleByName(_ context.Context, nameToken, city string) (*entity.Order, error) {
	f.calls = append(f.calls, "name")
	f.nameArg = nameToken
	f.cityArg = city
	return f.byName, f.err
}

func (f *fakeOrderRepo) FindEligibleByAddress(_ context.Context, addressPrefix string) (*entity.Order, error) {
	f.calls = append(f.calls, "address")
	f.addressArg = addressPrefix
	return f.byAddress, f.err
}

func (f *fakeOrderRepo) MarkShipped(_ context.Context, orderNumber, trackingNumber, carrier string) (bool, error) {
	f.markShippedArgs = []string{orderNumber, trackingNumber, carrier}
	return f.markShippedOK, f.err
}

func (f *fakeOrderRepo) ListShipped(context.Context, *time.Time, *time.Time) ([]*entity.Order, error) {
	return nil, f.err
}

func order(number string) *entity.Order {
	return &entity.Order{
		ID:              uuid.New(),
		OrderNumber:     number,
		PhoneNumber:     "3001234567",
		CustomerName:    "Juan Pérez",
		ShippingAddress: "Calle 45 # 12-34",
	}
}

func record() *entity.ShipmentRecord {
	return &entity.ShipmentRecord{
		TrackingNumber:  "SV123456789",
		CustomerPhone:   "573001234567",
		CustomerName:    "Juan Pérez",
		ShippingAddress: "Calle 45 # 12-34 Apto 501 Torre Norte",
		City:            "Bogotá",
	}
}

func TestResolvePhoneTierWins(t *testing.T) {
	repo := &fakeOrderRepo{byPhone: order("ORD-1"), byName: order("ORD-2")}
	r := NewResolver(repo, nil)

	m, err := r.Resolve(context.Background(), record())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "ORD-1", m.OrderNumber)
	assert.Equal(t, entity.MatchByPhone, m.MatchedBy)
	assert.Equal(t, ConfidencePhone, m.Confidence)
	// The phone key is the last ten digits, country code stripped.
	assert.Equal(t, "3001234567", repo.phoneArg)
	// Lower tiers were never consulted.
	assert.Equal(t, []string{"phone"}, repo.calls)
}

func TestResolveFallsThroughToName(t *testing.T) {
	repo := &fakeOrderRepo{byName: order("ORD-2")}
	r := NewResolver(repo, nil)

	m, err := r.Resolve(context.Background(), record())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, entity.MatchByName, m.MatchedBy)
	assert.Equal(t, ConfidenceName, m.Confidence)
	// First name token, lowercased, plus the city filter.
	assert.Equal(t, "juan", repo.nameArg)
	assert.Equal(t, "bogotá", repo.cityArg)
	assert.Equal(t, []string{"phone", "name"}, repo.calls)
}

func TestResolveFallsThroughToAddress(t *testing.T) {
	repo := &fakeOrderRepo{byAddress: order("ORD-3")}
	r := NewResolver(repo, nil)

	m, err := r.Resolve(context.Background(), record())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, entity.MatchByAddress, m.MatchedBy)
	assert.Equal(t, ConfidenceAddress, m.Confidence)
	assert.Equal(t, 30, len([]rune(repo.addressArg)))
	assert.Equal(t, []string{"phone", "name", "address"}, repo.calls)
}

func TestResolveSkipsTiersWithoutInput(t *testing.T) {
	repo := &fakeOrderRepo{byAddress: order("ORD-3")}
	r := NewResolver(repo, nil)

	rec := record()
	rec.CustomerPhone = ""
	rec.CustomerName = ""

	m, err := r.Resolve(context.Background(), rec)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, []string{"address"}, repo.calls)
}

func TestResolveNoMatch(t *testing.T) {
	repo := &fakeOrderRepo{}
	r := NewResolver(repo, nil)

	m, err := r.Resolve(context.Background(), record())
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.Equal(t, []string{"phone", "name", "address"}, repo.calls)
}

func TestResolveStoreUnavailable(t *testing.T) {
	repo := &fakeOrderRepo{err: common.WrapError(common.ErrStoreUnavailable, "find order by phone")}
	r := NewResolver(repo, nil)

	m, err := r.Resolve(context.Background(), record())
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Nil(t, m)
}

func TestResolveNilRecord(t *testing.T) {
	r := NewResolver(&fakeOrderRepo{}, nil)
	_, err := r.Resolve(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestMarkShippedSoftFailure(t *testing.T) {
	repo := &fakeOrderRepo{markShippedOK: false}
	r := NewResolver(repo, nil)

	updated, err := r.MarkShipped(context.Background(), "ORD-GONE", "SV123456789", "Servientrega")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, []string{"ORD-GONE", "SV123456789", "Servientrega"}, repo.markShippedArgs)
}
