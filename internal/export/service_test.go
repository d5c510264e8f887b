package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dfrestrepo/guia-notify/internal/entity"
)

type fakeOrderRepo struct {
	shipped []*entity.Order
	from    *time.Time
	to      *time.Time
}

func (f *fakeOrderRepo) FindEligibleByPhone(context.Context, string) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindEligibleByName(context.Context, string, string) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindEligibleByAddress(context.Context, string) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) MarkShipped(context.Context, string, string, string) (bool, error) {
	return false, nil
}

func (f *fakeOrderRepo) ListShipped(_ context.Context, from, to *time.Time) ([]*entity.Order, error) {
	f.from = from
	f.to = to
	return f.shipped, nil
}

func shippedOrder(number, tracking, carrier string) *entity.Order {
	city := "Bogotá"
	shippedAt := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	return &entity.Order{
		ID:              uuid.New(),
		OrderNumber:     number,
		PhoneNumber:     "573001234567",
		CustomerName:    "Juan Pérez",
		ShippingAddress: "Calle 45 # 12-34",
		City:            &city,
		TrackingNumber:  &tracking,
		Carrier:         &carrier,
		ShippingStatus:  "shipped",
		ShippedAt:       &shippedAt,
	}
}

func TestExportShippedCSV(t *testing.T) {
	repo := &fakeOrderRepo{shipped: []*entity.Order{
		shippedOrder("ORD-1", "SV111", "Servientrega"),
		shippedOrder("ORD-2", "SV222", "Envia"),
	}}
	svc := NewService(repo, nil)

	out, err := svc.ExportShippedCSV(context.Background(), nil, nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, reportHeaders(), rows[0])
	assert.Equal(t, "ORD-1", rows[1][0])
	assert.Equal(t, "SV111", rows[1][5])
	assert.Equal(t, "Servientrega", rows[1][6])
	assert.Equal(t, "2026-08-20", rows[1][7])
	assert.Equal(t, "ORD-2", rows[2][0])
}

func TestExportShippedXLSX(t *testing.T) {
	repo := &fakeOrderRepo{shipped: []*entity.Order{
		shippedOrder("ORD-1", "SV111", "Servientrega"),
	}}
	svc := NewService(repo, nil)

	out, err := svc.ExportShippedXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Despachos")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Order Number", rows[0][0])
	assert.Equal(t, "ORD-1", rows[1][0])
	assert.Equal(t, "SV111", rows[1][5])
}

func TestExportWindowNormalization(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2026, 8, 1, 17, 45, 0, 0, time.UTC)
	_, err := svc.ExportShippedCSV(context.Background(), &from, nil)
	require.NoError(t, err)

	// from is floored to midnight; to defaults to the end of today.
	require.NotNil(t, repo.from)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *repo.from)
	require.NotNil(t, repo.to)
	assert.True(t, repo.to.After(time.Now().UTC().Add(-24*time.Hour)))
}
