package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dfrestrepo/guia-notify/constants"
	"github.com/dfrestrepo/guia-notify/gen/ent"
	"github.com/dfrestrepo/guia-notify/gen/ent/enttest"
)

// openTestClient backs the ent client with an in-memory SQLite database so
// repository queries run against a real SQL engine.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	// One private in-memory database per test; the name keeps parallel
	// connections inside a test on the same instance.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", url.QueryEscape(t.Name()))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(drv)))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedOrder(t *testing.T, client *ent.Client, number, phone, name, address, status string) *ent.Order {
	t.Helper()
	row, err := client.Order.Create().
		SetOrderNumber(number).
		SetPhoneNumber(phone).
		SetCustomerName(name).
		SetShippingAddress(address).
		SetProcessingStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestFindEligibleByPhone(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	seedOrder(t, client, "ORD-1", "573001234567", "Juan Pérez", "Calle 45 # 12-34", string(constants.StatusConfirmed))

	got, err := repo.FindEligibleByPhone(ctx, "3001234567")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ORD-1", got.OrderNumber)

	// Unknown phone is a clean miss, not an error.
	got, err = repo.FindEligibleByPhone(ctx, "3009999999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindEligibleExcludesIneligibleStatuses(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	seedOrder(t, client, "ORD-PENDING", "573001234567", "Juan Pérez", "Calle 45", string(constants.StatusPending))
	seedOrder(t, client, "ORD-CANCELLED", "573001234567", "Juan Pérez", "Calle 45", string(constants.StatusCancelled))
	seedOrder(t, client, "ORD-DELIVERED", "573001234567", "Juan Pérez", "Calle 45", string(constants.StatusDelivered))

	got, err := repo.FindEligibleByPhone(ctx, "3001234567")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindEligibleExcludesAlreadyTracked(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	row := seedOrder(t, client, "ORD-1", "573001234567", "Juan Pérez", "Calle 45", string(constants.StatusConfirmed))
	_, err := row.Update().SetTrackingNumber("SV111").Save(ctx)
	require.NoError(t, err)

	got, err := repo.FindEligibleByPhone(ctx, "3001234567")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindEligibleByNameWithCityFilter(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	row := seedOrder(t, client, "ORD-BOG", "573001111111", "Juan Pérez", "Calle 45", string(constants.StatusProcessing))
	_, err := row.Update().SetCity("Bogotá").Save(ctx)
	require.NoError(t, err)
	seedOrder(t, client, "ORD-OTHER", "573002222222", "Juana Díaz", "Carrera 9", string(constants.StatusConfirmed))

	got, err := repo.FindEligibleByName(ctx, "juan", "bogotá")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ORD-BOG", got.OrderNumber)
}

func TestFindEligibleByAddress(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	seedOrder(t, client, "ORD-1", "573001234567", "Juan Pérez", "Calle 45 # 12-34 Apto 501", string(constants.StatusConfirmed))

	got, err := repo.FindEligibleByAddress(ctx, "calle 45 # 12-34")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ORD-1", got.OrderNumber)
}

func TestMarkShipped(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	seedOrder(t, client, "ORD-1", "573001234567", "Juan Pérez", "Calle 45", string(constants.StatusConfirmed))

	updated, err := repo.MarkShipped(ctx, "ORD-1", "SV123456789", "Servientrega")
	require.NoError(t, err)
	assert.True(t, updated)

	// The order is no longer eligible once tracked.
	got, err := repo.FindEligibleByPhone(ctx, "3001234567")
	require.NoError(t, err)
	assert.Nil(t, got)

	// A vanished order number reports false, not an error.
	updated, err = repo.MarkShipped(ctx, "ORD-GONE", "SV000", "TCC")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestListShippedWindow(t *testing.T) {
	client := openTestClient(t)
	repo := NewOrderRepository(client, nil)
	ctx := context.Background()

	seedOrder(t, client, "ORD-1", "573001111111", "Juan Pérez", "Calle 45", string(constants.StatusConfirmed))
	seedOrder(t, client, "ORD-2", "573002222222", "Ana María", "Carrera 9", string(constants.StatusConfirmed))

	_, err := repo.MarkShipped(ctx, "ORD-1", "SV111", "Servientrega")
	require.NoError(t, err)
	_, err = repo.MarkShipped(ctx, "ORD-2", "SV222", "Envia")
	require.NoError(t, err)

	all, err := repo.ListShipped(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	future := time.Now().UTC().Add(24 * time.Hour)
	none, err := repo.ListShipped(ctx, &future, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
