package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/entity"
	"github.com/dfrestrepo/guia-notify/internal/extract"
	"github.com/dfrestrepo/guia-notify/internal/match"
	"github.com/dfrestrepo/guia-notify/internal/notify"
	"github.com/dfrestrepo/guia-notify/internal/ocr"
)

const guideText = `SERVIENTREGA
Guía: SV123456789
Destinatario: Juan Pérez
Teléfono: 3001234567
Ciudad: Bogotá`

const chatText = `+57 300 123 4567
Hola, buenos días ✓
10:45 a. m.`

type fakeSource struct {
	text string
	err  error
}

func (f *fakeSource) Text(context.Context, string) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{Text: f.text, Method: "pdf-text", Pages: 1}, nil
}

type fakeSender struct {
	ok        bool
	sentPhone string
	calls     int
	health    notify.HealthStatus
}

func (f *fakeSender) SendGuide(_ context.Context, phone string, _ *entity.ShipmentRecord, _ string) bool {
	f.calls++
	f.sentPhone = phone
	return f.ok
}

func (f *fakeSender) CheckHealth(context.Context) notify.HealthStatus {
	return f.health
}

type fakeOrderRepo struct {
	order *entity.Order
	err   error

	markShippedCalls int
	markShippedOK    bool
	markShippedErr   error
}

func (f *fakeOrderRepo) FindEligibleByPhone(context.Context, string) (*entity.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderRepo) FindEligibleByName(context.Context, string, string) (*entity.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderRepo) FindEligibleByAddress(context.Context, string) (*entity.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderRepo) MarkShipped(context.Context, string, string, string) (bool, error) {
	f.markShippedCalls++
	return f.markShippedOK, f.markShippedErr
}

func (f *fakeOrderRepo) ListShipped(context.Context, *time.Time, *time.Time) ([]*entity.Order, error) {
	return nil, nil
}

func eligibleOrder() *entity.Order {
	return &entity.Order{
		ID:              uuid.New(),
		OrderNumber:     "ORD-100",
		PhoneNumber:     "3001234567",
		CustomerName:    "Juan Pérez",
		ShippingAddress: "Calle 45 # 12-34",
	}
}

func tempDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guia.pdf")
	require.NoError(t, os.WriteFile(path, []byte("contenido"), 0o644))
	return path
}

func newTestProcessor(source TextSource, repo *fakeOrderRepo, sender GuideSender) *Processor {
	return NewProcessor(nil,
		source,
		extract.NewExtractor(nil),
		match.NewResolver(repo, nil),
		sender,
	)
}

func TestProcessGuideDelivered(t *testing.T) {
	repo := &fakeOrderRepo{order: eligibleOrder(), markShippedOK: true}
	sender := &fakeSender{ok: true}
	p := newTestProcessor(&fakeSource{text: guideText}, repo, sender)

	path := tempDoc(t)
	res, err := p.ProcessGuide(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.True(t, res.Delivered)
	assert.Equal(t, "SV123456789", res.TrackingNumber)
	assert.Equal(t, "Servientrega", res.Carrier)
	assert.Equal(t, "phone", res.MatchedBy)
	assert.Equal(t, 100, res.Confidence)

	// Extracted phone is preferred for delivery.
	assert.Equal(t, "573001234567", sender.sentPhone)
	assert.Equal(t, 1, repo.markShippedCalls)

	// The source document is gone whatever the outcome.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessGuideWrongFormat(t *testing.T) {
	repo := &fakeOrderRepo{}
	sender := &fakeSender{ok: true}
	p := newTestProcessor(&fakeSource{text: chatText}, repo, sender)

	path := tempDoc(t)
	res, err := p.ProcessGuide(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeWrongFormat, res.Outcome)
	assert.Zero(t, sender.calls)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessGuideNoData(t *testing.T) {
	p := newTestProcessor(&fakeSource{text: "Factura sin datos de envío"}, &fakeOrderRepo{}, &fakeSender{})

	res, err := p.ProcessGuide(context.Background(), tempDoc(t), "")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoData, res.Outcome)
}

func TestProcessGuideOCRFailureIsNoData(t *testing.T) {
	p := newTestProcessor(&fakeSource{err: errors.New("pdftotext: exit 1")}, &fakeOrderRepo{}, &fakeSender{})

	path := tempDoc(t)
	res, err := p.ProcessGuide(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoData, res.Outcome)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessGuideNoMatch(t *testing.T) {
	sender := &fakeSender{ok: true}
	p := newTestProcessor(&fakeSource{text: guideText}, &fakeOrderRepo{}, sender)

	res, err := p.ProcessGuide(context.Background(), tempDoc(t), "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoMatch, res.Outcome)
	assert.Equal(t, "SV123456789", res.TrackingNumber)
	assert.Zero(t, sender.calls)
}

func TestProcessGuideDeliveryFailed(t *testing.T) {
	repo := &fakeOrderRepo{order: eligibleOrder()}
	sender := &fakeSender{ok: false}
	p := newTestProcessor(&fakeSource{text: guideText}, repo, sender)

	res, err := p.ProcessGuide(context.Background(), tempDoc(t), "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeDeliveryFailed, res.Outcome)
	assert.False(t, res.Delivered)
	// Nothing is marked shipped when the customer was never notified.
	assert.Zero(t, repo.markShippedCalls)
}

func TestProcessGuideStoreUnavailable(t *testing.T) {
	repo := &fakeOrderRepo{err: common.WrapError(common.ErrStoreUnavailable, "find order by phone")}
	p := newTestProcessor(&fakeSource{text: guideText}, repo, &fakeSender{})

	_, err := p.ProcessGuide(context.Background(), tempDoc(t), "")
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestProcessGuideMarkShippedSoftFailure(t *testing.T) {
	repo := &fakeOrderRepo{order: eligibleOrder(), markShippedErr: common.WrapError(common.ErrStoreUnavailable, "mark shipped")}
	sender := &fakeSender{ok: true}
	p := newTestProcessor(&fakeSource{text: guideText}, repo, sender)

	res, err := p.ProcessGuide(context.Background(), tempDoc(t), "")
	require.NoError(t, err)

	// The customer was already notified, so the run still counts delivered.
	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.True(t, res.Delivered)
}

func TestProcessGuidePhoneHintFillsGap(t *testing.T) {
	// A guide with a name but no phone; the upload hint supplies it.
	text := "Coordinadora\nGuía: 1234567890\nDestinatario: Ana María"
	repo := &fakeOrderRepo{order: eligibleOrder()}
	sender := &fakeSender{ok: true}
	p := newTestProcessor(&fakeSource{text: text}, repo, sender)

	res, err := p.ProcessGuide(context.Background(), tempDoc(t), "310 555 1234")
	require.NoError(t, err)

	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.Equal(t, "573105551234", sender.sentPhone)
}

func TestGatewayHealthPassthrough(t *testing.T) {
	sender := &fakeSender{health: notify.HealthStatus{Healthy: true, Message: "ok", CircuitState: "CLOSED"}}
	p := newTestProcessor(&fakeSource{text: guideText}, &fakeOrderRepo{}, sender)

	h := p.GatewayHealth(context.Background())
	assert.True(t, h.Healthy)
	assert.Equal(t, "CLOSED", h.CircuitState)
}
