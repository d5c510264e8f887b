package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/guia-notify/internal/entity"
	"github.com/dfrestrepo/guia-notify/internal/extract"
	"github.com/dfrestrepo/guia-notify/internal/match"
	"github.com/dfrestrepo/guia-notify/internal/notify"
	"github.com/dfrestrepo/guia-notify/internal/ocr"
	"github.com/dfrestrepo/guia-notify/internal/pipeline"
)

type stubSource struct{}

func (stubSource) Text(context.Context, string) (ocr.Result, error) {
	return ocr.Result{
		Text:   "SERVIENTREGA\nGuía: SV123456789\nDestinatario: Juan Pérez\nTeléfono: 3001234567",
		Method: "pdf-text",
		Pages:  1,
	}, nil
}

type stubOrderRepo struct{}

func (stubOrderRepo) FindEligibleByPhone(context.Context, string) (*entity.Order, error) {
	return &entity.Order{
		ID:           uuid.New(),
		OrderNumber:  "ORD-1",
		PhoneNumber:  "3001234567",
		CustomerName: "Juan Pérez",
	}, nil
}

func (stubOrderRepo) FindEligibleByName(context.Context, string, string) (*entity.Order, error) {
	return nil, nil
}

func (stubOrderRepo) FindEligibleByAddress(context.Context, string) (*entity.Order, error) {
	return nil, nil
}

func (stubOrderRepo) MarkShipped(context.Context, string, string, string) (bool, error) {
	return true, nil
}

func (stubOrderRepo) ListShipped(context.Context, *time.Time, *time.Time) ([]*entity.Order, error) {
	return nil, nil
}

type countingSender struct {
	sends atomic.Int32
}

func (c *countingSender) SendGuide(context.Context, string, *entity.ShipmentRecord, string) bool {
	c.sends.Add(1)
	return true
}

func (c *countingSender) CheckHealth(context.Context) notify.HealthStatus {
	return notify.HealthStatus{Healthy: true}
}

func TestQueueProcessesAndDrains(t *testing.T) {
	sender := &countingSender{}
	proc := pipeline.NewProcessor(nil,
		stubSource{},
		extract.NewExtractor(nil),
		match.NewResolver(stubOrderRepo{}, nil),
		sender,
	)
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	paths := make([]string, 3)
	for i := range paths {
		paths[i] = filepath.Join(t.TempDir(), "guia.pdf")
		require.NoError(t, os.WriteFile(paths[i], []byte("%PDF"), 0o644))
		require.NoError(t, q.Enqueue(context.Background(), Job{Path: paths[i], SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, int32(3), sender.sends.Load())
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "expected %s to be removed", p)
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	proc := pipeline.NewProcessor(nil,
		stubSource{},
		extract.NewExtractor(nil),
		match.NewResolver(stubOrderRepo{}, nil),
		&countingSender{},
	)
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// Enqueue after shutdown is a logged no-op, never a panic.
	assert.NoError(t, q.Enqueue(context.Background(), Job{Path: "/tmp/x.pdf"}))
}
