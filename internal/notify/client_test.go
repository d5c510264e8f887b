package notify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/guia-notify/constants"
	"github.com/dfrestrepo/guia-notify/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecord() *entity.ShipmentRecord {
	return &entity.ShipmentRecord{
		TrackingNumber: "SV123456789",
		Carrier:        constants.Servientrega,
		CustomerName:   "Juan Pérez",
		CustomerPhone:  "573001234567",
		City:           "Bogotá",
	}
}

func testDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guia.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 contenido"), 0o644))
	return path
}

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		Retry: RetryPolicy{
			MaxRetries:        2,
			InitialDelay:      time.Millisecond,
			MaxDelay:          time.Millisecond,
			BackoffMultiplier: 2.0,
		},
		FailureThreshold: 5,
		ResetTimeout:     time.Minute,
	}, discardLogger())
}

func TestSendGuideSuccess(t *testing.T) {
	var textCalls, mediaCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/messages/text", func(w http.ResponseWriter, r *http.Request) {
		textCalls.Add(1)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/messages/media", func(w http.ResponseWriter, r *http.Request) {
		mediaCalls.Add(1)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "573001234567", r.FormValue("phone"))
		_, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "guia.pdf", hdr.Filename)
		w.WriteHeader(http.StatusOK)
	})

	c := testClient(t, mux)
	ok := c.SendGuide(context.Background(), "3001234567", testRecord(), testDocument(t))

	assert.True(t, ok)
	assert.Equal(t, int32(1), textCalls.Load())
	assert.Equal(t, int32(1), mediaCalls.Load())
	assert.Equal(t, CircuitClosed, c.breaker.State())
	assert.Equal(t, 0, c.breaker.Failures())
}

func TestSendGuideRetriesThenExhausts(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	ok := c.SendGuide(context.Background(), "3001234567", testRecord(), testDocument(t))

	assert.False(t, ok)
	// Three attempts for the text operation; media is never started.
	assert.Equal(t, int32(3), calls.Load())
	// Retry exhaustion is a single failure toward the breaker, not three.
	assert.Equal(t, 1, c.breaker.Failures())
	assert.Equal(t, CircuitClosed, c.breaker.State())
}

func TestSendGuideFailsFastOnClientError(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))

	ok := c.SendGuide(context.Background(), "3001234567", testRecord(), testDocument(t))

	assert.False(t, ok)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, c.breaker.Failures())
}

func TestSendGuideRejectedWhileOpen(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	// Force the breaker open.
	for i := 0; i < 5; i++ {
		c.breaker.RecordFailure()
	}
	require.Equal(t, CircuitOpen, c.breaker.State())

	ok := c.SendGuide(context.Background(), "3001234567", testRecord(), testDocument(t))

	assert.False(t, ok)
	// Zero network calls while OPEN, and the rejection is not a failure.
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 5, c.breaker.Failures())
}

func TestSendGuideMissingDocument(t *testing.T) {
	var textCalls, mediaCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/messages/text", func(w http.ResponseWriter, _ *http.Request) {
		textCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/messages/media", func(w http.ResponseWriter, _ *http.Request) {
		mediaCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	c := testClient(t, mux)
	ok := c.SendGuide(context.Background(), "3001234567", testRecord(), filepath.Join(t.TempDir(), "missing.pdf"))

	// An unreadable file is a local fault: the media op fails fast without
	// retries and counts one failure.
	assert.False(t, ok)
	assert.Equal(t, int32(1), textCalls.Load())
	assert.Equal(t, int32(0), mediaCalls.Load())
	assert.Equal(t, 1, c.breaker.Failures())
}

func TestCheckHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		c := testClient(t, mux)

		h := c.CheckHealth(context.Background())
		assert.True(t, h.Healthy)
		assert.Equal(t, "ok", h.Message)
		assert.Equal(t, string(CircuitClosed), h.CircuitState)
	})

	t.Run("unhealthy does not touch breaker", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		h := c.CheckHealth(context.Background())
		assert.False(t, h.Healthy)
		assert.Equal(t, 0, c.breaker.Failures())
	})
}

func TestFormatMessage(t *testing.T) {
	msg := formatMessage(testRecord())
	assert.Contains(t, msg, "¡Hola Juan Pérez!")
	assert.Contains(t, msg, "Transportadora: Servientrega")
	assert.Contains(t, msg, "Número de guía: SV123456789")
	assert.Contains(t, msg, "Destino: Bogotá")

	rec := testRecord()
	rec.CustomerName = ""
	rec.City = ""
	msg = formatMessage(rec)
	assert.Contains(t, msg, "¡Hola!")
	assert.NotContains(t, msg, "Destino:")
}
