// Package notify delivers guide notifications to the WhatsApp messaging
// gateway under a retry-with-backoff and circuit-breaker discipline.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/entity"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	Retry            RetryPolicy
	FailureThreshold int
	ResetTimeout     time.Duration
}

// HealthStatus is the result of one gateway probe.
type HealthStatus struct {
	Healthy        bool   `json:"healthy"`
	Message        string `json:"message"`
	CircuitState   string `json:"circuit_state"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

// Client sends two-part guide notifications (text, then the document as
// media) against a shared circuit breaker. Normal delivery failures are
// reported as false, never as an error; only configuration faults reach
// the caller as errors at construction time.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *Breaker
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retry.BackoffMultiplier < 1 {
		cfg.Retry.BackoffMultiplier = 2.0
	}
	if cfg.Retry.InitialDelay <= 0 {
		cfg.Retry.InitialDelay = time.Second
	}
	if cfg.Retry.MaxDelay <= 0 {
		cfg.Retry.MaxDelay = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    NewBreaker(cfg.FailureThreshold, cfg.ResetTimeout, logger),
		logger:     logger,
	}
}

// SendGuide notifies one customer: a formatted text message, then the guide
// document with a caption. Text and media are independently retried
// operations against the same breaker; both must succeed.
func (c *Client) SendGuide(ctx context.Context, phone string, rec *entity.ShipmentRecord, documentPath string) bool {
	phone = normalizePhone(phone)
	masked := common.MaskPhone(phone)
	start := time.Now()

	c.logger.Info("notify.send.start",
		"phone", masked,
		"tracking_number", rec.TrackingNumber,
		"carrier", string(rec.Carrier),
	)

	if !c.deliver(ctx, "send-text", masked, func(ctx context.Context) error {
		return c.postText(ctx, phone, formatMessage(rec))
	}) {
		return false
	}

	if !c.deliver(ctx, "send-media", masked, func(ctx context.Context) error {
		return c.postMedia(ctx, phone, formatCaption(rec), documentPath)
	}) {
		return false
	}

	c.logger.Info("notify.send.ok",
		"phone", masked,
		"tracking_number", rec.TrackingNumber,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return true
}

// deliver runs one gateway operation through the breaker and retry policy.
// Retry exhaustion and non-retryable errors each count as a single failure
// toward the breaker; a breaker rejection counts as neither.
func (c *Client) deliver(ctx context.Context, op, maskedPhone string, fn func(context.Context) error) bool {
	if !c.breaker.Allow() {
		c.logger.Warn("notify.circuit_open",
			"op", op,
			"phone", maskedPhone,
			"state", string(c.breaker.State()),
		)
		return false
	}

	if err := c.cfg.Retry.run(ctx, c.logger, op, fn); err != nil {
		c.breaker.RecordFailure()
		c.logger.Error("notify.op_failed",
			"op", op,
			"phone", maskedPhone,
			"state", string(c.breaker.State()),
			"failures", c.breaker.Failures(),
			"error", err,
		)
		return false
	}

	c.breaker.RecordSuccess()
	return true
}

func (c *Client) postText(ctx context.Context, phone, message string) error {
	const op = "send-text"

	body, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
	})
	if err != nil {
		return appErr(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/messages/text", bytes.NewReader(body))
	if err != nil {
		return appErr(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	return c.do(op, req)
}

func (c *Client) postMedia(ctx context.Context, phone, caption, documentPath string) error {
	const op = "send-media"

	f, err := os.Open(documentPath)
	if err != nil {
		return appErr(op, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			c.logger.Warn("notify.media_close_error", "error", cerr)
		}
	}()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("phone", phone); err != nil {
		return appErr(op, err)
	}
	if err := w.WriteField("caption", caption); err != nil {
		return appErr(op, err)
	}
	part, err := w.CreateFormFile("file", filepath.Base(documentPath))
	if err != nil {
		return appErr(op, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return appErr(op, err)
	}
	if err := w.Close(); err != nil {
		return appErr(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/messages/media", &buf)
	if err != nil {
		return appErr(op, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	return c.do(op, req)
}

func (c *Client) do(op string, req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return netErr(op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return httpErr(op, resp.StatusCode)
	}
	return nil
}

// CheckHealth probes the gateway once. Diagnostic only: the probe's
// outcome never touches the breaker's failure accounting.
func (c *Client) CheckHealth(ctx context.Context) HealthStatus {
	start := time.Now()
	status := HealthStatus{CircuitState: string(c.breaker.State())}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		status.Message = fmt.Sprintf("build health request: %v", err)
		return status
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	status.ResponseTimeMs = time.Since(start).Milliseconds()
	if err != nil {
		status.Message = fmt.Sprintf("gateway unreachable: %v", err)
		return status
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		status.Message = fmt.Sprintf("gateway status %d", resp.StatusCode)
		return status
	}
	status.Healthy = true
	status.Message = "ok"
	return status
}

// normalizePhone prepends the 57 country code onto bare 10-digit mobiles.
// Numbers already carrying the prefix, or of any other shape, pass through
// unchanged, so the function is idempotent.
func normalizePhone(phone string) string {
	if len(phone) == 10 && isDigits(phone) {
		return "57" + phone
	}
	return phone
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func formatMessage(rec *entity.ShipmentRecord) string {
	var b strings.Builder
	if rec.CustomerName != "" {
		fmt.Fprintf(&b, "¡Hola %s! ", rec.CustomerName)
	} else {
		b.WriteString("¡Hola! ")
	}
	b.WriteString("Tu pedido ya fue despachado. 📦\n")
	fmt.Fprintf(&b, "Transportadora: %s\n", rec.Carrier)
	fmt.Fprintf(&b, "Número de guía: %s\n", rec.TrackingNumber)
	if rec.City != "" {
		fmt.Fprintf(&b, "Destino: %s\n", rec.City)
	}
	b.WriteString("Con este número puedes rastrear tu envío en la página de la transportadora.")
	return b.String()
}

func formatCaption(rec *entity.ShipmentRecord) string {
	return fmt.Sprintf("Guía de envío %s - %s", rec.TrackingNumber, rec.Carrier)
}
