package notify

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"
)

// RetryPolicy is the per-operation retry discipline: up to MaxRetries
// additional attempts after the first, with exponentially growing delays.
type RetryPolicy struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// DelayFor returns the pause before retry attempt n (n >= 1):
// min(initial * multiplier^(n-1), max).
func (p RetryPolicy) DelayFor(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	d := float64(p.InitialDelay) * math.Pow(p.BackoffMultiplier, float64(attempt-1))
	if capped := float64(p.MaxDelay); d > capped {
		d = capped
	}
	return time.Duration(d)
}

// run executes fn with the policy applied. It stops early on a
// non-retryable error. The sleep between attempts suspends the calling
// flow; once started the loop runs to success or exhaustion (individual
// HTTP calls still honor ctx).
func (p RetryPolicy) run(ctx context.Context, logger *slog.Logger, op string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := p.DelayFor(attempt)
			logger.Info("notify.retry",
				"op", op,
				"attempt", attempt+1,
				"max_attempts", p.MaxRetries+1,
				"delay_ms", delay.Milliseconds(),
			)
			time.Sleep(delay)
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		var gw *GatewayError
		if !errors.As(lastErr, &gw) || !gw.Retryable() {
			logger.Warn("notify.retry.fail_fast", "op", op, "error", lastErr)
			return lastErr
		}
		logger.Warn("notify.attempt_failed",
			"op", op,
			"attempt", attempt+1,
			"kind", gw.Kind.String(),
			"status", gw.Status,
		)
	}
	logger.Error("notify.retries_exhausted", "op", op, "attempts", p.MaxRetries+1, "error", lastErr)
	return lastErr
}
