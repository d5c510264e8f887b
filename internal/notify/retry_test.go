package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		MaxDelay:          10 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

func TestDelayForSchedule(t *testing.T) {
	p := RetryPolicy{
		MaxRetries:        5,
		InitialDelay:      time.Second,
		MaxDelay:          10 * time.Second,
		BackoffMultiplier: 2.0,
	}

	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second, // capped, would be 16s
	}
	for i, w := range want {
		assert.Equal(t, w, p.DelayFor(i+1), "attempt %d", i+1)
	}
	assert.Equal(t, time.Duration(0), p.DelayFor(0))
}

func TestRunRetriesUntilSuccess(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffMultiplier: 2.0}

	calls := 0
	err := p.run(context.Background(), discardLogger(), "send-text", func(context.Context) error {
		calls++
		if calls < 3 {
			return httpErr("send-text", 503)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunExhaustsRetries(t *testing.T) {
	p := RetryPolicy{MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffMultiplier: 2.0}

	calls := 0
	err := p.run(context.Background(), discardLogger(), "send-text", func(context.Context) error {
		calls++
		return netErr("send-text", context.DeadlineExceeded)
	})
	require.Error(t, err)
	// First attempt plus MaxRetries.
	assert.Equal(t, 3, calls)
}

func TestRunFailsFastOnNonRetryable(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffMultiplier: 2.0}

	tests := []struct {
		name string
		err  error
	}{
		{"client error", httpErr("send-text", 400)},
		{"app error", appErr("send-text", context.Canceled)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := p.run(context.Background(), discardLogger(), "send-text", func(context.Context) error {
				calls++
				return tt.err
			})
			require.Error(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestGatewayErrorRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  *GatewayError
		want bool
	}{
		{"network", netErr("op", context.DeadlineExceeded), true},
		{"server 500", httpErr("op", 500), true},
		{"server 503", httpErr("op", 503), true},
		{"rate limited 429", httpErr("op", 429), true},
		{"timeout 408", httpErr("op", 408), true},
		{"bad request 400", httpErr("op", 400), false},
		{"unauthorized 401", httpErr("op", 401), false},
		{"not found 404", httpErr("op", 404), false},
		{"app", appErr("op", context.Canceled), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Retryable())
		})
	}
}
