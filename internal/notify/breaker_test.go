package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		state CircuitState
		event BreakerEvent
		want  CircuitState
	}{
		{"closed stays closed on success", CircuitClosed, EventSuccess, CircuitClosed},
		{"closed stays closed below threshold", CircuitClosed, EventFailure, CircuitClosed},
		{"closed opens at threshold", CircuitClosed, EventThresholdReached, CircuitOpen},
		{"open ignores success", CircuitOpen, EventSuccess, CircuitOpen},
		{"open ignores failure", CircuitOpen, EventFailure, CircuitOpen},
		{"open half-opens after reset", CircuitOpen, EventResetElapsed, CircuitHalfOpen},
		{"half-open closes on success", CircuitHalfOpen, EventSuccess, CircuitClosed},
		{"half-open reopens on failure", CircuitHalfOpen, EventFailure, CircuitOpen},
		{"half-open reopens at threshold", CircuitHalfOpen, EventThresholdReached, CircuitOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.state, tt.event))
		})
	}
}

func TestBreakerOpensAtThreshold(t *testing.T) {
	b := NewBreaker(3, time.Minute, nil)

	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, CircuitClosed, b.State())
	assert.True(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, CircuitOpen, b.State())
	assert.Equal(t, 3, b.Failures())
	assert.False(t, b.Allow())
}

func TestBreakerSuccessResetsCounter(t *testing.T) {
	b := NewBreaker(3, time.Minute, nil)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	assert.Equal(t, 0, b.Failures())

	// Two fresh failures must not reach the threshold again.
	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, CircuitClosed, b.State())
}

func TestBreakerHalfOpenAfterResetTimeout(t *testing.T) {
	now := time.Unix(1000, 0)
	b := NewBreaker(1, time.Minute, nil)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	assert.Equal(t, CircuitOpen, b.State())
	assert.False(t, b.Allow())

	// Just before the reset timeout: still rejecting.
	now = now.Add(59 * time.Second)
	assert.False(t, b.Allow())

	// After the timeout: exactly one trial admitted, state HALF_OPEN.
	now = now.Add(2 * time.Second)
	assert.True(t, b.Allow())
	assert.Equal(t, CircuitHalfOpen, b.State())
}

func TestBreakerHalfOpenTrialOutcome(t *testing.T) {
	t.Run("success closes", func(t *testing.T) {
		b := halfOpenBreaker(t)
		b.RecordSuccess()
		assert.Equal(t, CircuitClosed, b.State())
		assert.Equal(t, 0, b.Failures())
	})

	t.Run("failure reopens", func(t *testing.T) {
		b := halfOpenBreaker(t)
		b.RecordFailure()
		assert.Equal(t, CircuitOpen, b.State())
		assert.False(t, b.Allow())
	})
}

func halfOpenBreaker(t *testing.T) *Breaker {
	t.Helper()
	now := time.Unix(1000, 0)
	b := NewBreaker(1, time.Minute, nil)
	b.now = func() time.Time { return now }
	b.RecordFailure()
	now = now.Add(2 * time.Minute)
	if !b.Allow() {
		t.Fatal("expected trial to be admitted")
	}
	return b
}
