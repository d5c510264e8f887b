package notify

import (
	"log/slog"
	"time"
)

// CircuitState is the breaker's position.
type CircuitState string

const (
	CircuitClosed   CircuitState = "CLOSED"
	CircuitOpen     CircuitState = "OPEN"
	CircuitHalfOpen CircuitState = "HALF_OPEN"
)

// BreakerEvent drives a circuit state transition.
type BreakerEvent int

const (
	// EventSuccess: a delivery operation succeeded.
	EventSuccess BreakerEvent = iota
	// EventFailure: an operation failed but the counter is below threshold.
	EventFailure
	// EventThresholdReached: an operation failed and the counter hit the
	// configured threshold.
	EventThresholdReached
	// EventResetElapsed: the reset timeout passed while OPEN and a send is
	// being attempted; the breaker lets one trial request through.
	EventResetElapsed
)

// Transition is the breaker state machine as a pure function so each rule
// is independently testable:
//
//	CLOSED    --threshold reached--> OPEN
//	OPEN      --reset elapsed------> HALF_OPEN
//	HALF_OPEN --success------------> CLOSED
//	HALF_OPEN --failure------------> OPEN
//	CLOSED    --success------------> CLOSED (counter reset by caller)
func Transition(s CircuitState, e BreakerEvent) CircuitState {
	switch s {
	case CircuitClosed:
		if e == EventThresholdReached {
			return CircuitOpen
		}
		return CircuitClosed
	case CircuitOpen:
		if e == EventResetElapsed {
			return CircuitHalfOpen
		}
		return CircuitOpen
	case CircuitHalfOpen:
		switch e {
		case EventSuccess:
			return CircuitClosed
		case EventFailure, EventThresholdReached:
			return CircuitOpen
		}
		return CircuitHalfOpen
	default:
		return s
	}
}

// Breaker owns the process-wide circuit state for one gateway.
//
// Deliberately unlocked: the deployment model is one process whose
// concurrent senders may race on the counter; the failure tolerance is
// approximate by design and resets to CLOSED on restart.
type Breaker struct {
	threshold    int
	resetTimeout time.Duration

	state       CircuitState
	failures    int
	lastFailure time.Time

	now    func() time.Time
	logger *slog.Logger
}

func NewBreaker(threshold int, resetTimeout time.Duration, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = 5
	}
	if resetTimeout <= 0 {
		resetTimeout = 60 * time.Second
	}
	return &Breaker{
		threshold:    threshold,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
		logger:       logger,
	}
}

// Allow reports whether a send may proceed. While OPEN it rejects without
// any network call until the reset timeout has elapsed since the last
// recorded failure, then lazily moves to HALF_OPEN and admits one trial.
// A rejection counts neither as success nor as failure.
func (b *Breaker) Allow() bool {
	if b.state != CircuitOpen {
		return true
	}
	if b.now().Sub(b.lastFailure) < b.resetTimeout {
		return false
	}
	b.setState(Transition(b.state, EventResetElapsed))
	return true
}

// RecordSuccess resets the failure counter and closes the circuit.
func (b *Breaker) RecordSuccess() {
	b.failures = 0
	b.setState(Transition(b.state, EventSuccess))
}

// RecordFailure bumps the counter and opens the circuit when the threshold
// is reached, or immediately when the HALF_OPEN trial fails.
func (b *Breaker) RecordFailure() {
	b.failures++
	b.lastFailure = b.now()

	ev := EventFailure
	if b.failures >= b.threshold {
		ev = EventThresholdReached
	}
	b.setState(Transition(b.state, ev))
}

// State returns the current circuit position.
func (b *Breaker) State() CircuitState {
	return b.state
}

// Failures returns the current failure counter.
func (b *Breaker) Failures() int {
	return b.failures
}

func (b *Breaker) setState(next CircuitState) {
	if next == b.state {
		return
	}
	b.logger.Warn("notify.breaker.transition",
		"from", string(b.state),
		"to", string(next),
		"failures", b.failures,
	)
	b.state = next
}
