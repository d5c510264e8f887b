package notify

import (
	"fmt"
)

// Kind classifies a gateway failure. The retry policy switches on this
// instead of sniffing error-message substrings.
type Kind int

const (
	// KindNetwork is a connection-level fault: refused, reset, timeout, DNS.
	KindNetwork Kind = iota
	// KindHTTP is a non-2xx response from the gateway.
	KindHTTP
	// KindApp is a local fault (unreadable file, bad request build) that no
	// amount of retrying will fix.
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	default:
		return "app"
	}
}

// GatewayError is a tagged delivery failure.
type GatewayError struct {
	Kind   Kind
	Status int // HTTP status, only for KindHTTP
	Op     string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("%s: gateway status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt can reasonably succeed:
// network-level faults and 5xx/429/408 responses. Any other 4xx is a
// request we built wrong; it fails fast on the first attempt.
func (e *GatewayError) Retryable() bool {
	switch e.Kind {
	case KindNetwork:
		return true
	case KindHTTP:
		return e.Status >= 500 || e.Status == 429 || e.Status == 408
	default:
		return false
	}
}

func netErr(op string, err error) *GatewayError {
	return &GatewayError{Kind: KindNetwork, Op: op, Err: err}
}

func httpErr(op string, status int) *GatewayError {
	return &GatewayError{Kind: KindHTTP, Op: op, Status: status}
}

func appErr(op string, err error) *GatewayError {
	return &GatewayError{Kind: KindApp, Op: op, Err: err}
}
