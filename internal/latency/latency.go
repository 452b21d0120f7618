// Package latency stands in for request/response round trips that the
// booking flow does not actually make.  Callers wait on a Simulator so
// tests can swap the fixed delay for an immediate one.
package latency

import (
	"context"
	"time"
)

// Simulator blocks for a simulated round trip or until ctx is done.
type Simulator interface {
	Wait(ctx context.Context) error
}

// Fixed waits for the same interval on every call.
type Fixed time.Duration

// Wait implements Simulator.
func (f Fixed) Wait(ctx context.Context) error {
	if f <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(f))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None returns immediately.
var None Simulator = Fixed(0)
