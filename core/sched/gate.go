package sched

import (
	"context"
	"errors"
	"sync"
)

// ErrRunInFlight reports that a trigger was skipped because another run
// of the same job is still executing.
var ErrRunInFlight = errors.New("job run already in flight")

// Gate serializes the runs of one job across its triggers. The scheduler
// tick, the webhook handler and the CLI all reach a job through its
// service, so a Gate held by the service guarantees at most one in-flight
// run per job. Overlapping triggers are skipped, not queued.
type Gate struct {
	mu sync.Mutex
}

// Run executes fn unless a run already holds the gate, in which case it
// returns ErrRunInFlight without blocking.
func (g *Gate) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if !g.mu.TryLock() {
		return ErrRunInFlight
	}
	defer g.mu.Unlock()
	return fn(ctx)
}
