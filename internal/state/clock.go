package state

import "sync/atomic"

// Revision is a monotonic mutation counter. The store ticks it on every
// change so observers can tell whether a snapshot is stale.
type Revision struct {
	counter atomic.Uint64
}

// Tick increments the counter and returns the new value.
func (r *Revision) Tick() uint64 {
	return r.counter.Add(1)
}

// Current returns the last value handed out by Tick.
func (r *Revision) Current() uint64 {
	return r.counter.Load()
}
