package search

import (
	"sync/atomic"
	"time"
)

// Params bundles the per-search configuration and cooperative
// cancellation state described in spec §3/§5: a target depth, a wall
// clock deadline, and a stop flag the driver may set asynchronously.
// The search polls it roughly every 2048 nodes via communicate.
type Params struct {
	Depth    int
	Deadline time.Time
	Infinite bool

	stopped int32
	quit    int32
}

// Stop asynchronously requests the current search to unwind.
func (p *Params) Stop() { atomic.StoreInt32(&p.stopped, 1) }

// Quit asynchronously requests the engine to shut down entirely.
func (p *Params) Quit() { atomic.StoreInt32(&p.quit, 1) }

// Stopped reports whether a stop has been requested.
func (p *Params) Stopped() bool { return atomic.LoadInt32(&p.stopped) != 0 }

// Quitting reports whether a quit has been requested.
func (p *Params) Quitting() bool { return atomic.LoadInt32(&p.quit) != 0 }

// communicate is polled every 2048 nodes by both negamax and quiescence
// (spec §4.3 step 4, §4.4.2 preamble step 6). It reads the deadline
// non-blockingly and may set stopped.
func (p *Params) communicate() {
	if p.Stopped() {
		return
	}
	if !p.Infinite && !p.Deadline.IsZero() && time.Now().After(p.Deadline) {
		p.Stop()
	}
}
