// internal/poller/runner.go
package poller

import (
	"context"
	"sync"
	"time"
)

// Run polls once immediately, then on every tick, and hands each result to handle.
// Single-flight: a tick that arrives while a cycle is still running is skipped.
// Returns after ctx is done and the in-flight cycle has finished.
func (p *Poller) Run(ctx context.Context, handle Handler) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	p.tick(ctx, &wg, handle)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx, &wg, handle)
		}
	}
}

// Skipped returns how many ticks were dropped because a cycle was in flight.
func (p *Poller) Skipped() int64 {
	return p.skipped.Load()
}

func (p *Poller) tick(ctx context.Context, wg *sync.WaitGroup, handle Handler) {
	if !p.inflight.CompareAndSwap(false, true) {
		p.skipped.Add(1)
		p.log.Warn("previous cycle still running, tick skipped")
		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer p.inflight.Store(false)

		handle(ctx, p.PollOnce(ctx))
	}()
}
