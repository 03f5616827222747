// internal/script/runner.go
package script

import (
	"context"
	"time"
)

// Run starts the refresh loop and emits one Update per cycle on out.
// One goroutine per module. Cycles run inline in the loop, so they
// never overlap. The first cycle runs immediately.
func (a *Adapter) Run(ctx context.Context, out chan<- Update) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	select {
	case <-ctx.Done():
		return
	case out <- a.RefreshOnce(ctx):
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A click-triggered suppression consumes exactly one tick.
			if a.suppress.Swap(false) {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- a.RefreshOnce(ctx):
			}
		}
	}
}
