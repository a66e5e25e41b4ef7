package planner

import (
	"context"
	"sync"
	"time"

	"voyago/pkg/maps"
)

// Debouncer coalesces keystrokes on one input field. A fetch fires only
// after the input has settled for the configured delay, and a response is
// delivered only if no newer input has been issued since — responses for
// superseded inputs are dropped, so out-of-order completions cannot
// overwrite fresher results.
type Debouncer struct {
	settle time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewDebouncer(settle time.Duration) *Debouncer {
	return &Debouncer{settle: settle}
}

// Input registers a keystroke. Any pending fetch is cancelled and the settle
// timer restarts.
func (d *Debouncer) Input(ctx context.Context, input string, fetch func(context.Context, string) []maps.Prediction, deliver func([]maps.Prediction)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	token := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.settle, func() {
		results := fetch(ctx, input)

		d.mu.Lock()
		current := d.seq == token
		d.mu.Unlock()

		if current {
			deliver(results)
		}
	})
}

// Cancel drops any pending fetch without issuing a new one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
