// Package headless drives a scenario without a terminal UI. It owns the
// frame loop, decides which frames update the simulation, feeds the scripted
// input signal and hands each update's state and draws to a Reporter.
package headless

import (
	"context"
	"time"
)

// ticker paces frames. The unpaced form never blocks.
type ticker struct {
	t *time.Ticker
}

// newTicker returns a ticker firing tickRate times per second, or an
// unpaced one when realtime is false.
func newTicker(tickRate int, realtime bool) *ticker {
	if !realtime || tickRate <= 0 {
		return &ticker{}
	}
	return &ticker{t: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// wait blocks until the next frame is due or ctx is done.
func (k *ticker) wait(ctx context.Context) error {
	if k.t == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-k.t.C:
		return nil
	}
}

func (k *ticker) stop() {
	if k.t != nil {
		k.t.Stop()
	}
}
