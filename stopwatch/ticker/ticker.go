// Package ticker generates the fixed-period pulse that drives the clock.
//
// The pulse handler runs to completion on the ticker goroutine before the
// next period is considered, so firings never nest. Periods that elapse
// while the handler is still running are dropped by time.Ticker rather than
// queued.
package ticker

import (
	"context"
	"time"
)

// DefaultPeriod is the pulse period: 20 pulses make one second.
const DefaultPeriod = 50 * time.Millisecond

// Pulser receives one call per period.
type Pulser interface {
	Pulse() bool
}

// Source fires Pulse every Period.
type Source struct {
	Period time.Duration
	Pulser Pulser
	// OnSecond, if set, is called after a pulse that completed a second.
	OnSecond func()
}

// Run fires pulses until ctx is done. It should be called in a separate
// goroutine.
func (s *Source) Run(ctx context.Context) error {
	period := s.Period
	if period <= 0 {
		period = DefaultPeriod
	}
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.fire()
		}
	}
}

func (s *Source) fire() {
	if s.Pulser.Pulse() && s.OnSecond != nil {
		s.OnSecond()
	}
}
