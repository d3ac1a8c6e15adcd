// Package keypad polls active-low push buttons with a two-read debounce.
//
// Each key runs the same small state machine on every Poll:
//
//	idle --low--> settle --still low--> action --> hold (while low) --> idle
//	                 \--high again (bounce)--> idle
//
// While a key is held, the hold callback runs in a tight loop so the
// display keeps scanning instead of freezing on one position.
package keypad

import (
	"io"
	"log/slog"
	"time"
)

// DefaultSettle is the wait between the first low read and the confirming read.
const DefaultSettle = 10 * time.Millisecond

// Line is an active-low digital input: Get reports false while the button
// is pressed. machine.Pin configured with a pull-up satisfies it.
type Line interface {
	Get() bool
}

// Key binds a Line to the action fired on a confirmed press.
type Key struct {
	Name   string
	Line   Line
	Action func()
}

func (k Key) pressed() bool { return !k.Line.Get() }

// Config configures a Controller.
type Config struct {
	// Keys are checked in order on every Poll.
	Keys []Key
	// Hold runs repeatedly while a confirmed key stays pressed. Optional.
	Hold func()
	// Settle is the debounce wait. Defaults to DefaultSettle.
	Settle time.Duration
	// Sleep waits for the settle time. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// Logger receives press and bounce events at debug level. Optional.
	Logger *slog.Logger
}

// Controller polls a fixed set of keys.
type Controller struct {
	keys   []Key
	hold   func()
	settle time.Duration
	sleep  func(time.Duration)
	log    *slog.Logger
}

// New returns a Controller for cfg.
func New(cfg Config) *Controller {
	c := &Controller{
		keys:   cfg.Keys,
		hold:   cfg.Hold,
		settle: cfg.Settle,
		sleep:  cfg.Sleep,
		log:    cfg.Logger,
	}
	if c.settle <= 0 {
		c.settle = DefaultSettle
	}
	if c.sleep == nil {
		c.sleep = time.Sleep
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return c
}

// Poll checks every key once and returns how many presses were confirmed.
// A confirmed press does not return until the key is released.
func (c *Controller) Poll() int {
	presses := 0
	for _, k := range c.keys {
		if c.check(k) {
			presses++
		}
	}
	return presses
}

func (c *Controller) check(k Key) bool {
	if !k.pressed() {
		return false
	}
	c.sleep(c.settle)
	if !k.pressed() {
		c.log.Debug("key:bounce", slog.String("key", k.Name))
		return false
	}

	c.log.Debug("key:press", slog.String("key", k.Name))
	if k.Action != nil {
		k.Action()
	}

	for k.pressed() {
		if c.hold != nil {
			c.hold()
		}
	}
	return true
}
