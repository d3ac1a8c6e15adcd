// Package clock holds the minute/second time state, its display buffer and
// the sub-second phase of the periodic tick.
//
// A Clock is shared between the tick goroutine and the main loop. Every
// mutation of the (minute, second, running, phase, buffer) set happens under
// one lock, so readers never see a buffer that disagrees with the time.
package clock

import (
	"io"
	"log/slog"
	"sync"

	"github.com/harveysanders/picostopwatch/stopwatch/segment"
)

const (
	// Limit is the wrap point of both the minute and the second counter.
	Limit = 60
	// DefaultPulsesPerSecond is 20 pulses of 50ms.
	DefaultPulsesPerSecond = 20
)

// State is a snapshot of the time counters.
type State struct {
	Minute  uint8
	Second  uint8
	Running bool
}

// Config configures a Clock.
type Config struct {
	// PulsesPerSecond is how many calls to Pulse make up one second while
	// running. Values below 1 are treated as 1.
	PulsesPerSecond uint8
	// Logger receives debug output on each elapsed second. Optional.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration for a 50ms pulse.
func DefaultConfig() Config {
	return Config{PulsesPerSecond: DefaultPulsesPerSecond}
}

// Clock is the time state plus its cached display buffer.
type Clock struct {
	mu     sync.Mutex
	state  State
	phase  uint8
	ratio  uint8
	buffer segment.Buffer
	log    *slog.Logger
}

// New returns a stopped clock at 00:00.
func New(cfg Config) *Clock {
	ratio := cfg.PulsesPerSecond
	if ratio < 1 {
		ratio = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	c := &Clock{ratio: ratio, log: logger}
	c.refresh()
	return c
}

// Tick advances the time by one second when running. A second overflow
// carries into the minute; a minute overflow wraps to 0 and is dropped.
func (c *Clock) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick()
}

// ToggleRunning flips between running and paused. The digits are not touched.
func (c *Clock) ToggleRunning() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Running = !c.state.Running
	c.refresh()
}

// IncrementMinute adds one minute, wrapping at 60, whether or not the
// clock is running.
func (c *Clock) IncrementMinute() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Minute = (c.state.Minute + 1) % Limit
	c.refresh()
}

// IncrementSecond adds one second, wrapping at 60 without carrying into the
// minute, whether or not the clock is running.
func (c *Clock) IncrementSecond() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Second = (c.state.Second + 1) % Limit
	c.refresh()
}

// Pulse accounts one firing of the periodic timer. While running, the
// sub-second phase advances and every PulsesPerSecond firings one second is
// ticked. While paused the phase is left where it was, so resuming finishes
// the interrupted second rather than starting a new one.
//
// Pulse reports whether a second elapsed.
func (c *Clock) Pulse() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Running {
		return false
	}
	c.phase++
	if c.phase < c.ratio {
		return false
	}
	c.phase = 0
	c.tick()
	c.log.Debug("clock:second",
		slog.Int("minute", int(c.state.Minute)),
		slog.Int("second", int(c.state.Second)),
	)
	return true
}

// State returns the current time counters.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Display returns the cached segment buffer.
func (c *Clock) Display() segment.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer
}

// Snapshot returns the state and buffer read in one critical section.
func (c *Clock) Snapshot() (State, segment.Buffer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.buffer
}

// Phase returns the number of pulses counted toward the next second.
func (c *Clock) Phase() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// tick must be called with mu held.
func (c *Clock) tick() {
	if !c.state.Running {
		return
	}
	c.state.Second++
	if c.state.Second >= Limit {
		c.state.Second = 0
		c.state.Minute++
		if c.state.Minute >= Limit {
			c.state.Minute = 0
		}
	}
	c.refresh()
}

// refresh must be called with mu held.
func (c *Clock) refresh() {
	c.buffer.Refresh(c.state.Minute, c.state.Second)
}
