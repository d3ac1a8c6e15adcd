package clock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/picostopwatch/stopwatch/segment"
)

func newAt(minute, second uint8, running bool) *Clock {
	c := New(DefaultConfig())
	c.state = State{Minute: minute, Second: second, Running: running}
	c.refresh()
	return c
}

func TestNewStartsStoppedAtZero(t *testing.T) {
	c := New(DefaultConfig())
	state, buf := c.Snapshot()
	assert.Equal(t, State{}, state)
	assert.Equal(t, segment.NewBuffer(0, 0), buf)
	assert.Equal(t, uint8(0), c.Phase())
}

func TestTickCarry(t *testing.T) {
	for m := uint8(0); m < Limit; m++ {
		for s := uint8(0); s < Limit; s++ {
			c := newAt(m, s, true)
			c.Tick()

			want := State{Minute: m, Second: s + 1, Running: true}
			if s == Limit-1 {
				want = State{Minute: (m + 1) % Limit, Second: 0, Running: true}
			}
			require.Equal(t, want, c.State(), "tick from %02d:%02d", m, s)
			require.Equal(t, segment.NewBuffer(want.Minute, want.Second), c.Display())
		}
	}
}

func TestTickPausedIsNoop(t *testing.T) {
	c := newAt(12, 34, false)
	before := c.Display()
	c.Tick()
	assert.Equal(t, State{Minute: 12, Second: 34}, c.State())
	assert.Equal(t, before, c.Display())
}

func TestIncrementsWrapRegardlessOfRunning(t *testing.T) {
	for _, running := range []bool{false, true} {
		c := newAt(59, 59, running)

		c.IncrementMinute()
		assert.Equal(t, uint8(0), c.State().Minute)
		assert.Equal(t, uint8(59), c.State().Second)

		c.IncrementSecond()
		assert.Equal(t, uint8(0), c.State().Second)
		// No carry out of a manual second increment.
		assert.Equal(t, uint8(0), c.State().Minute)
		assert.Equal(t, running, c.State().Running)
		assert.Equal(t, segment.NewBuffer(0, 0), c.Display())
	}
}

func TestToggleRunningKeepsDigits(t *testing.T) {
	c := newAt(3, 9, false)
	c.ToggleRunning()
	assert.Equal(t, State{Minute: 3, Second: 9, Running: true}, c.State())
	c.ToggleRunning()
	assert.Equal(t, State{Minute: 3, Second: 9, Running: false}, c.State())
	assert.Equal(t, segment.NewBuffer(3, 9), c.Display())
}

func TestPulseRatio(t *testing.T) {
	c := newAt(0, 0, true)
	for i := 1; i < DefaultPulsesPerSecond; i++ {
		require.False(t, c.Pulse(), "pulse %d", i)
	}
	assert.Equal(t, uint8(0), c.State().Second)
	assert.True(t, c.Pulse())
	assert.Equal(t, uint8(1), c.State().Second)
	assert.Equal(t, uint8(0), c.Phase())
}

func TestPulsePausedFreezesPhase(t *testing.T) {
	c := newAt(0, 0, true)
	for i := 0; i < 13; i++ {
		c.Pulse()
	}
	require.Equal(t, uint8(13), c.Phase())

	c.ToggleRunning()
	for i := 0; i < 100; i++ {
		assert.False(t, c.Pulse())
	}
	assert.Equal(t, uint8(13), c.Phase())
	assert.Equal(t, State{}, c.State())

	c.ToggleRunning()
	pulses := 0
	for !c.Pulse() {
		pulses++
	}
	pulses++
	assert.Equal(t, 7, pulses)
	assert.Equal(t, State{Second: 1, Running: true}, c.State())
}

func TestPulseRatioClamped(t *testing.T) {
	c := New(Config{})
	c.ToggleRunning()
	assert.True(t, c.Pulse())
	assert.Equal(t, uint8(1), c.State().Second)
}

func TestScenarioSixtyTicksFromZero(t *testing.T) {
	c := New(DefaultConfig())
	c.ToggleRunning()
	for i := 0; i < 59; i++ {
		c.Tick()
	}
	assert.Equal(t, State{Minute: 0, Second: 59, Running: true}, c.State())
	c.Tick()
	assert.Equal(t, State{Minute: 1, Second: 0, Running: true}, c.State())
}

func TestScenarioMinuteWrapDropped(t *testing.T) {
	c := newAt(59, 59, true)
	c.Tick()
	assert.Equal(t, State{Minute: 0, Second: 0, Running: true}, c.State())
}

func TestScenarioSixtyMinuteIncrements(t *testing.T) {
	c := newAt(17, 5, false)
	for i := 0; i < Limit; i++ {
		c.IncrementMinute()
	}
	assert.Equal(t, State{Minute: 17, Second: 5}, c.State())
}

func TestConcurrentPulseAndRead(t *testing.T) {
	c := New(Config{PulsesPerSecond: 1})
	c.ToggleRunning()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5000; i++ {
			c.Pulse()
		}
	}()

	for i := 0; i < 5000; i++ {
		state, buf := c.Snapshot()
		require.Equal(t, segment.NewBuffer(state.Minute, state.Second), buf)
	}
	wg.Wait()
	assert.Equal(t, State{Minute: 23, Second: 20, Running: true}, c.State())
}
