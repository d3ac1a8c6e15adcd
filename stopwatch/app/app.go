// Package app wires the clock, keypad, display driver and tick source into
// the firmware's main loop.
package app

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/harveysanders/picostopwatch/stopwatch/clock"
	"github.com/harveysanders/picostopwatch/stopwatch/display"
	"github.com/harveysanders/picostopwatch/stopwatch/keypad"
	"github.com/harveysanders/picostopwatch/stopwatch/statuslcd"
	"github.com/harveysanders/picostopwatch/stopwatch/ticker"
)

// Keys are the three active-low buttons.
type Keys struct {
	Start  keypad.Line
	Minute keypad.Line
	Second keypad.Line
}

// Config configures an App.
type Config struct {
	Clock   *clock.Clock
	Display display.Config
	Keys    Keys
	// Settle is the debounce wait. Defaults to keypad.DefaultSettle.
	Settle time.Duration
	// Sleep is used for the debounce wait. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// TickPeriod defaults to ticker.DefaultPeriod.
	TickPeriod time.Duration
	// Status receives a message after every confirmed key press and every
	// elapsed second. Optional.
	Status chan<- statuslcd.Message
	Logger *slog.Logger
}

// App is the stopwatch main loop.
type App struct {
	clock  *clock.Clock
	driver *display.Driver
	keys   *keypad.Controller
	source *ticker.Source
	status chan<- statuslcd.Message
	// dirty is set by the ticker goroutine and by key presses, and cleared
	// when the main loop hands a message to the status mirror.
	dirty atomic.Bool
	log   *slog.Logger
}

// New builds an App from cfg. A nil cfg.Clock gets a default clock.
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	clk := cfg.Clock
	if clk == nil {
		c := clock.DefaultConfig()
		c.Logger = logger
		clk = clock.New(c)
	}

	a := &App{
		clock:  clk,
		driver: display.New(cfg.Display),
		status: cfg.Status,
		log:    logger,
	}
	a.dirty.Store(true)
	a.source = &ticker.Source{
		Period:   cfg.TickPeriod,
		Pulser:   clk,
		OnSecond: a.markDirty,
	}
	a.keys = keypad.New(keypad.Config{
		Keys: []keypad.Key{
			{Name: "start", Line: cfg.Keys.Start, Action: a.toggle},
			{Name: "minute", Line: cfg.Keys.Minute, Action: clk.IncrementMinute},
			{Name: "second", Line: cfg.Keys.Second, Action: clk.IncrementSecond},
		},
		Hold:   a.scan,
		Settle: cfg.Settle,
		Sleep:  cfg.Sleep,
		Logger: logger,
	})
	return a
}

// Clock returns the clock the App drives.
func (a *App) Clock() *clock.Clock { return a.clock }

// Step runs one main loop iteration: poll the keys, then scan one frame.
func (a *App) Step() {
	if a.keys.Poll() > 0 {
		a.markDirty()
	}
	a.scan()
	a.publish()
}

// Run starts the tick source and loops Step until ctx is done. On hardware
// ctx is never cancelled and Run never returns.
func (a *App) Run(ctx context.Context) error {
	a.driver.Blank()
	go func() {
		err := a.source.Run(ctx)
		a.log.Debug("ticker:stopped", slog.Any("reason", err))
	}()

	for {
		select {
		case <-ctx.Done():
			a.driver.Blank()
			return ctx.Err()
		default:
		}
		a.Step()
		// TinyGo runs on a single core; let the ticker goroutine in.
		runtime.Gosched()
	}
}

func (a *App) scan() {
	a.driver.Scan(a.clock.Display())
}

func (a *App) toggle() {
	a.clock.ToggleRunning()
	a.log.Info("clock:toggle", slog.Bool("running", a.clock.State().Running))
}

func (a *App) markDirty() {
	a.dirty.Store(true)
}

// publish sends the status mirror the current state if a second elapsed or
// a key was pressed since the last message.
func (a *App) publish() {
	if a.status == nil || !a.dirty.Swap(false) {
		return
	}
	if !statuslcd.Send(a.status, statuslcd.Format(a.clock.State())) {
		// Channel full; try again next iteration.
		a.dirty.Store(true)
	}
}
