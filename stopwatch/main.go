//go:build tinygo

package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picostopwatch/stopwatch/app"
	"github.com/harveysanders/picostopwatch/stopwatch/board"
	"github.com/harveysanders/picostopwatch/stopwatch/clock"
	"github.com/harveysanders/picostopwatch/stopwatch/display"
	"github.com/harveysanders/picostopwatch/stopwatch/keypad"
	"github.com/harveysanders/picostopwatch/stopwatch/statuslcd"
	"github.com/harveysanders/picostopwatch/stopwatch/ticker"
)

const (
	tickPeriod  = ticker.DefaultPeriod // 20 pulses per second.
	settleDelay = keypad.DefaultSettle // Debounce wait.
	digitDwell  = display.DefaultDwell // Per-position on time.
	statusQueue = 4                    // Buffered LCD updates before dropping.
)

// Set via linker flags, e.g.
//
//	tinygo flash -target=pico -ldflags="-X main.statusLCD=off -X main.logLevel=DEBUG" ./stopwatch
var (
	statusLCD = "on"
	logLevel  = "INFO"
)

func main() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: level,
	}))

	clk := clock.New(clock.Config{
		PulsesPerSecond: clock.DefaultPulsesPerSecond,
		Logger:          logger,
	})

	var status chan statuslcd.Message
	if statusLCD == "on" {
		status = startStatusLCD(logger)
	}

	a := app.New(app.Config{
		Clock: clk,
		Display: display.Config{
			Segments: board.NewPort(board.SegmentPins),
			Select:   board.NewPort(board.SelectPins),
			Dwell:    digitDwell,
		},
		Keys: app.Keys{
			Start:  board.Key(board.StartKey),
			Minute: board.Key(board.MinuteKey),
			Second: board.Key(board.SecondKey),
		},
		Settle:     settleDelay,
		TickPeriod: tickPeriod,
		Status:     status,
		Logger:     logger,
	})

	logger.Info("stopwatch:ready")
	err := a.Run(context.Background())
	// Run only returns if its context is cancelled, which never happens here.
	printErrForever(logger, "main loop exited", slog.Any("reason", err))
}

// startStatusLCD brings up the optional status LCD. The stopwatch works
// without it, so failures are logged and a nil channel is returned.
func startStatusLCD(logger *slog.Logger) chan statuslcd.Message {
	i2c, err := board.ConfigureI2C()
	if err != nil {
		logger.Error("configure I2C", slog.Any("reason", err))
		return nil
	}
	dev, err := statuslcd.Configure(i2c)
	if err != nil {
		logger.Error("configure status LCD", slog.Any("reason", err))
		return nil
	}
	messages := make(chan statuslcd.Message, statusQueue)
	go statuslcd.NewHandler(dev, messages, logger).Run()
	return messages
}

// printErrForever logs msg @ 1hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
