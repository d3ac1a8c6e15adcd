//go:build tinygo

// segtest lights every position of the stopwatch display with each digit in
// turn, one second per digit, to check the segment and select wiring.
package main

import (
	"machine"
	"time"

	"github.com/harveysanders/picostopwatch/stopwatch/board"
	"github.com/harveysanders/picostopwatch/stopwatch/display"
	"github.com/harveysanders/picostopwatch/stopwatch/segment"
)

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	d := display.New(display.Config{
		Segments: board.NewPort(board.SegmentPins),
		Select:   board.NewPort(board.SelectPins),
	})

	for {
		for digit := uint8(0); digit < 10; digit++ {
			println("digit", digit)
			led.Set(digit%2 == 0)
			code := segment.Encode(digit)
			until := time.Now().Add(time.Second)
			for time.Now().Before(until) {
				d.Test(code)
			}
		}
		d.Blank()
		led.Low()
		time.Sleep(time.Second)
	}
}
