// Package display drives a 4-digit multiplexed 7-segment display.
//
// All positions share one segment port. A second, active-low select port
// picks which position the segment pattern lands on. Scan strobes the
// positions left to right fast enough that the digits look lit at the same
// time:
//
//	position 1: select 0xFE, segments, dwell, blank
//	position 2: select 0xFD, segments, dwell, blank
//	position 3: select 0xFB, segments, dwell, blank
//	position 4: select 0xF7, segments, dwell, blank
package display

import (
	"time"

	"github.com/harveysanders/picostopwatch/stopwatch/segment"
)

//go:generate mockgen -destination mock_port_test.go -package display . Port

// DefaultDwell is how long each position stays lit. Four positions make a
// frame well under 20ms, so a full scan runs far above 50Hz.
const DefaultDwell = 100 * time.Microsecond

// deselectAll drives every select line high.
const deselectAll uint8 = 0xFF

// selects holds the active-low one-hot select value for each position.
var selects = [segment.Digits]uint8{0xFE, 0xFD, 0xFB, 0xF7}

// Port is an 8-bit output port.
type Port interface {
	Write(v uint8)
}

// Config configures a Driver.
type Config struct {
	// Segments carries the segment pattern shared by every position.
	Segments Port
	// Select carries the active-low position select lines in its low 4 bits.
	Select Port
	// Dwell is the time each position stays lit. Defaults to DefaultDwell.
	Dwell time.Duration
	// Sleep waits for the dwell. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Driver scans a segment.Buffer onto the display. It is the only writer of
// both ports and must not be shared between goroutines.
type Driver struct {
	segs  Port
	sel   Port
	dwell time.Duration
	sleep func(time.Duration)
}

// New returns a Driver over the ports in cfg.
func New(cfg Config) *Driver {
	d := &Driver{
		segs:  cfg.Segments,
		sel:   cfg.Select,
		dwell: cfg.Dwell,
		sleep: cfg.Sleep,
	}
	if d.dwell <= 0 {
		d.dwell = DefaultDwell
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	return d
}

// Scan shows buf for one frame, one position at a time. The segment port is
// left blank on return.
func (d *Driver) Scan(buf segment.Buffer) {
	for pos, code := range buf {
		d.show(pos, code)
	}
}

// Test lights every position with code for one frame. Used to check the
// wiring of each segment on every position.
func (d *Driver) Test(code segment.Code) {
	for pos := range selects {
		d.show(pos, code)
	}
}

// Blank turns off all segments and deselects every position.
func (d *Driver) Blank() {
	d.segs.Write(uint8(segment.Blank))
	d.sel.Write(deselectAll)
}

func (d *Driver) show(pos int, code segment.Code) {
	d.sel.Write(selects[pos])
	d.segs.Write(uint8(code))
	d.sleep(d.dwell)
	// Blank before moving on, or the next select briefly shows this
	// pattern on the neighbouring position.
	d.segs.Write(uint8(segment.Blank))
}
