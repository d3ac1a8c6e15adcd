//go:build tinygo

// Package board maps the stopwatch onto Raspberry Pi Pico pins.
//
//	GP6..GP13   segments a, b, c, d, e, f, g, dp (common cathode, high = lit)
//	GP16..GP19  digit select 1..4 (active low)
//	GP20        Start/Pause key (to ground, internal pull-up)
//	GP21        Minute key
//	GP22        Second key
//	GP4/GP5     I2C0 SDA/SCL for the optional status LCD
package board

import (
	"machine"
)

var (
	// SegmentPins carry segments a..g and dp, bit 0 first.
	SegmentPins = [8]machine.Pin{
		machine.GP6, machine.GP7, machine.GP8, machine.GP9,
		machine.GP10, machine.GP11, machine.GP12, machine.GP13,
	}
	// SelectPins carry the active-low digit selects. Only the low 4 bits of
	// the select value are wired.
	SelectPins = [8]machine.Pin{
		machine.GP16, machine.GP17, machine.GP18, machine.GP19,
		machine.NoPin, machine.NoPin, machine.NoPin, machine.NoPin,
	}

	// StartKey toggles between running and paused.
	StartKey = machine.GP20
	// MinuteKey adds one minute.
	MinuteKey = machine.GP21
	// SecondKey adds one second.
	SecondKey = machine.GP22

	// SDA is the I2C0 data line of the status LCD.
	SDA = machine.GP4
	// SCL is the I2C0 clock line of the status LCD.
	SCL = machine.GP5
)

// Port drives up to 8 pins as one 8-bit value, bit 0 on the first pin.
// Slots set to machine.NoPin are skipped.
type Port struct {
	pins [8]machine.Pin
}

// NewPort configures pins as outputs and returns them as a Port.
func NewPort(pins [8]machine.Pin) *Port {
	for _, p := range pins {
		if p == machine.NoPin {
			continue
		}
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return &Port{pins: pins}
}

// Write sets each pin from the matching bit of v.
func (p *Port) Write(v uint8) {
	for i, pin := range p.pins {
		if pin == machine.NoPin {
			continue
		}
		pin.Set(v&(1<<i) != 0)
	}
}

// Key configures pin as a pulled-up input. The returned pin reads low while
// the button is pressed.
func Key(pin machine.Pin) machine.Pin {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pin
}

// ConfigureI2C sets up I2C0 for the status LCD.
func ConfigureI2C() (*machine.I2C, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: SDA,
		SCL: SCL,
	})
	if err != nil {
		return nil, err
	}
	return machine.I2C0, nil
}
