package statuslcd

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// addrs are the common PCF8574 backpack addresses, tried in order.
var addrs = []uint8{0x27, 0x3F}

// Configure takes a preconfigured I2C bus and initializes the HD44780 LCD on
// the first common backpack address. If no address can be used, an error is
// returned and the clock runs without a status mirror.
func Configure(bus drivers.I2C) (*hd44780i2c.Device, error) {
	for _, a := range addrs {
		// An empty write tells us whether anything acknowledges the address.
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, a)
		err := dev.Configure(hd44780i2c.Config{
			Width:  columns,
			Height: rows,
		})
		if err != nil {
			return nil, errors.New("configure lcd:" + err.Error())
		}
		dev.ClearDisplay()
		return &dev, nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}
