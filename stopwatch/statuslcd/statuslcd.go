// Package statuslcd mirrors the clock on an optional 16x2 HD44780 character
// LCD through a channel, so the main loop never blocks on the I2C bus.
//
// Example usage:
//
//	messages := make(chan statuslcd.Message, 4)
//	handler := statuslcd.NewHandler(device, messages, logger)
//	go handler.Run()
//
//	// Never blocks; drops the update when the channel is full.
//	statuslcd.Send(messages, statuslcd.Format(state))
package statuslcd

import (
	"io"
	"log/slog"

	"github.com/harveysanders/picostopwatch/stopwatch/clock"
)

const (
	rows    = 2
	columns = 16
)

// Message represents a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

// Device is the subset of hd44780i2c.Device the handler drives.
type Device interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// Handler processes LCD messages from a channel.
type Handler struct {
	device   Device
	messages <-chan Message
	logger   *slog.Logger
	shown    int
}

// NewHandler creates a new 16x2 LCD message handler.
func NewHandler(device Device, messages <-chan Message, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &Handler{
		device:   device,
		messages: messages,
		logger:   logger,
	}
}

// Run processes messages from the channel and updates the LCD until the
// channel is closed. Run should be called in a separate goroutine.
func (h *Handler) Run() {
	for msg := range h.messages {
		h.display(msg)
	}
	h.logger.Debug("statuslcd:stopped", slog.Int("shown", h.shown))
}

// display prints msg, truncating each line to the panel width.
func (h *Handler) display(msg Message) {
	h.device.ClearDisplay()
	for row, line := range [rows][]byte{msg.Line1, msg.Line2} {
		h.device.SetCursor(0, uint8(row))
		// Truncate in-place, no allocation
		if len(line) > columns {
			line = line[:columns]
		}
		h.device.Print(line)
	}
	h.shown++
}

// Send queues msg without blocking. It reports false when the channel is
// full and the message was dropped.
func Send(messages chan<- Message, msg Message) bool {
	select {
	case messages <- msg:
		return true
	default:
		return false
	}
}

// Format renders state as "Time MM:SS" over "RUN" or "PAUSE".
func Format(state clock.State) Message {
	line1 := make([]byte, 0, columns)
	line1 = append(line1, "Time "...)
	line1 = appendTwoDigits(line1, state.Minute)
	line1 = append(line1, ':')
	line1 = appendTwoDigits(line1, state.Second)

	line2 := []byte("PAUSE")
	if state.Running {
		line2 = []byte("RUN")
	}
	return Message{Line1: line1, Line2: line2}
}

func appendTwoDigits(b []byte, v uint8) []byte {
	return append(b, '0'+v/10%10, '0'+v%10)
}
