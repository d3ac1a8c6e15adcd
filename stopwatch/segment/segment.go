// Package segment encodes decimal digits for a common-cathode 7-segment
// display and holds the 4-digit buffer the display driver scans.
//
// Bits map to segments in the usual g-f-e-d-c-b-a order:
//
//	  a
//	 ---
//	f| |b
//	 --- g
//	e| |c
//	 ---
//	  d
package segment

// Code is the 8-bit pattern written to the segment port. A set bit lights
// the segment.
type Code uint8

const (
	segA Code = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// Blank turns every segment off. The driver writes it between positions.
const Blank Code = 0x00

// Digits is the number of positions in a Buffer.
const Digits = 4

// table maps 0-9 to its segment pattern.
// 0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F
var table = [10]Code{
	segA | segB | segC | segD | segE | segF,
	segB | segC,
	segA | segB | segG | segE | segD,
	segA | segB | segG | segC | segD,
	segF | segG | segB | segC,
	segA | segF | segG | segC | segD,
	segA | segF | segE | segD | segC | segG,
	segA | segB | segC,
	segA | segB | segC | segD | segE | segF | segG,
	segA | segB | segC | segD | segF | segG,
}

// Encode returns the segment pattern for digit d. Callers derive d from a
// 0-59 value with /10 and %10, so d is always 0-9; anything larger is
// reduced mod 10.
func Encode(d uint8) Code {
	return table[d%10]
}

// Table returns a copy of the digit table.
func Table() [10]Code {
	return table
}

// Buffer holds one Code per position: minute tens, minute ones, second
// tens, second ones.
type Buffer [Digits]Code

// Refresh recomputes every position from minute and second.
func (b *Buffer) Refresh(minute, second uint8) {
	b[0] = Encode(minute / 10)
	b[1] = Encode(minute % 10)
	b[2] = Encode(second / 10)
	b[3] = Encode(second % 10)
}

// NewBuffer returns a Buffer already refreshed from minute and second.
func NewBuffer(minute, second uint8) Buffer {
	var b Buffer
	b.Refresh(minute, second)
	return b
}
