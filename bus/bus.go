// Package bus transmits DCS commands and pixel data to a display controller.
//
// Two transports are provided: SPI, a 4-line serial bus where a separate
// Data/Command GPIO selects the register, and Parallel, an 8080-style bus
// where every word is latched with a write strobe.
package bus

import (
	"errors"
	"fmt"
)

// Kind identifies the shape of a transport.
type Kind uint8

const (
	// Serial4Line is SPI with a Data/Command line.
	Serial4Line Kind = iota
	// Parallel8Bit is an 8-bit 8080 parallel bus.
	Parallel8Bit
	// Parallel16Bit is a 16-bit 8080 parallel bus.
	Parallel16Bit
)

func (k Kind) String() string {
	switch k {
	case Serial4Line:
		return "Serial4Line"
	case Parallel8Bit:
		return "Parallel8Bit"
	case Parallel16Bit:
		return "Parallel16Bit"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Word is the native transmission unit of a bus.
type Word interface {
	~uint8 | ~uint16
}

// Commander sends commands with their parameters.
//
// Display models only ever need this half of a bus, so they are not
// parameterized by the word width.
type Commander interface {
	// Kind returns the transport shape. It never changes for a given bus.
	Kind() Kind
	// SendCommand sends an instruction byte followed by its parameter bytes.
	SendCommand(cmd byte, args []byte) error
}

// Interface is a complete display bus.
type Interface[W Word] interface {
	Commander
	// SendDataSlice sends pixel data. A memory write command must have been
	// sent first, and data must already be in the panel's pixel format.
	SendDataSlice(data []W) error
}

// Error is returned when a bus line fails.
type Error struct {
	Line string // "dc", "wr", "spi" or "bus"
	Err  error
}

func (e *Error) Error() string {
	return "bus: " + e.Line + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func lineErr(line string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Line: line, Err: err}
}

// ErrOddLength is returned by PackWords when bytes can't be split evenly
// into 16-bit words.
var ErrOddLength = errors.New("bus: odd byte count for 16-bit words")

// PackWords converts raw big-endian pixel bytes into bus words.
//
// For 8-bit words the slice is converted as is. For 16-bit words every pair
// of bytes becomes one word, high byte first.
func PackWords[W Word](b []byte) ([]W, error) {
	if uint16(^W(0)) == 0xFF {
		out := make([]W, len(b))
		for i, v := range b {
			out[i] = W(v)
		}
		return out, nil
	}

	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]W, len(b)/2)
	for i := range out {
		out[i] = W(uint16(b[2*i])<<8 | uint16(b[2*i+1]))
	}
	return out, nil
}
