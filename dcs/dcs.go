// Package dcs encodes MIPI Display Command Set commands.
//
// Every command is a value that knows its instruction byte and its
// parameters. WriteCommand serializes a command onto a bus; WriteRaw is there
// for the vendor specific registers DCS does not cover.
package dcs

import (
	"github.com/flavioheleno/mipidsi/bus"
)

// Command is a DCS command.
type Command interface {
	// Instruction returns the command opcode.
	Instruction() byte
	// Params returns the parameter bytes, nil if there are none.
	Params() []byte
}

// WriteCommand sends cmd over di.
func WriteCommand(di bus.Commander, cmd Command) error {
	return di.SendCommand(cmd.Instruction(), cmd.Params())
}

// WriteRaw sends an arbitrary instruction and parameters over di.
func WriteRaw(di bus.Commander, instruction byte, params []byte) error {
	return di.SendCommand(instruction, params)
}

// Instruction bytes.
const (
	SWRESET = 0x01 // Software reset
	SLPIN   = 0x10 // Enter sleep mode
	SLPOUT  = 0x11 // Exit sleep mode
	NORON   = 0x13 // Enter normal mode
	INVOFF  = 0x20 // Inversion off
	INVON   = 0x21 // Inversion on
	DISPOFF = 0x28 // Display off
	DISPON  = 0x29 // Display on
	CASET   = 0x2A // Column address set
	PASET   = 0x2B // Page address set
	RAMWR   = 0x2C // Memory write
	VSCRDEF = 0x33 // Vertical scrolling definition
	TEOFF   = 0x34 // Tearing effect line off
	TEON    = 0x35 // Tearing effect line on
	MADCTL  = 0x36 // Memory access control
	VSCAD   = 0x37 // Vertical scroll start address
	IDMOFF  = 0x38 // Exit idle mode
	IDMON   = 0x39 // Enter idle mode
	COLMOD  = 0x3A // Interface pixel format
)

// instruction is a command without parameters.
type instruction byte

func (i instruction) Instruction() byte { return byte(i) }
func (i instruction) Params() []byte    { return nil }

// Parameterless commands.
var (
	SoftReset        Command = instruction(SWRESET)
	EnterSleepMode   Command = instruction(SLPIN)
	ExitSleepMode    Command = instruction(SLPOUT)
	EnterNormalMode  Command = instruction(NORON)
	SetDisplayOff    Command = instruction(DISPOFF)
	SetDisplayOn     Command = instruction(DISPON)
	WriteMemoryStart Command = instruction(RAMWR)
	ExitIdleMode     Command = instruction(IDMOFF)
	EnterIdleMode    Command = instruction(IDMON)
)

func be16(v uint16) (byte, byte) {
	return byte(v >> 8), byte(v)
}
