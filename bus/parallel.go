package bus

import (
	"periph.io/x/conn/v3/gpio"
)

// OutputBus drives the data lines of a parallel bus.
type OutputBus[W Word] interface {
	// Kind returns Parallel8Bit or Parallel16Bit.
	Kind() Kind
	// SetValue puts value on the data lines.
	SetValue(value W) error
}

// Parallel is an 8080-style parallel display bus.
//
// Every word is latched by the controller on the rising edge of WR.
type Parallel[W Word] struct {
	bus OutputBus[W]
	dc  gpio.PinOut // Data/Command pin
	wr  gpio.PinOut // Write strobe
}

// NewParallel wraps a data bus and its Data/Command and write strobe pins.
func NewParallel[W Word](bus OutputBus[W], dc, wr gpio.PinOut) *Parallel[W] {
	return &Parallel[W]{bus: bus, dc: dc, wr: wr}
}

// Kind implements Commander.
func (p *Parallel[W]) Kind() Kind {
	return p.bus.Kind()
}

// SendCommand implements Commander. Parameter bytes are sent one per word.
func (p *Parallel[W]) SendCommand(cmd byte, args []byte) error {
	if err := p.dc.Out(gpio.Low); err != nil {
		return lineErr("dc", err)
	}
	if err := p.sendWord(W(cmd)); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	if err := p.dc.Out(gpio.High); err != nil {
		return lineErr("dc", err)
	}
	for _, arg := range args {
		if err := p.sendWord(W(arg)); err != nil {
			return err
		}
	}
	return nil
}

// SendDataSlice implements Interface.
func (p *Parallel[W]) SendDataSlice(data []W) error {
	for _, w := range data {
		if err := p.sendWord(w); err != nil {
			return err
		}
	}
	return nil
}

// Release returns the data bus and the Data/Command and write strobe pins.
func (p *Parallel[W]) Release() (OutputBus[W], gpio.PinOut, gpio.PinOut) {
	return p.bus, p.dc, p.wr
}

func (p *Parallel[W]) String() string {
	return "bus.Parallel{" + p.bus.Kind().String() + "}"
}

// sendWord pulses WR around a bus update.
func (p *Parallel[W]) sendWord(w W) error {
	if err := p.wr.Out(gpio.Low); err != nil {
		return lineErr("wr", err)
	}
	if err := p.bus.SetValue(w); err != nil {
		return lineErr("bus", err)
	}
	return lineErr("wr", p.wr.Out(gpio.High))
}

// Generic8BitBus is an 8-bit data bus made of individual GPIO pins.
// Pin 0 carries the least significant bit.
type Generic8BitBus struct {
	pins  [8]gpio.PinOut
	last  uint8
	valid bool
}

// NewGeneric8BitBus returns a data bus driving pins. No pin is touched until
// the first value is set.
func NewGeneric8BitBus(pins [8]gpio.PinOut) *Generic8BitBus {
	return &Generic8BitBus{pins: pins}
}

// Kind implements OutputBus.
func (b *Generic8BitBus) Kind() Kind {
	return Parallel8Bit
}

// SetValue implements OutputBus. Only pins whose level changes are written.
func (b *Generic8BitBus) SetValue(value uint8) error {
	changed := ^uint8(0)
	if b.valid {
		changed = value ^ b.last
	}
	if err := setPins(b.pins[:], uint16(value), uint16(changed)); err != nil {
		b.valid = false
		return err
	}
	b.last, b.valid = value, true
	return nil
}

// Release returns the data pins.
func (b *Generic8BitBus) Release() [8]gpio.PinOut {
	return b.pins
}

// Generic16BitBus is a 16-bit data bus made of individual GPIO pins.
// Pin 0 carries the least significant bit.
type Generic16BitBus struct {
	pins  [16]gpio.PinOut
	last  uint16
	valid bool
}

// NewGeneric16BitBus returns a data bus driving pins. No pin is touched
// until the first value is set.
func NewGeneric16BitBus(pins [16]gpio.PinOut) *Generic16BitBus {
	return &Generic16BitBus{pins: pins}
}

// Kind implements OutputBus.
func (b *Generic16BitBus) Kind() Kind {
	return Parallel16Bit
}

// SetValue implements OutputBus. Only pins whose level changes are written.
func (b *Generic16BitBus) SetValue(value uint16) error {
	changed := ^uint16(0)
	if b.valid {
		changed = value ^ b.last
	}
	if err := setPins(b.pins[:], value, changed); err != nil {
		b.valid = false
		return err
	}
	b.last, b.valid = value, true
	return nil
}

// Release returns the data pins.
func (b *Generic16BitBus) Release() [16]gpio.PinOut {
	return b.pins
}

func setPins(pins []gpio.PinOut, value, mask uint16) error {
	for i, pin := range pins {
		bit := uint16(1) << i
		if mask&bit == 0 {
			continue
		}
		if err := pin.Out(gpio.Level(value&bit != 0)); err != nil {
			return err
		}
	}
	return nil
}
