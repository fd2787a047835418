package bus

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Txer is a half duplex transport. Both periph.io's conn.Conn and
// golang.org/x/exp/io/spi.Device satisfy it.
type Txer interface {
	Tx(w, r []byte) error
}

// SPI is a 4-line serial display bus.
type SPI struct {
	c  Txer        // SPI connection
	dc gpio.PinOut // Data/Command pin
}

var _ Interface[uint8] = (*SPI)(nil)

// NewSPI wraps an already configured SPI connection.
func NewSPI(c Txer, dc gpio.PinOut) *SPI {
	return &SPI{c: c, dc: dc}
}

// ConnectSPI opens p in Mode0 with 8-bit words at f and wraps the
// connection. Most DCS controllers accept up to 62.5MHz writes, but long
// wires rarely work above 32MHz.
func ConnectSPI(p spi.Port, dc gpio.PinOut, f physic.Frequency) (*SPI, error) {
	if f == 0 {
		f = 10 * physic.MegaHertz
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, lineErr("spi", err)
	}
	return NewSPI(c, dc), nil
}

// Kind implements Commander.
func (s *SPI) Kind() Kind {
	return Serial4Line
}

// SendCommand implements Commander.
func (s *SPI) SendCommand(cmd byte, args []byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return lineErr("dc", err)
	}
	if err := s.c.Tx([]byte{cmd}, nil); err != nil {
		return lineErr("spi", err)
	}
	if err := s.dc.Out(gpio.High); err != nil {
		return lineErr("dc", err)
	}
	if len(args) == 0 {
		return nil
	}
	return lineErr("spi", s.c.Tx(args, nil))
}

// SendDataSlice implements Interface. D/C is left high by SendCommand, so
// data is written straight through.
func (s *SPI) SendDataSlice(data []uint8) error {
	if len(data) == 0 {
		return nil
	}
	return lineErr("spi", s.c.Tx(data, nil))
}

// Release returns the connection and the Data/Command pin.
func (s *SPI) Release() (Txer, gpio.PinOut) {
	return s.c, s.dc
}

func (s *SPI) String() string {
	return "bus.SPI"
}
