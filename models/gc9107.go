package models

import (
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// GC9107 is a GalaxyCore GC9107 in RGB565 mode.
type GC9107 struct{}

func (GC9107) FramebufferSize() options.Size { return options.Size{W: 128, H: 160} }
func (GC9107) ResetDuration() time.Duration  { return DefaultResetDuration }
func (GC9107) ColorFormat() pixel.Format     { return pixel.RGB565 }

// Vendor register setup, split around MADCTL and COLMOD.
var (
	gc9107Power = []rawCommand{
		{0xB0, []byte{0xC0}},
		{0xB2, []byte{0x2F}},
		{0xB3, []byte{0x03}},
		{0xB6, []byte{0x19}},
		{0xB7, []byte{0x01}},
	}
	gc9107Timing = []rawCommand{
		{0xAC, []byte{0xCB}},
		{0xAB, []byte{0x0E}},
		{0xB4, []byte{0x04}},
		{0xA8, []byte{0x19}},
	}
	gc9107Gamma = []rawCommand{
		{0xB8, []byte{0x08}},
		{0xE8, []byte{0x24}},
		{0xE9, []byte{0x48}},
		{0xEA, []byte{0x22}},
		{0xC6, []byte{0x30}},
		{0xC7, []byte{0x18}},
		{0xF0, []byte{0x01, 0x2b, 0x23, 0x3c, 0xb7, 0x12, 0x17, 0x60, 0x00, 0x06, 0x0c, 0x17, 0x12, 0x1f}},
		{0xF1, []byte{0x05, 0x2e, 0x2d, 0x44, 0xd6, 0x15, 0x17, 0xa0, 0x02, 0x0d, 0x0d, 0x1a, 0x18, 0x1f}},
	}
)

// Init implements Model.
func (m GC9107) Init(di bus.Commander, delay Delayer, opts *options.Options) (dcs.SetAddressMode, error) {
	if err := CheckInterface(di, bus.Serial4Line, bus.Parallel8Bit); err != nil {
		return 0, err
	}

	delay.Sleep(200 * time.Millisecond)

	// Inter register enable 1 and 2
	if err := dcs.WriteRaw(di, 0xFE, nil); err != nil {
		return 0, err
	}
	delay.Sleep(5 * time.Millisecond)
	if err := dcs.WriteRaw(di, 0xEF, nil); err != nil {
		return 0, err
	}
	delay.Sleep(5 * time.Millisecond)

	if err := writeRaw(di, gc9107Power); err != nil {
		return 0, err
	}

	madctl := dcs.AddressModeFromOptions(opts)
	if err := dcs.WriteCommand(di, madctl); err != nil {
		return 0, err
	}

	if err := writeRaw(di, gc9107Timing); err != nil {
		return 0, err
	}

	pf := dcs.PixelFormatWithAll(dcs.BitsPerPixelFromFormat(m.ColorFormat()))
	if err := dcs.WriteCommand(di, dcs.SetPixelFormat(pf)); err != nil {
		return 0, err
	}

	if err := writeRaw(di, gc9107Gamma); err != nil {
		return 0, err
	}

	if err := dcs.WriteCommand(di, dcs.SetInvertMode(opts.InvertColors)); err != nil {
		return 0, err
	}

	if err := dcs.WriteCommand(di, dcs.ExitSleepMode); err != nil {
		return 0, err
	}
	delay.Sleep(120 * time.Millisecond)

	if err := dcs.WriteCommand(di, dcs.SetDisplayOn); err != nil {
		return 0, err
	}

	return madctl, nil
}

// rawCommand is a vendor register write.
type rawCommand struct {
	instruction byte
	params      []byte
}

func writeRaw(di bus.Commander, cmds []rawCommand) error {
	for _, c := range cmds {
		if err := dcs.WriteRaw(di, c.instruction, c.params); err != nil {
			return err
		}
	}
	return nil
}
