package models

import (
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// RM67162 is a Raydium RM67162 AMOLED controller in RGB565 mode, as found on
// the 240x536 Lilygo T-Display-S3 AMOLED. Other panel sizes are untested.
type RM67162 struct{}

func (RM67162) FramebufferSize() options.Size { return options.Size{W: 240, H: 536} }
func (RM67162) ResetDuration() time.Duration  { return DefaultResetDuration }
func (RM67162) ColorFormat() pixel.Format     { return pixel.RGB565 }

// rm67162Setup selects the vendor register pages and sets brightness.
var rm67162Setup = []rawCommand{
	{0xFE, []byte{0x04}},
	{0x6A, []byte{0x00}},
	{0xFE, []byte{0x05}},
	{0xFE, []byte{0x07}},
	{0x07, []byte{0x4F}},
	{0xFE, []byte{0x01}},
	{0x2A, []byte{0x02}},
	{0x2B, []byte{0x73}},
	{0xFE, []byte{0x0A}},
	{0x29, []byte{0x10}},
	{0xFE, []byte{0x00}},
	{0x51, []byte{0xAF}}, // brightness
	{0x53, []byte{0x20}},
	{0x35, []byte{0x00}},
}

// Init implements Model.
func (m RM67162) Init(di bus.Commander, delay Delayer, opts *options.Options) (dcs.SetAddressMode, error) {
	if err := CheckInterface(di, bus.Serial4Line, bus.Parallel8Bit); err != nil {
		return 0, err
	}

	madctl := dcs.AddressModeFromOptions(opts)

	if err := writeRaw(di, rm67162Setup); err != nil {
		return 0, err
	}

	pf := dcs.PixelFormatWithAll(dcs.BitsPerPixelFromFormat(m.ColorFormat()))
	if err := dcs.WriteCommand(di, dcs.SetPixelFormat(pf)); err != nil {
		return 0, err
	}

	// Enable SRAM access over SPI
	if err := dcs.WriteRaw(di, 0xC4, []byte{0x80}); err != nil {
		return 0, err
	}

	if err := dcs.WriteCommand(di, madctl); err != nil {
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
