package models

import (
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// ST7789 is a Sitronix ST7789 in RGB565 mode. Panels smaller than 240x320
// (135x240, 240x240, 172x320) need a display size and offset.
type ST7789 struct{}

func (ST7789) FramebufferSize() options.Size { return options.Size{W: 240, H: 320} }
func (ST7789) ResetDuration() time.Duration  { return DefaultResetDuration }
func (ST7789) ColorFormat() pixel.Format     { return pixel.RGB565 }

// Init implements Model.
func (m ST7789) Init(di bus.Commander, delay Delayer, opts *options.Options) (dcs.SetAddressMode, error) {
	if err := CheckInterface(di, bus.Serial4Line, bus.Parallel8Bit, bus.Parallel16Bit); err != nil {
		return 0, err
	}

	madctl := dcs.AddressModeFromOptions(opts)

	delay.Sleep(150 * time.Millisecond)

	if err := dcs.WriteCommand(di, dcs.ExitSleepMode); err != nil {
		return 0, err
	}
	delay.Sleep(10 * time.Millisecond)

	if err := dcs.WriteCommand(di, madctl); err != nil {
		return 0, err
	}
	if err := dcs.WriteCommand(di, dcs.SetInvertMode(opts.InvertColors)); err != nil {
		return 0, err
	}

	pf := dcs.PixelFormatWithAll(dcs.BitsPerPixelFromFormat(m.ColorFormat()))
	if err := dcs.WriteCommand(di, dcs.SetPixelFormat(pf)); err != nil {
		return 0, err
	}
	delay.Sleep(10 * time.Millisecond)

	if err := dcs.WriteCommand(di, dcs.EnterNormalMode); err != nil {
		return 0, err
	}
	delay.Sleep(10 * time.Millisecond)

	if err := dcs.WriteCommand(di, dcs.SetDisplayOn); err != nil {
		return 0, err
	}
	// DISPON needs time to settle or the next transfers get corrupted.
	delay.Sleep(120 * time.Millisecond)

	return madctl, nil
}
