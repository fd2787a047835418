package models

import (
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// ILI9486 is an Ilitek ILI9486. The zero value runs in RGB565 mode.
type ILI9486 struct {
	Format pixel.Format
}

func (ILI9486) FramebufferSize() options.Size { return options.Size{W: 320, H: 480} }
func (ILI9486) ResetDuration() time.Duration  { return DefaultResetDuration }
func (m ILI9486) ColorFormat() pixel.Format   { return m.Format }

// Init implements Model.
func (m ILI9486) Init(di bus.Commander, delay Delayer, opts *options.Options) (dcs.SetAddressMode, error) {
	if err := CheckInterface(di, bus.Serial4Line, bus.Parallel8Bit, bus.Parallel16Bit); err != nil {
		return 0, err
	}
	delay.Sleep(120 * time.Millisecond)
	return ili948xInit(di, delay, opts, m.Format)
}

// ILI9488 is an Ilitek ILI9488. The zero value runs in RGB565 mode, which
// the controller only supports on a parallel bus; use RGB666 over SPI.
type ILI9488 struct {
	Format pixel.Format
}

func (ILI9488) FramebufferSize() options.Size { return options.Size{W: 320, H: 480} }
func (ILI9488) ResetDuration() time.Duration  { return DefaultResetDuration }
func (m ILI9488) ColorFormat() pixel.Format   { return m.Format }

// Init implements Model.
func (m ILI9488) Init(di bus.Commander, delay Delayer, opts *options.Options) (dcs.SetAddressMode, error) {
	supported := []bus.Kind{bus.Parallel8Bit, bus.Parallel16Bit}
	if m.Format == pixel.RGB666 {
		supported = append(supported, bus.Serial4Line)
	}
	if err := CheckInterface(di, supported...); err != nil {
		return 0, err
	}
	delay.Sleep(120 * time.Millisecond)
	return ili948xInit(di, delay, opts, m.Format)
}

// ili948xInit is the power-up sequence shared by the ILI948x family.
func ili948xInit(di bus.Commander, delay Delayer, opts *options.Options, f pixel.Format) (dcs.SetAddressMode, error) {
	madctl := dcs.AddressModeFromOptions(opts)
	pf := dcs.PixelFormatWithAll(dcs.BitsPerPixelFromFormat(f))

	cmds := []dcs.Command{
		dcs.ExitSleepMode,
		dcs.SetPixelFormat(pf),
		madctl,
		dcs.SetInvertMode(opts.InvertColors),
	}
	for _, c := range cmds {
		if err := dcs.WriteCommand(di, c); err != nil {
			return 0, err
		}
	}

	// Display function control
	if err := dcs.WriteRaw(di, 0xB6, []byte{0b0000_0010, 0x02, 0x3B}); err != nil {
		return 0, err
	}
	if err := dcs.WriteCommand(di, dcs.EnterNormalMode); err != nil {
		return 0, err
	}
	if err := dcs.WriteCommand(di, dcs.SetDisplayOn); err != nil {
		return 0, err
	}
	// DISPON needs time to settle or the next transfers get corrupted.
	delay.Sleep(120 * time.Millisecond)

	return madctl, nil
}
