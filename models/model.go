// Package models defines the lifecycle contract of a display controller and
// implements it for a number of common chips.
//
// A Model only has to provide its framebuffer size, reset pulse length,
// pixel format and power-up sequence. Every other operation has a default
// implementation shared by all DCS controllers; a Model may replace any of
// them by implementing the matching optional interface (OptionsUpdater,
// AddressWindowUpdater, ...). Always call the package functions
// (UpdateOptions, Sleep, ...) rather than the optional methods directly.
package models

import (
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// SleepSettle is how long a controller needs after SLPIN or SLPOUT before
// it accepts another command. 120ms is the worst case of every supported
// controller.
const SleepSettle = 120 * time.Millisecond

// DefaultResetDuration is the usual minimum low pulse on the reset line.
const DefaultResetDuration = 10 * time.Microsecond

// Delayer blocks for the given duration.
type Delayer interface {
	Sleep(d time.Duration)
}

// SystemDelay sleeps with time.Sleep.
type SystemDelay struct{}

// Sleep implements Delayer.
func (SystemDelay) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Model is a display controller.
type Model interface {
	// FramebufferSize is the size of the controller's memory in the default
	// orientation.
	FramebufferSize() options.Size
	// ResetDuration is the length of the active low reset pulse.
	ResetDuration() time.Duration
	// ColorFormat is the pixel format the controller is configured for.
	ColorFormat() pixel.Format
	// Init runs the power-up sequence and returns the address mode it set.
	// It must fail with options.UnsupportedInterface if the controller can't
	// be driven over di's bus kind.
	Init(di bus.Commander, delay Delayer, opts *options.Options) (dcs.SetAddressMode, error)
}

// OptionsUpdater replaces the default UpdateOptions.
type OptionsUpdater interface {
	UpdateOptions(di bus.Commander, opts *options.Options) (dcs.SetAddressMode, error)
}

// AddressWindowUpdater replaces the default UpdateAddressWindow.
type AddressWindowUpdater interface {
	UpdateAddressWindow(di bus.Commander, rotation options.Rotation, sx, sy, ex, ey uint16) error
}

// SleepController replaces the default Sleep and Wake.
type SleepController interface {
	Sleep(di bus.Commander, delay Delayer) error
	Wake(di bus.Commander, delay Delayer) error
}

// MemoryWriter replaces the default WriteMemoryStart.
type MemoryWriter interface {
	WriteMemoryStart(di bus.Commander) error
}

// SoftResetter replaces the default SoftwareReset.
type SoftResetter interface {
	SoftwareReset(di bus.Commander) error
}

// TearingEffectSetter replaces the default SetTearingEffect.
type TearingEffectSetter interface {
	SetTearingEffect(di bus.Commander, te options.TearingEffect, opts *options.Options) error
}

// VerticalScroller replaces the default vertical scrolling commands.
type VerticalScroller interface {
	SetVerticalScrollRegion(di bus.Commander, topFixed, bottomFixed uint16) error
	SetVerticalScrollOffset(di bus.Commander, offset uint16) error
}

// CheckInterface fails with options.UnsupportedInterface unless di's kind is
// one of supported.
func CheckInterface(di bus.Commander, supported ...bus.Kind) error {
	k := di.Kind()
	for _, s := range supported {
		if k == s {
			return nil
		}
	}
	return options.UnsupportedInterface
}

// UpdateOptions rewrites the address mode after opts changed and returns
// the new value.
func UpdateOptions(m Model, di bus.Commander, opts *options.Options) (dcs.SetAddressMode, error) {
	if u, ok := m.(OptionsUpdater); ok {
		return u.UpdateOptions(di, opts)
	}
	madctl := dcs.AddressModeFromOptions(opts)
	if err := dcs.WriteCommand(di, madctl); err != nil {
		return 0, err
	}
	return madctl, nil
}

// UpdateAddressWindow sets the window, in framebuffer coordinates, that the
// next memory write fills. Columns are written before pages.
func UpdateAddressWindow(m Model, di bus.Commander, rotation options.Rotation, sx, sy, ex, ey uint16) error {
	if u, ok := m.(AddressWindowUpdater); ok {
		return u.UpdateAddressWindow(di, rotation, sx, sy, ex, ey)
	}
	if err := dcs.WriteCommand(di, dcs.NewSetColumnAddress(sx, ex)); err != nil {
		return err
	}
	return dcs.WriteCommand(di, dcs.NewSetPageAddress(sy, ey))
}

// Sleep puts the controller to sleep. It returns only once the controller
// accepts commands again; Wake must be called before drawing.
func Sleep(m Model, di bus.Commander, delay Delayer) error {
	if s, ok := m.(SleepController); ok {
		return s.Sleep(di, delay)
	}
	if err := dcs.WriteCommand(di, dcs.EnterSleepMode); err != nil {
		return err
	}
	delay.Sleep(SleepSettle)
	return nil
}

// Wake brings the controller out of sleep.
func Wake(m Model, di bus.Commander, delay Delayer) error {
	if s, ok := m.(SleepController); ok {
		return s.Wake(di, delay)
	}
	if err := dcs.WriteCommand(di, dcs.ExitSleepMode); err != nil {
		return err
	}
	delay.Sleep(SleepSettle)
	return nil
}

// WriteMemoryStart starts a memory write. Pixel data must follow
// immediately.
func WriteMemoryStart(m Model, di bus.Commander) error {
	if w, ok := m.(MemoryWriter); ok {
		return w.WriteMemoryStart(di)
	}
	return dcs.WriteCommand(di, dcs.WriteMemoryStart)
}

// SoftwareReset issues a software reset.
func SoftwareReset(m Model, di bus.Commander) error {
	if r, ok := m.(SoftResetter); ok {
		return r.SoftwareReset(di)
	}
	return dcs.WriteCommand(di, dcs.SoftReset)
}

// SetTearingEffect configures the tearing effect output.
func SetTearingEffect(m Model, di bus.Commander, te options.TearingEffect, opts *options.Options) error {
	if s, ok := m.(TearingEffectSetter); ok {
		return s.SetTearingEffect(di, te, opts)
	}
	return dcs.WriteCommand(di, dcs.SetTearingEffect(te))
}

// SetVerticalScrollRegion defines fixed areas at the top and bottom of the
// framebuffer that don't scroll. It always works in the default
// orientation. If the fixed areas are taller than the framebuffer, the whole
// framebuffer becomes a fixed top area.
func SetVerticalScrollRegion(m Model, di bus.Commander, topFixed, bottomFixed uint16) error {
	if s, ok := m.(VerticalScroller); ok {
		return s.SetVerticalScrollRegion(di, topFixed, bottomFixed)
	}
	rows := m.FramebufferSize().H
	area := dcs.NewSetScrollArea(rows, 0, 0)
	if uint32(topFixed)+uint32(bottomFixed) <= uint32(rows) {
		area = dcs.NewSetScrollArea(topFixed, rows-topFixed-bottomFixed, bottomFixed)
	}
	return dcs.WriteCommand(di, area)
}

// SetVerticalScrollOffset shifts the scroll region up by offset lines.
func SetVerticalScrollOffset(m Model, di bus.Commander, offset uint16) error {
	if s, ok := m.(VerticalScroller); ok {
		return s.SetVerticalScrollOffset(di, offset)
	}
	return dcs.WriteCommand(di, dcs.SetScrollStart(offset))
}
