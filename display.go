package mipidsi

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/models"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// Display is an initialized display. Create one with a Builder.
//
// A Display is not safe for concurrent use.
type Display[W bus.Word] struct {
	// Communication
	di  bus.Interface[W]
	rst gpio.PinOut // Reset pin (optional)

	model models.Model
	opts  options.Options

	// State
	madctl   dcs.SetAddressMode // Last address mode sent
	sleeping bool
}

var _ display.Drawer = (*Display[uint8])(nil)

// Orientation returns the current orientation.
func (d *Display[W]) Orientation() options.Orientation {
	return d.opts.Orientation
}

// SetOrientation changes the orientation. It takes effect for the next
// memory write; what is already on screen is not redrawn.
func (d *Display[W]) SetOrientation(o options.Orientation) error {
	d.opts.Orientation = o
	madctl, err := models.UpdateOptions(d.model, d.di, &d.opts)
	if err != nil {
		return err
	}
	d.madctl = madctl
	return nil
}

// Options returns a copy of the current options.
func (d *Display[W]) Options() options.Options {
	return d.opts
}

// AddressMode returns the last address mode sent to the controller.
func (d *Display[W]) AddressMode() dcs.SetAddressMode {
	return d.madctl
}

// ShowRawData writes pixels to the rectangle from (sx, sy) to (ex, ey), both
// inclusive, in display coordinates. The pixels must already be encoded in
// the model's color format and fill the rectangle row by row.
func (d *Display[W]) ShowRawData(sx, sy, ex, ey uint16, pixels []W) error {
	if err := d.setAddressWindow(sx, sy, ex, ey); err != nil {
		return err
	}
	if err := models.WriteMemoryStart(d.model, d.di); err != nil {
		return err
	}
	return d.di.SendDataSlice(pixels)
}

func (d *Display[W]) setAddressWindow(sx, sy, ex, ey uint16) error {
	sx, sy, ex, ey = addressWindow(d.model.FramebufferSize(), &d.opts, sx, sy, ex, ey)
	return models.UpdateAddressWindow(d.model, d.di, d.opts.Orientation.Rotation, sx, sy, ex, ey)
}

// SetVerticalScrollRegion sets the fixed areas at the top and bottom of the
// framebuffer. Vertical scrolling always works in the default orientation.
func (d *Display[W]) SetVerticalScrollRegion(topFixed, bottomFixed uint16) error {
	return models.SetVerticalScrollRegion(d.model, d.di, topFixed, bottomFixed)
}

// SetVerticalScrollOffset scrolls the region set by SetVerticalScrollRegion.
func (d *Display[W]) SetVerticalScrollOffset(offset uint16) error {
	return models.SetVerticalScrollOffset(d.model, d.di, offset)
}

// SetTearingEffect configures the tearing effect output.
func (d *Display[W]) SetTearingEffect(te options.TearingEffect) error {
	return models.SetTearingEffect(d.model, d.di, te, &d.opts)
}

// IsSleeping reports whether the display was put to sleep by Sleep.
//
// Nothing prevents writes while the display sleeps, but the controller
// ignores them.
func (d *Display[W]) IsSleeping() bool {
	return d.sleeping
}

// Sleep puts the controller to sleep. It returns after the controller's
// settle time.
func (d *Display[W]) Sleep(delay models.Delayer) error {
	if err := models.Sleep(d.model, d.di, delay); err != nil {
		return err
	}
	d.sleeping = true
	return nil
}

// Wake wakes the controller up. It returns after the controller's settle
// time.
func (d *Display[W]) Wake(delay models.Delayer) error {
	if err := models.Wake(d.model, d.di, delay); err != nil {
		return err
	}
	d.sleeping = false
	return nil
}

// Release returns the parts the display was built from. The Display must not
// be used afterwards.
func (d *Display[W]) Release() (bus.Interface[W], models.Model, gpio.PinOut) {
	di, model, rst := d.di, d.model, d.rst
	d.di, d.model, d.rst = nil, nil, nil
	return di, model, rst
}

// RawInterface returns the underlying bus. Commands sent through it bypass
// the Display, which then no longer knows the controller's state.
func (d *Display[W]) RawInterface() bus.Interface[W] {
	return d.di
}

// String implements conn.Resource.
func (d *Display[W]) String() string {
	s := d.opts.DisplaySize()
	return fmt.Sprintf("mipidsi.Display{%T, %dx%d, %s}", d.model, s.W, s.H, d.opts.Orientation)
}

// Halt turns the display off. The framebuffer is retained.
func (d *Display[W]) Halt() error {
	return dcs.WriteCommand(d.di, dcs.SetDisplayOff)
}

// ColorModel implements display.Drawer.
func (d *Display[W]) ColorModel() color.Model {
	return d.model.ColorFormat().Model()
}

// Bounds implements display.Drawer. The size follows the current orientation.
func (d *Display[W]) Bounds() image.Rectangle {
	s := d.opts.DisplaySize()
	return image.Rect(0, 0, int(s.W), int(s.H))
}

// Draw implements display.Drawer.
//
// The part of src at sp is converted to the model's color format and written
// to dst, clipped to the display bounds.
func (d *Display[W]) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	img := pixel.NewImage(r, d.model.ColorFormat())
	draw.Draw(img, r, src, sp, draw.Src)

	words, err := bus.PackWords[W](img.Pix)
	if err != nil {
		return fmt.Errorf("mipidsi: %w", err)
	}
	return d.ShowRawData(uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Max.X-1), uint16(r.Max.Y-1), words)
}
