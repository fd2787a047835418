package mipidsi

import (
	"errors"
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/models"
	"github.com/flavioheleno/mipidsi/options"
	"periph.io/x/conn/v3/gpio"
)

// resetSettle is how long the controller needs after the reset pin is
// released.
const resetSettle = 10 * time.Millisecond

// Builder configures a display before initializing it.
type Builder[W bus.Word] struct {
	di    bus.Interface[W]
	model models.Model
	rst   gpio.PinOut
	opts  options.Options
	used  bool
}

// NewBuilder returns a Builder for model on di. The display size defaults
// to the model's whole framebuffer.
func NewBuilder[W bus.Word](model models.Model, di bus.Interface[W]) *Builder[W] {
	return &Builder[W]{
		di:    di,
		model: model,
		opts:  options.FullSize(model.FramebufferSize()),
	}
}

// InvertColors sets the color inversion.
func (b *Builder[W]) InvertColors(v options.ColorInversion) *Builder[W] {
	b.opts.InvertColors = v
	return b
}

// ColorOrder sets the subpixel order.
func (b *Builder[W]) ColorOrder(v options.ColorOrder) *Builder[W] {
	b.opts.ColorOrder = v
	return b
}

// Orientation sets the initial orientation.
func (b *Builder[W]) Orientation(v options.Orientation) *Builder[W] {
	b.opts.Orientation = v
	return b
}

// RefreshOrder sets the refresh order.
func (b *Builder[W]) RefreshOrder(v options.RefreshOrder) *Builder[W] {
	b.opts.RefreshOrder = v
	return b
}

// DisplaySize sets the visible size in the default orientation. Panels
// smaller than the controller's framebuffer need it, usually together with
// DisplayOffset.
func (b *Builder[W]) DisplaySize(w, h uint16) *Builder[W] {
	b.opts.Size = options.Size{W: w, H: h}
	return b
}

// DisplayOffset sets the position of the visible area in the framebuffer,
// in the default orientation.
func (b *Builder[W]) DisplayOffset(x, y uint16) *Builder[W] {
	b.opts.Offset = options.Offset{X: x, Y: y}
	return b
}

// ResetPin sets the hardware reset pin. Without one, Init issues a software
// reset.
func (b *Builder[W]) ResetPin(pin gpio.PinOut) *Builder[W] {
	b.rst = pin
	return b
}

// Init validates the configuration, resets the controller and runs the
// model's power-up sequence.
//
// The Builder can't be reused, even if Init fails.
func (b *Builder[W]) Init(delay models.Delayer) (*Display[W], error) {
	if b.used {
		return nil, ErrBuilderUsed
	}
	b.used = true

	if err := b.validate(); err != nil {
		return nil, &InitError{Stage: StageConfiguration, Err: err}
	}

	if b.rst != nil {
		if err := b.rst.Out(gpio.Low); err != nil {
			return nil, &InitError{Stage: StageResetPin, Err: err}
		}
		delay.Sleep(b.model.ResetDuration())
		if err := b.rst.Out(gpio.High); err != nil {
			return nil, &InitError{Stage: StageResetPin, Err: err}
		}
		delay.Sleep(resetSettle)
	} else if err := dcs.WriteCommand(b.di, dcs.SoftReset); err != nil {
		return nil, &InitError{Stage: StageInterface, Err: err}
	}

	madctl, err := b.model.Init(b.di, delay, &b.opts)
	if err != nil {
		var cfg options.ConfigurationError
		if errors.As(err, &cfg) {
			return nil, &InitError{Stage: StageConfiguration, Err: err}
		}
		return nil, &InitError{Stage: StageInterface, Err: err}
	}

	return &Display[W]{
		di:     b.di,
		model:  b.model,
		rst:    b.rst,
		opts:   b.opts,
		madctl: madctl,
	}, nil
}

func (b *Builder[W]) validate() error {
	fb := b.model.FramebufferSize()
	size, offset := b.opts.Size, b.opts.Offset

	if size.W == 0 || size.H == 0 || size.W > fb.W || size.H > fb.H {
		return options.InvalidDisplaySize
	}
	if uint32(size.W)+uint32(offset.X) > uint32(fb.W) || uint32(size.H)+uint32(offset.Y) > uint32(fb.H) {
		return options.InvalidDisplayOffset
	}
	return nil
}
