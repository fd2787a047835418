package dcs

import (
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// SetColumnAddress sets the column range of the address window.
type SetColumnAddress struct {
	Start, End uint16
}

// NewSetColumnAddress returns a CASET command for columns start to end,
// both inclusive.
func NewSetColumnAddress(start, end uint16) SetColumnAddress {
	return SetColumnAddress{Start: start, End: end}
}

func (c SetColumnAddress) Instruction() byte { return CASET }

func (c SetColumnAddress) Params() []byte {
	sh, sl := be16(c.Start)
	eh, el := be16(c.End)
	return []byte{sh, sl, eh, el}
}

// SetPageAddress sets the row range of the address window.
type SetPageAddress struct {
	Start, End uint16
}

// NewSetPageAddress returns a PASET command for rows start to end, both
// inclusive.
func NewSetPageAddress(start, end uint16) SetPageAddress {
	return SetPageAddress{Start: start, End: end}
}

func (c SetPageAddress) Instruction() byte { return PASET }

func (c SetPageAddress) Params() []byte {
	sh, sl := be16(c.Start)
	eh, el := be16(c.End)
	return []byte{sh, sl, eh, el}
}

// SetScrollArea defines the vertical scrolling area as a top fixed area, a
// scrolling area and a bottom fixed area. The three must add up to the
// framebuffer height.
type SetScrollArea struct {
	TopFixed, Scroll, BottomFixed uint16
}

// NewSetScrollArea returns a VSCRDEF command.
func NewSetScrollArea(top, scroll, bottom uint16) SetScrollArea {
	return SetScrollArea{TopFixed: top, Scroll: scroll, BottomFixed: bottom}
}

func (c SetScrollArea) Instruction() byte { return VSCRDEF }

func (c SetScrollArea) Params() []byte {
	th, tl := be16(c.TopFixed)
	sh, sl := be16(c.Scroll)
	bh, bl := be16(c.BottomFixed)
	return []byte{th, tl, sh, sl, bh, bl}
}

// SetScrollStart sets the first line of the scrolling area.
type SetScrollStart uint16

func (c SetScrollStart) Instruction() byte { return VSCAD }

func (c SetScrollStart) Params() []byte {
	h, l := be16(uint16(c))
	return []byte{h, l}
}

// SetTearingEffect configures the TE output. Off sends TEOFF, the other
// settings send TEON with the mode bit.
type SetTearingEffect options.TearingEffect

func (c SetTearingEffect) Instruction() byte {
	if options.TearingEffect(c) == options.TearingOff {
		return TEOFF
	}
	return TEON
}

func (c SetTearingEffect) Params() []byte {
	switch options.TearingEffect(c) {
	case options.TearingVertical:
		return []byte{0}
	case options.TearingHorizontalAndVertical:
		return []byte{1}
	default:
		return nil
	}
}

// SetInvertMode selects INVON or INVOFF.
type SetInvertMode options.ColorInversion

func (c SetInvertMode) Instruction() byte {
	if options.ColorInversion(c) == options.Inverted {
		return INVON
	}
	return INVOFF
}

func (c SetInvertMode) Params() []byte { return nil }

// BitsPerPixel is a DBI or DPI pixel depth as encoded in COLMOD.
type BitsPerPixel uint8

const (
	Bits3  BitsPerPixel = 0b001
	Bits8  BitsPerPixel = 0b010
	Bits12 BitsPerPixel = 0b011
	Bits16 BitsPerPixel = 0b101
	Bits18 BitsPerPixel = 0b110
	Bits24 BitsPerPixel = 0b111
)

// BitsPerPixelFromFormat returns the depth of a pixel format.
func BitsPerPixelFromFormat(f pixel.Format) BitsPerPixel {
	if f == pixel.RGB666 {
		return Bits18
	}
	return Bits16
}

// PixelFormat is the pair of pixel depths for the display pixel interface
// (DPI) and the display bus interface (DBI).
type PixelFormat struct {
	DPI, DBI BitsPerPixel
}

// PixelFormatWithAll uses bpp for both interfaces.
func PixelFormatWithAll(bpp BitsPerPixel) PixelFormat {
	return PixelFormat{DPI: bpp, DBI: bpp}
}

// Byte returns the COLMOD parameter.
func (f PixelFormat) Byte() byte {
	return byte(f.DPI)<<4 | byte(f.DBI)
}

// SetPixelFormat selects the interface pixel format.
type SetPixelFormat PixelFormat

func (c SetPixelFormat) Instruction() byte { return COLMOD }

func (c SetPixelFormat) Params() []byte {
	return []byte{PixelFormat(c).Byte()}
}
