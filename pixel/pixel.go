// Package pixel provides the raw pixel formats DCS controllers accept over
// their memory write command, as image/draw compatible images.
//
// Pixels are stored exactly as they are sent to the controller: RGB565 as two
// big-endian bytes, RGB666 as three bytes with the color in the upper six
// bits of each.
package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Format is a controller pixel format.
type Format uint8

const (
	// RGB565 is 16 bits per pixel.
	RGB565 Format = iota
	// RGB666 is 18 bits per pixel, sent as 3 bytes.
	RGB666
)

// BytesPerPixel returns the encoded size of one pixel.
func (f Format) BytesPerPixel() int {
	if f == RGB666 {
		return 3
	}
	return 2
}

// Model returns the color model of f.
func (f Format) Model() color.Model {
	if f == RGB666 {
		return RGB666Model
	}
	return RGB565Model
}

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case RGB666:
		return "RGB666"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// RGB565Color is a 16-bit color. Only the low 5/6/5 bits of each component
// are used.
type RGB565Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	return scale(c.R&0x1F, 0x1F), scale(c.G&0x3F, 0x3F), scale(c.B&0x1F, 0x1F), 0xFFFF
}

// RGB666Color is an 18-bit color. Only the low 6 bits of each component are
// used.
type RGB666Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB666Color) RGBA() (r, g, b, a uint32) {
	return scale(c.R&0x3F, 0x3F), scale(c.G&0x3F, 0x3F), scale(c.B&0x3F, 0x3F), 0xFFFF
}

// scale stretches v in [0, top] to [0, 0xFFFF].
func scale(v, top uint8) uint32 {
	return uint32(v) * 0xFFFF / uint32(top)
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565Color{R: uint8(r >> 11), G: uint8(g >> 10), B: uint8(b >> 11)}
}

func toRGB666(c color.Color) color.Color {
	if v, ok := c.(RGB666Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB666Color{R: uint8(r >> 10), G: uint8(g >> 10), B: uint8(b >> 10)}
}

var (
	// RGB565Model converts colors to RGB565Color.
	RGB565Model = color.ModelFunc(toRGB565)
	// RGB666Model converts colors to RGB666Color.
	RGB666Model = color.ModelFunc(toRGB666)
)

// Image is a raster in a controller pixel format.
type Image struct {
	Pix    []byte          // Encoded pixels, row after row
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
	Format Format
}

// NewImage returns an image of r in format f.
func NewImage(r image.Rectangle, f Format) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r, Format: f}
	}
	stride := w * f.BytesPerPixel()
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
		Format: f,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model {
	return p.Format.Model()
}

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return p.Format.Model().Convert(color.Black)
	}
	i := p.PixOffset(x, y)
	if p.Format == RGB666 {
		return RGB666Color{R: p.Pix[i] >> 2, G: p.Pix[i+1] >> 2, B: p.Pix[i+2] >> 2}
	}
	v := uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1])
	return RGB565Color{R: uint8(v >> 11), G: uint8(v>>5) & 0x3F, B: uint8(v) & 0x1F}
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	if p.Format == RGB666 {
		v := RGB666Model.Convert(c).(RGB666Color)
		p.Pix[i] = (v.R & 0x3F) << 2
		p.Pix[i+1] = (v.G & 0x3F) << 2
		p.Pix[i+2] = (v.B & 0x3F) << 2
		return
	}
	v := RGB565Model.Convert(c).(RGB565Color)
	w := uint16(v.R&0x1F)<<11 | uint16(v.G&0x3F)<<5 | uint16(v.B&0x1F)
	p.Pix[i] = byte(w >> 8)
	p.Pix[i+1] = byte(w)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*p.Format.BytesPerPixel()
}
