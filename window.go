package mipidsi

import (
	"math"

	"github.com/flavioheleno/mipidsi/options"
)

// addressWindow maps a rectangle in display coordinates to framebuffer
// coordinates. The offset is mirrored on each reversed axis using the
// unrotated display size, then swapped for vertical orientations.
func addressWindow(fb options.Size, opts *options.Options, sx, sy, ex, ey uint16) (uint16, uint16, uint16, uint16) {
	mapping := options.MemoryMappingFrom(opts.Orientation)
	offset := opts.Offset

	if mapping.ReverseColumns {
		offset.X = subSat(fb.W, addSat(opts.Size.W, offset.X))
	}
	if mapping.ReverseRows {
		offset.Y = subSat(fb.H, addSat(opts.Size.H, offset.Y))
	}
	if mapping.SwapRowsAndColumns {
		offset.X, offset.Y = offset.Y, offset.X
	}

	return addSat(sx, offset.X), addSat(sy, offset.Y), addSat(ex, offset.X), addSat(ey, offset.Y)
}

func addSat(a, b uint16) uint16 {
	if a > math.MaxUint16-b {
		return math.MaxUint16
	}
	return a + b
}

func subSat(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
