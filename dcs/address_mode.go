package dcs

import (
	"fmt"

	"github.com/flavioheleno/mipidsi/options"
)

// MADCTL bits.
const (
	madctlMH  = 1 << 2 // Horizontal refresh right to left
	madctlBGR = 1 << 3 // BGR subpixel order
	madctlML  = 1 << 4 // Vertical refresh bottom to top
	madctlMV  = 1 << 5 // Row/column exchange
	madctlMX  = 1 << 6 // Column address order
	madctlMY  = 1 << 7 // Row address order
)

// SetAddressMode is the MADCTL command, which controls how the framebuffer
// is scanned and the subpixel order.
type SetAddressMode byte

// NewSetAddressMode builds an address mode from its parts.
func NewSetAddressMode(order options.ColorOrder, o options.Orientation, refresh options.RefreshOrder) SetAddressMode {
	return SetAddressMode(0).
		WithColorOrder(order).
		WithOrientation(o).
		WithRefreshOrder(refresh)
}

// AddressModeFromOptions builds the address mode matching opts.
func AddressModeFromOptions(opts *options.Options) SetAddressMode {
	return NewSetAddressMode(opts.ColorOrder, opts.Orientation, opts.RefreshOrder)
}

// WithColorOrder returns m with the subpixel order replaced.
func (m SetAddressMode) WithColorOrder(order options.ColorOrder) SetAddressMode {
	if order == options.BGR {
		return m | madctlBGR
	}
	return m &^ madctlBGR
}

// WithOrientation returns m with the scan direction bits replaced.
func (m SetAddressMode) WithOrientation(o options.Orientation) SetAddressMode {
	m &^= madctlMY | madctlMX | madctlMV
	mapping := options.MemoryMappingFrom(o)
	if mapping.ReverseRows {
		m |= madctlMY
	}
	if mapping.ReverseColumns {
		m |= madctlMX
	}
	if mapping.SwapRowsAndColumns {
		m |= madctlMV
	}
	return m
}

// WithRefreshOrder returns m with the refresh order bits replaced.
func (m SetAddressMode) WithRefreshOrder(r options.RefreshOrder) SetAddressMode {
	m &^= madctlML | madctlMH
	if r.Vertical == options.BottomToTop {
		m |= madctlML
	}
	if r.Horizontal == options.RightToLeft {
		m |= madctlMH
	}
	return m
}

func (m SetAddressMode) Instruction() byte { return MADCTL }

func (m SetAddressMode) Params() []byte {
	return []byte{byte(m)}
}

func (m SetAddressMode) String() string {
	return fmt.Sprintf("MADCTL(0x%02X)", byte(m))
}
