// Package options holds the display configuration passed to display models.
package options

// Size is a size in pixels.
type Size struct {
	W, H uint16
}

// Offset is the position of the visible area inside the controller's
// framebuffer.
type Offset struct {
	X, Y uint16
}

// Options is the display configuration. Models read it during Init and
// whenever options are updated.
type Options struct {
	// ColorOrder is the subpixel order.
	ColorOrder ColorOrder
	// Orientation is the display orientation.
	Orientation Orientation
	// InvertColors selects INVON or INVOFF.
	InvertColors ColorInversion
	// RefreshOrder is the display refresh order.
	RefreshOrder RefreshOrder
	// Size is the visible size in the default orientation.
	Size Size
	// Offset is the visible area offset in the default orientation.
	Offset Offset
}

// FullSize returns default options covering a whole framebuffer.
func FullSize(framebuffer Size) Options {
	return Options{Size: framebuffer}
}

// WithAll returns default options for the given size and offset.
func WithAll(size Size, offset Offset) Options {
	return Options{Size: size, Offset: offset}
}

// DisplaySize returns the visible size for the current orientation.
func (o *Options) DisplaySize() Size {
	if o.Orientation.Rotation.IsHorizontal() {
		return o.Size
	}
	return Size{W: o.Size.H, H: o.Size.W}
}

// ColorInversion selects inverted colors.
type ColorInversion uint8

const (
	Normal ColorInversion = iota
	Inverted
)

// ColorOrder is the subpixel order.
type ColorOrder uint8

const (
	RGB ColorOrder = iota
	BGR
)

// VerticalRefreshOrder is the vertical refresh direction.
type VerticalRefreshOrder uint8

const (
	TopToBottom VerticalRefreshOrder = iota
	BottomToTop
)

// Flip returns the opposite order.
func (v VerticalRefreshOrder) Flip() VerticalRefreshOrder {
	if v == TopToBottom {
		return BottomToTop
	}
	return TopToBottom
}

// HorizontalRefreshOrder is the horizontal refresh direction.
type HorizontalRefreshOrder uint8

const (
	LeftToRight HorizontalRefreshOrder = iota
	RightToLeft
)

// Flip returns the opposite order.
func (h HorizontalRefreshOrder) Flip() HorizontalRefreshOrder {
	if h == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}

// RefreshOrder is the display refresh order. The zero value refreshes left
// to right, top to bottom.
type RefreshOrder struct {
	Vertical   VerticalRefreshOrder
	Horizontal HorizontalRefreshOrder
}

// FlipVertical returns r with the vertical order flipped.
func (r RefreshOrder) FlipVertical() RefreshOrder {
	r.Vertical = r.Vertical.Flip()
	return r
}

// FlipHorizontal returns r with the horizontal order flipped.
func (r RefreshOrder) FlipHorizontal() RefreshOrder {
	r.Horizontal = r.Horizontal.Flip()
	return r
}

// TearingEffect is the tearing effect output setting.
type TearingEffect uint8

const (
	// TearingOff disables the TE output.
	TearingOff TearingEffect = iota
	// TearingVertical outputs vertical blanking information.
	TearingVertical
	// TearingHorizontalAndVertical outputs both blanking intervals.
	TearingHorizontalAndVertical
)

// ConfigurationError reports an invalid display configuration. Compare with
// errors.Is.
type ConfigurationError uint8

const (
	// UnsupportedInterface means the model can't be driven over the bus kind.
	UnsupportedInterface ConfigurationError = iota + 1
	// InvalidDisplaySize means the size is zero or larger than the framebuffer.
	InvalidDisplaySize
	// InvalidDisplayOffset means size plus offset exceeds the framebuffer.
	InvalidDisplayOffset
)

func (e ConfigurationError) Error() string {
	switch e {
	case UnsupportedInterface:
		return "options: unsupported interface"
	case InvalidDisplaySize:
		return "options: invalid display size"
	case InvalidDisplayOffset:
		return "options: invalid display offset"
	default:
		return "options: invalid configuration"
	}
}
