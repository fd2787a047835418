package options

import "fmt"

// Rotation is a clockwise display rotation.
type Rotation uint8

const (
	Deg0 Rotation = iota
	Deg90
	Deg180
	Deg270
)

// InvalidAngleError is returned by RotationFromDegrees.
type InvalidAngleError struct {
	Angle int
}

func (e *InvalidAngleError) Error() string {
	return fmt.Sprintf("options: invalid rotation angle %d, must be a multiple of 90", e.Angle)
}

// RotationFromDegrees converts an angle into a Rotation. Negative angles and
// angles of 360 or more are accepted as long as they are multiples of 90.
func RotationFromDegrees(angle int) (Rotation, error) {
	if angle%90 != 0 {
		return Deg0, &InvalidAngleError{Angle: angle}
	}
	a := angle % 360
	if a < 0 {
		a += 360
	}
	return Rotation(a / 90), nil
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r%4) * 90
}

// Rotate adds other to r.
func (r Rotation) Rotate(other Rotation) Rotation {
	return (r + other) % 4
}

// IsVertical reports whether rows and columns are swapped (90° or 270°).
func (r Rotation) IsVertical() bool {
	return r%2 == 1
}

// IsHorizontal reports whether r is 0° or 180°.
func (r Rotation) IsHorizontal() bool {
	return !r.IsVertical()
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// Orientation is a rotation optionally followed by a horizontal mirror.
type Orientation struct {
	Rotation Rotation
	Mirrored bool
}

// Rotate returns o rotated by r.
func (o Orientation) Rotate(r Rotation) Orientation {
	return Orientation{Rotation: o.Rotation.Rotate(r), Mirrored: o.Mirrored}
}

// FlipHorizontal mirrors o along the vertical axis.
func (o Orientation) FlipHorizontal() Orientation {
	return Orientation{Rotation: o.Rotation, Mirrored: !o.Mirrored}
}

// FlipVertical mirrors o along the horizontal axis.
func (o Orientation) FlipVertical() Orientation {
	return Orientation{Rotation: o.Rotation.Rotate(Deg180), Mirrored: !o.Mirrored}
}

func (o Orientation) String() string {
	if o.Mirrored {
		return o.Rotation.String() + " mirrored"
	}
	return o.Rotation.String()
}

// MemoryMapping is how an Orientation maps onto panel memory. It is never
// stored, always derived.
type MemoryMapping struct {
	ReverseRows        bool
	ReverseColumns     bool
	SwapRowsAndColumns bool
}

// MemoryMappingFrom derives the memory mapping of o.
func MemoryMappingFrom(o Orientation) MemoryMapping {
	var rows, cols bool
	switch o.Rotation % 4 {
	case Deg90:
		cols = true
	case Deg180:
		rows, cols = true, true
	case Deg270:
		rows = true
	}
	return MemoryMapping{
		ReverseRows:        rows,
		ReverseColumns:     cols != o.Mirrored,
		SwapRowsAndColumns: o.Rotation.IsVertical(),
	}
}
