package rules

// Zone identifies one of the four quadrants the plane is split into.
// Bit 0 is the horizontal half and bit 1 the vertical half.
type Zone uint8

const (
	TopLeft     Zone = 0
	TopRight    Zone = 1
	BottomLeft  Zone = 2
	BottomRight Zone = 3
)

// Special reports whether the zone runs the periodic flip instead of Conway's rules.
func (z Zone) Special() bool {
	return z == BottomRight
}

func (z Zone) String() string {
	switch z {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

/*
Classify maps a coordinate to its zone using the grid midpoint as threshold.

The test is unbounded: cells outside [0, grid) still resolve through the same
comparison, so x = -1000 is simply on the low side.
*/
func Classify(x, y, gridW, gridH int) Zone {
	var z Zone
	if x >= gridW/2 {
		z |= 1
	}
	if y >= gridH/2 {
		z |= 2
	}
	return z
}
