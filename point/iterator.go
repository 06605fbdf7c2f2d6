package point

import (
	"io"
)

// RangeIterator walks every point in a width x height rectangle, row by row.
// Returns io.EOF once the rectangle is exhausted.
// COULD use the Go 1.23 iter package, but sticking with a plain closure for older toolchains.
func RangeIterator(width int32, height int32) func() (*Point, error) {
	x := int32(0)
	y := int32(0)
	return func() (*Point, error) {
		if x >= width {
			x = 0
			y++
		}
		if width <= 0 || y >= height {
			return nil, io.EOF
		}
		p := &Point{X: x, Y: y}
		x++
		return p, nil
	}
}

func RangeIteratorWithPoint(bounds Point) func() (*Point, error) {
	return RangeIterator(bounds.X, bounds.Y)
}
