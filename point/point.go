package point

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ZERO = Point{0, 0}

	UP         = Point{X: 0, Y: -1}
	DOWN       = Point{X: 0, Y: 1}
	LEFT       = Point{X: -1, Y: 0}
	RIGHT      = Point{X: 1, Y: 0}
	UP_LEFT    = Point{X: -1, Y: -1}
	UP_RIGHT   = Point{X: 1, Y: -1}
	DOWN_LEFT  = Point{X: -1, Y: 1}
	DOWN_RIGHT = Point{X: 1, Y: 1}

	DIRECTIONS = []Point{UP, DOWN, LEFT, RIGHT, UP_LEFT, UP_RIGHT, DOWN_LEFT, DOWN_RIGHT}

	ErrUnknownDirection = errors.New("unknown direction")

	directionNames = map[string]Point{
		"up":         UP,
		"down":       DOWN,
		"left":       LEFT,
		"right":      RIGHT,
		"up_left":    UP_LEFT,
		"up_right":   UP_RIGHT,
		"down_left":  DOWN_LEFT,
		"down_right": DOWN_RIGHT,
	}
)

// Point is an X/Y coordinate. X is the column (horizontal), Y is the row (vertical).
// Arithmetic wraps on int32 overflow.
type Point struct {
	X int32
	Y int32
}

func NewPoint(x int32, y int32) Point {
	return Point{X: x, Y: y}
}

// Pt converts any integer pair into a Point, truncating to int32.
func Pt[I constraints.Integer](x I, y I) Point {
	return Point{X: int32(x), Y: int32(y)}
}

// FromOffset is the inverse of Offset for a row-major layout.
// stride must be positive, FromOffset panics otherwise.
func FromOffset(offset int32, stride int32) Point {
	if stride <= 0 {
		panic(fmt.Sprintf("FromOffset: stride must be positive, got %d", stride))
	}
	return Point{
		X: offset % stride,
		Y: offset / stride,
	}
}

func Add(a Point, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a Point, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

func (p Point) Add(other Point) Point {
	return Add(p, other)
}

func (p Point) Sub(other Point) Point {
	return Sub(p, other)
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) Mul(factor int32) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

func (p Point) Equal(other Point) bool {
	return p == other
}

func (p Point) Transpose() Point {
	return Point{X: p.Y, Y: p.X}
}

// Offset returns the linear index of p in a row-major layout with the given row stride.
func (p Point) Offset(stride int32) int32 {
	return p.Y*stride + p.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ParseDirection accepts names like "up", "DOWN_RIGHT" or "down-right".
func ParseDirection(name string) (Point, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if d, ok := directionNames[key]; ok {
		return d, nil
	}
	return ZERO, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
