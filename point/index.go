package point

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrOutOfBounds = errors.New("point out of bounds")

// Grid is anything addressable by Point. Rows and *Matrix both satisfy it.
type Grid[T any] interface {
	Get(p Point) (T, error)
	Set(p Point, value T) (T, error)
	InBounds(p Point) bool
}

var (
	_ Grid[int] = Rows[int](nil)
	_ Grid[int] = (*Matrix[int])(nil)
)

// Rows is a row-major slice of slices. Rows may differ in length.
type Rows[T any] [][]T

func (r Rows[T]) Get(p Point) (T, error) {
	return Get([][]T(r), p)
}

func (r Rows[T]) Set(p Point, value T) (T, error) {
	return Set([][]T(r), p, value)
}

func (r Rows[T]) InBounds(p Point) bool {
	return InBounds([][]T(r), p)
}

func InBounds[T any](grid [][]T, p Point) bool {
	if p.X < 0 || p.Y < 0 || int(p.Y) >= len(grid) {
		return false
	}
	return int(p.X) < len(grid[p.Y])
}

// Ref returns a pointer to the element at p. Y selects the row, X the column.
func Ref[T any](grid [][]T, p Point) (*T, error) {
	if p.Y < 0 || int(p.Y) >= len(grid) {
		return nil, fmt.Errorf("%w: %v, y outside [0,%d)", ErrOutOfBounds, p, len(grid))
	}
	row := grid[p.Y]
	if p.X < 0 || int(p.X) >= len(row) {
		return nil, fmt.Errorf("%w: %v, x outside [0,%d) in row %d", ErrOutOfBounds, p, len(row), p.Y)
	}
	return &row[p.X], nil
}

func Get[T any](grid [][]T, p Point) (T, error) {
	ref, err := Ref(grid, p)
	if err != nil {
		var zero T
		return zero, err
	}
	return *ref, nil
}

// Set stores value at p and returns what was there before.
func Set[T any](grid [][]T, p Point, value T) (T, error) {
	ref, err := Ref(grid, p)
	if err != nil {
		var zero T
		return zero, err
	}
	old := *ref
	*ref = value
	return old, nil
}

func MustGet[T any](grid [][]T, p Point) T {
	v, err := Get(grid, p)
	if err != nil {
		log.Errorf("MustGet failed %v", err)
		panic(err)
	}
	return v
}

func MustSet[T any](grid [][]T, p Point, value T) T {
	old, err := Set(grid, p, value)
	if err != nil {
		log.Errorf("MustSet failed %v", err)
		panic(err)
	}
	return old
}
