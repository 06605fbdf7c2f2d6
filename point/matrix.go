package point

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Matrix is a fixed size 2D array stored as a single row-major slice.
// Width and Height are set at construction and never change.
type Matrix[T any] struct {
	Width  int32
	Height int32
	Data   []T
}

var ErrInvalidDimensions = errors.New("invalid matrix dimensions")

// NewMatrix creates a zeroed matrix.
// Note height is the first dimension, width is the second
func NewMatrix[T any](height int32, width int32) (*Matrix[T], error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > 0 && int64(height) > int64(math.MaxInt)/int64(width) {
		return nil, fmt.Errorf("%w: %dx%d overflows int", ErrInvalidDimensions, width, height)
	}
	return &Matrix[T]{Width: width, Height: height, Data: make([]T, int(width)*int(height))}, nil
}

func NewMatrixWithContents[T any](height int32, width int32, rows [][]T) (*Matrix[T], error) {
	if len(rows) != int(height) {
		return nil, fmt.Errorf("expected %d rows, got %d", height, len(rows))
	}
	m, err := NewMatrix[T](height, width)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != int(width) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", y, width, len(row))
		}
		copy(m.Row(int32(y)), row)
	}
	return m, nil
}

// Bounds returns the size of the matrix as a Point (Width, Height).
func (m *Matrix[T]) Bounds() Point {
	return Point{X: m.Width, Y: m.Height}
}

// InBounds checks each axis separately, so (Width, 0) is out of bounds rather
// than wrapping onto the next row.
func (m *Matrix[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

func (m *Matrix[T]) Ref(p Point) (*T, error) {
	if !m.InBounds(p) {
		return nil, fmt.Errorf("%w: %v, matrix is %dx%d", ErrOutOfBounds, p, m.Width, m.Height)
	}
	offset := int(p.Y)*int(m.Width) + int(p.X)
	if offset >= len(m.Data) {
		return nil, fmt.Errorf("%w: %v, offset %d past storage of %d", ErrOutOfBounds, p, offset, len(m.Data))
	}
	return &m.Data[offset], nil
}

func (m *Matrix[T]) Get(p Point) (T, error) {
	ref, err := m.Ref(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return *ref, nil
}

// Set stores value at p and returns what was there before.
func (m *Matrix[T]) Set(p Point, value T) (T, error) {
	ref, err := m.Ref(p)
	if err != nil {
		var zero T
		return zero, err
	}
	old := *ref
	*ref = value
	return old, nil
}

func (m *Matrix[T]) MustGet(p Point) T {
	v, err := m.Get(p)
	if err != nil {
		log.Errorf("MustGet failed %v", err)
		panic(err)
	}
	return v
}

func (m *Matrix[T]) MustSet(p Point, value T) T {
	old, err := m.Set(p, value)
	if err != nil {
		log.Errorf("MustSet failed %v", err)
		panic(err)
	}
	return old
}

// Row returns row y. Its capacity is capped at the row end, so appending never
// writes into the next row.
func (m *Matrix[T]) Row(y int32) []T {
	start := int(y) * int(m.Width)
	end := start + int(m.Width)
	return m.Data[start:end:end]
}

// Rows returns a [][]T view over the matrix. The rows share storage with Data.
func (m *Matrix[T]) Rows() Rows[T] {
	rows := make(Rows[T], m.Height)
	for y := int32(0); y < m.Height; y++ {
		rows[y] = m.Row(y)
	}
	return rows
}
